package mailer

import (
	"log"

	"gopkg.in/gomail.v2"

	"backend/internal/models"
)

// Mailer sends transactional mail through SMTP. Messages are handed to a
// background worker over a buffered queue so HTTP handlers never wait on
// the SMTP round trip; failures are logged and dropped, not retried.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	alertTo string
	queue   chan *gomail.Message
}

func New(host string, port int, user, pass, from, alertTo string) *Mailer {
	m := &Mailer{
		dialer:  gomail.NewDialer(host, port, user, pass),
		from:    from,
		alertTo: alertTo,
		queue:   make(chan *gomail.Message, 64),
	}
	go m.run()
	return m
}

func (m *Mailer) run() {
	for msg := range m.queue {
		if err := m.dialer.DialAndSend(msg); err != nil {
			log.Printf("[MAIL] send failed to=%v subject=%q: %v",
				msg.GetHeader("To"), msg.GetHeader("Subject"), err)
			continue
		}
		log.Printf("[MAIL] sent to=%v subject=%q",
			msg.GetHeader("To"), msg.GetHeader("Subject"))
	}
}

func (m *Mailer) enqueue(msg *gomail.Message) {
	select {
	case m.queue <- msg:
	default:
		log.Printf("[MAIL] queue full, dropping message to=%v", msg.GetHeader("To"))
	}
}

// SendContactEmails queues the submitter confirmation and the operator
// alert for a new inquiry. Best effort: the caller gets no delivery status.
func (m *Mailer) SendContactEmails(contact models.Contact) {
	confirmation, err := renderConfirmation(contact)
	if err != nil {
		log.Println("[MAIL] confirmation template error:", err)
	} else {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", contact.Email)
		msg.SetHeader("Subject", "Thank you for your inquiry")
		msg.SetBody("text/html", confirmation)
		m.enqueue(msg)
	}

	if m.alertTo == "" {
		return
	}
	alert, err := renderAlert(contact)
	if err != nil {
		log.Println("[MAIL] alert template error:", err)
		return
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.alertTo)
	msg.SetHeader("Subject", "New contact inquiry: "+contact.ProjectType)
	msg.SetBody("text/html", alert)
	m.enqueue(msg)
}
