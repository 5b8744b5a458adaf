package mailer

import (
	"bytes"
	"html/template"

	"backend/internal/models"
)

const confirmationHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #2563eb;">Thank You for Your Inquiry!</h1>
    <p>Dear <strong>{{.Name}}</strong>,</p>
    <p>Your inquiry about a <strong>{{.ProjectType}}</strong> project has been
    received. You will get a detailed proposal within 24 hours.</p>
    <h3>Your Inquiry Details</h3>
    <p><strong>Project Type:</strong> {{.ProjectType}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
    {{if .Message}}<p><strong>Message:</strong> {{.Message}}</p>{{end}}
    <p><strong>Submitted:</strong> {{.CreatedAt.Format "January 2, 2006 15:04"}}</p>
    <p style="color: #6b7280; font-size: 14px;">This is an automated
    confirmation email. Please do not reply.</p>
  </div>
</body>
</html>`

const alertHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #dc2626;">New Contact Inquiry</h1>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
    <p><strong>Project Type:</strong> {{.ProjectType}}</p>
    <p><strong>Budget:</strong> {{.Budget}}</p>
    <p><strong>Timeline:</strong> {{.Timeline}}</p>
    {{if .Message}}<p><strong>Message:</strong> {{.Message}}</p>{{end}}
    <p><strong>Received:</strong> {{.CreatedAt.Format "January 2, 2006 15:04"}}</p>
  </div>
</body>
</html>`

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTML))
	alertTmpl        = template.Must(template.New("alert").Parse(alertHTML))
)

func renderConfirmation(contact models.Contact) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, contact); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderAlert(contact models.Contact) (string, error) {
	var buf bytes.Buffer
	if err := alertTmpl.Execute(&buf, contact); err != nil {
		return "", err
	}
	return buf.String(), nil
}
