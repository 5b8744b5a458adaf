package mailer

import (
	"strings"
	"testing"
	"time"

	"backend/internal/models"
)

func sampleContact() models.Contact {
	return models.Contact{
		Name:        "Asha",
		Email:       "asha@example.com",
		Phone:       "+919943980796",
		ProjectType: "web",
		Budget:      "discuss",
		Timeline:    "flexible",
		Message:     "Need a site",
		CreatedAt:   time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderConfirmation(t *testing.T) {
	body, err := renderConfirmation(sampleContact())
	if err != nil {
		t.Fatalf("renderConfirmation returned error: %v", err)
	}

	for _, want := range []string{"Asha", "web", "asha@example.com", "June 1, 2025"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected confirmation body to contain %q", want)
		}
	}
}

func TestRenderAlertIncludesInquiryFields(t *testing.T) {
	body, err := renderAlert(sampleContact())
	if err != nil {
		t.Fatalf("renderAlert returned error: %v", err)
	}

	for _, want := range []string{"Asha", "discuss", "flexible", "Need a site"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected alert body to contain %q", want)
		}
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	contact := sampleContact()
	contact.Message = `<script>alert("x")</script>`

	body, err := renderAlert(contact)
	if err != nil {
		t.Fatalf("renderAlert returned error: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Fatal("expected message HTML to be escaped")
	}
}
