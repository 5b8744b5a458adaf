package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func validSubmission() ContactSubmitRequest {
	return ContactSubmitRequest{
		Name:        "Asha",
		Email:       "Asha@Example.com",
		ProjectType: "web",
		Message:     "Need a site",
	}
}

func TestBuildContactForcesWorkflowFields(t *testing.T) {
	now := time.Now()
	contact, err := buildContact(validSubmission(), "1.2.3.4", "test-agent", now)
	if err != nil {
		t.Fatalf("buildContact returned error: %v", err)
	}

	if contact.Status != "new" {
		t.Fatalf("expected status=new, got %q", contact.Status)
	}
	if contact.Source != "website" {
		t.Fatalf("expected source=website, got %q", contact.Source)
	}
	if contact.Priority != "medium" {
		t.Fatalf("expected priority=medium, got %q", contact.Priority)
	}
	if contact.Email != "asha@example.com" {
		t.Fatalf("expected lowercased email, got %q", contact.Email)
	}
	if contact.IPAddress != "1.2.3.4" || contact.UserAgent != "test-agent" {
		t.Fatalf("expected request metadata captured, got %+v", contact)
	}
}

func TestBuildContactDefaults(t *testing.T) {
	contact, err := buildContact(validSubmission(), "", "", time.Now())
	if err != nil {
		t.Fatalf("buildContact returned error: %v", err)
	}
	if contact.Budget != "discuss" {
		t.Fatalf("expected default budget=discuss, got %q", contact.Budget)
	}
	if contact.Timeline != "flexible" {
		t.Fatalf("expected default timeline=flexible, got %q", contact.Timeline)
	}
	if contact.Notes == nil || len(contact.Notes) != 0 {
		t.Fatalf("expected empty notes list, got %v", contact.Notes)
	}
}

func TestBuildContactRejectsUnknownEnums(t *testing.T) {
	req := validSubmission()
	req.ProjectType = "enterprise"
	if _, err := buildContact(req, "", "", time.Now()); err == nil {
		t.Fatal("expected error for unknown projectType")
	}

	req = validSubmission()
	req.Budget = "a-lot"
	if _, err := buildContact(req, "", "", time.Now()); err == nil {
		t.Fatal("expected error for unknown budget")
	}

	req = validSubmission()
	req.Timeline = "someday"
	if _, err := buildContact(req, "", "", time.Now()); err == nil {
		t.Fatal("expected error for unknown timeline")
	}
}

func TestBuildContactValidatesPhone(t *testing.T) {
	req := validSubmission()
	req.Phone = "not-a-phone"
	if _, err := buildContact(req, "", "", time.Now()); err == nil {
		t.Fatal("expected error for malformed phone")
	}

	req.Phone = "+919943980796"
	if _, err := buildContact(req, "", "", time.Now()); err != nil {
		t.Fatalf("expected valid phone to pass, got %v", err)
	}
}

func TestSubmitContactRejectsMissingEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/contact",
		strings.NewReader(`{"name":"Asha","projectType":"web"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	SubmitContact(nil, nil)(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "email is required") {
		t.Fatalf("expected field error message, got %s", w.Body.String())
	}
}
