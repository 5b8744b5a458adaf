package handlers

import (
	"testing"
	"time"
)

func TestValidateContactStatus(t *testing.T) {
	for _, status := range []string{"new", "read", "replied", "in-progress", "completed", "archived"} {
		if err := validateContactStatus(status); err != nil {
			t.Fatalf("expected %q to be valid: %v", status, err)
		}
	}
	if err := validateContactStatus("closed"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestValidateContactPriority(t *testing.T) {
	for _, priority := range []string{"low", "medium", "high", "urgent"} {
		if err := validateContactPriority(priority); err != nil {
			t.Fatalf("expected %q to be valid: %v", priority, err)
		}
	}
	if err := validateContactPriority("critical"); err == nil {
		t.Fatal("expected error for unknown priority")
	}
}

func TestBuildContactNote(t *testing.T) {
	now := time.Now()
	note, err := buildContactNote("  followed up by phone  ", now)
	if err != nil {
		t.Fatalf("buildContactNote returned error: %v", err)
	}

	if note.Content != "followed up by phone" {
		t.Fatalf("expected trimmed content, got %q", note.Content)
	}
	if note.AddedBy != "admin" {
		t.Fatalf("expected addedBy=admin, got %q", note.AddedBy)
	}
	if !note.AddedAt.Equal(now) {
		t.Fatalf("expected addedAt=%v, got %v", now, note.AddedAt)
	}
}

func TestBuildContactNoteRejectsBlank(t *testing.T) {
	if _, err := buildContactNote("   ", time.Now()); err == nil {
		t.Fatal("expected error for blank note")
	}
}
