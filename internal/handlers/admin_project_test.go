package handlers

import (
	"testing"
	"time"
)

func validProjectRequest() ProjectCreateRequest {
	return ProjectCreateRequest{
		Title:       "Crop Disease Detector",
		Category:    "AI/ML",
		Description: "CNN-based leaf disease classification",
		Price:       "₹4,999",
		Image:       "https://bucket.s3.ap-south-1.amazonaws.com/x.png",
		Tags:        []string{"CNN", " Deep-Learning "},
	}
}

func TestBuildProjectDefaultsAndTags(t *testing.T) {
	project, err := buildProject(validProjectRequest(), time.Now())
	if err != nil {
		t.Fatalf("buildProject returned error: %v", err)
	}

	if project.Status != "active" {
		t.Fatalf("expected default status=active, got %q", project.Status)
	}
	if project.Difficulty != "intermediate" {
		t.Fatalf("expected default difficulty=intermediate, got %q", project.Difficulty)
	}
	if project.Views != 0 || project.Likes != 0 {
		t.Fatalf("expected zero counters, got views=%d likes=%d", project.Views, project.Likes)
	}
	if len(project.Tags) != 2 || project.Tags[0] != "cnn" || project.Tags[1] != "deep-learning" {
		t.Fatalf("expected lowercased trimmed tags, got %v", project.Tags)
	}
}

func TestBuildProjectRejectsBadEnums(t *testing.T) {
	req := validProjectRequest()
	req.Category = "Blockchain"
	if _, err := buildProject(req, time.Now()); err == nil {
		t.Fatal("expected error for unknown category")
	}

	req = validProjectRequest()
	req.Status = "hidden"
	if _, err := buildProject(req, time.Now()); err == nil {
		t.Fatal("expected error for unknown status")
	}

	req = validProjectRequest()
	req.Difficulty = "expert"
	if _, err := buildProject(req, time.Now()); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestBuildProjectUpdatePartial(t *testing.T) {
	title := "Updated Title"
	status := "featured"
	now := time.Now()

	update, err := buildProjectUpdate(ProjectUpdateRequest{Title: &title, Status: &status}, now)
	if err != nil {
		t.Fatalf("buildProjectUpdate returned error: %v", err)
	}

	if update["title"] != "Updated Title" || update["status"] != "featured" {
		t.Fatalf("unexpected update document: %v", update)
	}
	if update["updatedAt"] != now {
		t.Fatal("expected updatedAt to be touched")
	}
	if _, ok := update["views"]; ok {
		t.Fatal("views must never be settable through update")
	}
	if _, ok := update["likes"]; ok {
		t.Fatal("likes must never be settable through update")
	}
}

func TestBuildProjectUpdateRejectsEmpty(t *testing.T) {
	if _, err := buildProjectUpdate(ProjectUpdateRequest{}, time.Now()); err == nil {
		t.Fatal("expected error for empty update")
	}

	empty := "  "
	if _, err := buildProjectUpdate(ProjectUpdateRequest{Title: &empty}, time.Now()); err == nil {
		t.Fatal("expected error for blank title")
	}
}
