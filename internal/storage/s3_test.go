package storage

import (
	"strings"
	"testing"
)

func TestUploadKeyPreservesExtension(t *testing.T) {
	key := UploadKey("Screenshot 2025-01-01.PNG")
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("expected lowercased .png suffix, got %q", key)
	}
}

func TestUploadKeyUnique(t *testing.T) {
	a := UploadKey("a.jpg")
	b := UploadKey("a.jpg")
	if a == b {
		t.Fatalf("expected distinct keys, got %q twice", a)
	}
}
