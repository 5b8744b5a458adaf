package handlers

import (
	"mime/multipart"
	"net/textproto"
	"testing"
)

func imageHeader(filename, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     size,
	}
}

func TestValidateImageUploadAccepts(t *testing.T) {
	cases := []*multipart.FileHeader{
		imageHeader("photo.jpg", "image/jpeg", 1024),
		imageHeader("banner.PNG", "image/png", 4<<20),
		imageHeader("anim.gif", "", 100),
	}
	for _, file := range cases {
		if err := validateImageUpload(file); err != nil {
			t.Fatalf("expected %q to be accepted: %v", file.Filename, err)
		}
	}
}

func TestValidateImageUploadRejects(t *testing.T) {
	cases := []struct {
		file *multipart.FileHeader
		why  string
	}{
		{imageHeader("script.exe", "application/octet-stream", 100), "bad extension"},
		{imageHeader("noext", "image/png", 100), "missing extension"},
		{imageHeader("big.jpg", "image/jpeg", 6<<20), "too large"},
		{imageHeader("fake.png", "text/html", 100), "non-image content type"},
	}
	for _, c := range cases {
		if err := validateImageUpload(c.file); err == nil {
			t.Fatalf("expected rejection (%s) for %q", c.why, c.file.Filename)
		}
	}
}
