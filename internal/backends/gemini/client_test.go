package gemini

import "testing"

func TestIsURL(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{"https url", "https://cdn.example.com/a.jpg", true},
		{"http url", "http://cdn.example.com/a.jpg", true},
		{"blob key", "captures/550e8400/screenshot.png", false},
		{"bare filename", "screenshot.png", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isURL(tt.ref); got != tt.want {
				t.Errorf("isURL(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestImageFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png magic", []byte("\x89PNG\r\n\x1a\n rest of image"), "png"},
		{"gif magic", []byte("GIF89a rest of image"), "gif"},
		{"unknown defaults to jpeg", []byte("not an image at all"), "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageFormat(tt.data); got != tt.want {
				t.Errorf("imageFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
