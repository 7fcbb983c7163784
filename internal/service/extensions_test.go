package service

import "testing"

func TestIsImagePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/tmp/a.png", true},
		{"/tmp/a.JPG", true},
		{"photo.jpeg", true},
		{"sprite.webp", true},
		{"scan.bmp", true},
		{"anim.gif", false},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsImagePath(tt.path); got != tt.want {
			t.Errorf("IsImagePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
