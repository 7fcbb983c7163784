package service

import (
	"path/filepath"
	"strings"
)

// ImageExtensions are the file types offered by the file picker.
var ImageExtensions = []string{"png", "jpg", "jpeg", "webp", "bmp"}

// IsImagePath reports whether p has one of ImageExtensions, ignoring case.
func IsImagePath(p string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(p)), ".")
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
