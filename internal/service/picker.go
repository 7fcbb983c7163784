package service

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"
)

// DialogPicker opens the platform's native file dialog.
type DialogPicker struct {
	Title string
}

// NewDialogPicker returns a picker filtered to ImageExtensions.
func NewDialogPicker() *DialogPicker {
	return &DialogPicker{Title: "Open image"}
}

// PickImage blocks until the user picks a file or cancels.
func (p *DialogPicker) PickImage() (string, bool, error) {
	path, err := dialog.File().
		Title(p.Title).
		Filter("Image", ImageExtensions...).
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("file dialog: %w", err)
	}
	return path, true, nil
}
