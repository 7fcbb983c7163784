// Package viewer holds the overlay's single piece of state and the pure
// per-frame planning that turns that state into draw commands.
package viewer

import (
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"path/filepath"
)

const (
	MinOpacity = 0.1
	MaxOpacity = 1.0

	MinGridCells = 1
	MaxGridCells = 50
)

// GridColor is the closed set of colours the grid overlay can be drawn in.
type GridColor int

const (
	GridRed GridColor = iota
	GridCyan
	GridGreen
	GridWhite
	GridBlack
)

var gridColors = []GridColor{GridRed, GridCyan, GridGreen, GridWhite, GridBlack}

// GridColors returns every selectable grid colour in menu order.
func GridColors() []GridColor {
	out := make([]GridColor, len(gridColors))
	copy(out, gridColors)
	return out
}

func (c GridColor) String() string {
	switch c {
	case GridRed:
		return "Red"
	case GridCyan:
		return "Cyan"
	case GridGreen:
		return "Green"
	case GridWhite:
		return "White"
	case GridBlack:
		return "Black"
	}
	return fmt.Sprintf("GridColor(%d)", int(c))
}

// RGBA returns the translucent stroke colour. All entries share alpha 180.
func (c GridColor) RGBA() color.RGBA {
	switch c {
	case GridCyan:
		return color.RGBA{R: 0, G: 255, B: 255, A: 180}
	case GridGreen:
		return color.RGBA{R: 0, G: 255, B: 0, A: 180}
	case GridWhite:
		return color.RGBA{R: 255, G: 255, B: 255, A: 180}
	case GridBlack:
		return color.RGBA{R: 0, G: 0, B: 0, A: 180}
	}
	return color.RGBA{R: 255, G: 0, B: 0, A: 180}
}

// ImageRef identifies the displayed image. FS is nil for files on the OS
// filesystem; dropped files live in the host's drop filesystem instead.
type ImageRef struct {
	Path string
	FS   fs.FS

	seq int
}

// Name returns the base name of the referenced file.
func (r ImageRef) Name() string {
	if r.FS != nil {
		return path.Base(r.Path)
	}
	return filepath.Base(r.Path)
}

// Locator is the resource identifier used to cache the decoded texture.
func (r ImageRef) Locator() string {
	if r.FS == nil {
		return "file://" + r.Path
	}
	return fmt.Sprintf("drop://%d/%s", r.seq, r.Path)
}

// Size is an image's pixel dimensions.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ViewerState is the complete configuration of the overlay. It is owned by
// the game loop and mutated only from Update.
type ViewerState struct {
	Image       *ImageRef
	Opacity     float64
	Rotation    float64
	AlwaysOnTop bool
	ShowGrid    bool
	GridCols    int
	GridRows    int
	GridColor   GridColor
	ImageSize   *Size

	drops int
}

// NewViewerState returns the startup state: no image, fully opaque, not
// rotated, a hidden red 4x4 grid and a normal window level.
func NewViewerState() *ViewerState {
	return &ViewerState{
		Opacity:   MaxOpacity,
		GridCols:  4,
		GridRows:  4,
		GridColor: GridRed,
	}
}

// FilePicker asks the user for an image file. ok is false when the user
// cancelled.
type FilePicker interface {
	PickImage() (path string, ok bool, err error)
}

// DimensionProber reads an image's pixel size from its header.
type DimensionProber interface {
	ProbeDimensions(ref ImageRef) (Size, error)
}

// WindowLevel is the z-order hint sent to the window manager.
type WindowLevel int

const (
	LevelNormal WindowLevel = iota
	LevelAlwaysOnTop
)

func (l WindowLevel) String() string {
	if l == LevelAlwaysOnTop {
		return "AlwaysOnTop"
	}
	return "Normal"
}

// WindowManager receives window-level commands.
type WindowManager interface {
	SetWindowLevel(WindowLevel)
}

// OpenFile runs the picker and, when a file is chosen, makes it the current
// image. The size is updated only if probing succeeds, so a failed probe
// leaves the previous size in place. Picker errors are treated as a cancel.
func (s *ViewerState) OpenFile(picker FilePicker, prober DimensionProber) error {
	p, ok, err := picker.PickImage()
	if err != nil {
		return fmt.Errorf("picking file: %w", err)
	}
	if !ok {
		return nil
	}
	ref := ImageRef{Path: p}
	var probeErr error
	if size, err := prober.ProbeDimensions(ref); err == nil {
		s.ImageSize = &size
	} else {
		probeErr = fmt.Errorf("probing %s: %w", p, err)
	}
	s.Image = &ref
	return probeErr
}

// TogglePin flips the always-on-top flag and tells the window manager.
func (s *ViewerState) TogglePin(wm WindowManager) {
	s.AlwaysOnTop = !s.AlwaysOnTop
	if s.AlwaysOnTop {
		wm.SetWindowLevel(LevelAlwaysOnTop)
	} else {
		wm.SetWindowLevel(LevelNormal)
	}
}

func (s *ViewerState) SetOpacity(v float64) { s.Opacity = v }

func (s *ViewerState) ToggleGrid() { s.ShowGrid = !s.ShowGrid }

func (s *ViewerState) SetGridCols(n int) { s.GridCols = n }

func (s *ViewerState) SetGridRows(n int) { s.GridRows = n }

func (s *ViewerState) SelectGridColor(c GridColor) { s.GridColor = c }

func (s *ViewerState) SetRotation(theta float64) { s.Rotation = theta }

func (s *ViewerState) Rotate(delta float64) { s.Rotation += delta }

// DropFile replaces the current image with the first dropped name. Unlike
// OpenFile it does not probe dimensions, so ImageSize keeps whatever value
// it had.
func (s *ViewerState) DropFile(fsys fs.FS, names []string) bool {
	if len(names) == 0 {
		return false
	}
	s.drops++
	s.Image = &ImageRef{Path: names[0], FS: fsys, seq: s.drops}
	return true
}

// ClampOpacity limits v to the slider range.
func ClampOpacity(v float64) float64 {
	if v < MinOpacity {
		return MinOpacity
	}
	if v > MaxOpacity {
		return MaxOpacity
	}
	return v
}

// ClampGridCells limits n to the grid stepper range.
func ClampGridCells(n int) int {
	if n < MinGridCells {
		return MinGridCells
	}
	if n > MaxGridCells {
		return MaxGridCells
	}
	return n
}
