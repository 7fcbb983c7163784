package viewer

import (
	"image/color"
	"math"
)

// Placeholder is shown in the content area while no image is loaded.
const Placeholder = "Drop an image here"

// GridStrokeWidth is the width of every grid stroke, border included.
const GridStrokeWidth = 1.0

// Point is a screen-space position.
type Point struct {
	X, Y float64
}

// Rect is a screen-space rectangle.
type Rect struct {
	Min, Max Point
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Point{x, y}, Max: Point{x + w, y + h}}
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Dx() <= 0 || r.Dy() <= 0 }

// Contains reports whether p lies inside r. Max edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Segment is one grid stroke.
type Segment struct {
	From, To Point
}

// Frame is everything the painter needs for one frame.
type Frame struct {
	Background color.RGBA

	// Placeholder is non-empty when no image is loaded.
	Placeholder string

	// Image is the image to blit. ImageRect is empty until its texture size
	// is known.
	Image     *ImageRef
	ImageRect Rect
	Rotation  float64
	Tint      uint8

	Grid      []Segment
	GridColor color.RGBA
}

// HasImageRect reports whether the image has been placed on screen.
func (f Frame) HasImageRect() bool { return f.Image != nil && !f.ImageRect.Empty() }

// BackgroundAlpha is the 8-bit alpha of the black window fill.
func BackgroundAlpha(opacity float64) uint8 {
	return channel(255 * opacity * 0.1)
}

// ImageTint is the value applied identically to the R, G, B and A channels of
// the image. Scaling all four channels fades towards transparent black rather
// than doing a pure alpha fade.
func ImageTint(opacity float64) uint8 {
	return channel(255 * opacity)
}

func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FitRect places a texW x texH image inside area. The image is scaled up or
// down to the largest size that fits while keeping its aspect ratio, centred
// horizontally and aligned to the top of area.
func FitRect(area Rect, texW, texH int) Rect {
	if texW <= 0 || texH <= 0 || area.Empty() {
		return Rect{}
	}
	w, h := float64(texW), float64(texH)
	scale := math.Min(area.Dx()/w, area.Dy()/h)
	w, h = w*scale, h*scale
	x := area.Min.X + (area.Dx()-w)/2
	return NewRect(x, area.Min.Y, w, h)
}

// GridSegments returns the border of r as four segments followed by the
// interior lines: cols-1 verticals, then rows-1 horizontals. A 1x1 grid is
// just the border.
func GridSegments(r Rect, cols, rows int) []Segment {
	n := 4
	if cols > 1 {
		n += cols - 1
	}
	if rows > 1 {
		n += rows - 1
	}
	segs := make([]Segment, 0, n)

	tl, tr := r.Min, Point{r.Max.X, r.Min.Y}
	br, bl := r.Max, Point{r.Min.X, r.Max.Y}
	segs = append(segs,
		Segment{tl, tr},
		Segment{tr, br},
		Segment{br, bl},
		Segment{bl, tl},
	)

	for i := 1; i < cols; i++ {
		x := lerp(r.Min.X, r.Max.X, float64(i)/float64(cols))
		segs = append(segs, Segment{Point{x, r.Min.Y}, Point{x, r.Max.Y}})
	}
	for i := 1; i < rows; i++ {
		y := lerp(r.Min.Y, r.Max.Y, float64(i)/float64(rows))
		segs = append(segs, Segment{Point{r.Min.X, y}, Point{r.Max.X, y}})
	}
	return segs
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// PlanFrame computes the frame for s. content is the area below the toolbar
// and texW, texH are the decoded texture size, or zero while it is unknown.
func PlanFrame(s *ViewerState, content Rect, texW, texH int) Frame {
	f := Frame{
		Background: color.RGBA{A: BackgroundAlpha(s.Opacity)},
	}
	if s.Image == nil {
		f.Placeholder = Placeholder
		return f
	}

	f.Image = s.Image
	f.Rotation = s.Rotation
	f.Tint = ImageTint(s.Opacity)
	f.ImageRect = FitRect(content, texW, texH)

	if s.ShowGrid && !f.ImageRect.Empty() {
		f.Grid = GridSegments(f.ImageRect, s.GridCols, s.GridRows)
		f.GridColor = s.GridColor.RGBA()
	}
	return f
}
