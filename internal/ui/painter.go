package ui

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nicky-ayoub/moshya/internal/service"
	"github.com/nicky-ayoub/moshya/internal/viewer"
	"golang.org/x/image/font/basicfont"
)

var (
	toolbarFill   = color.RGBA{R: 16, G: 16, B: 20, A: 170}
	widgetFill    = color.RGBA{R: 48, G: 48, B: 56, A: 220}
	widgetStroke  = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	textColor     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dimTextColor  = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	sliderFill    = color.RGBA{R: 90, G: 140, B: 220, A: 255}
	infoPanelFill = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Painter draws frames and the toolbar with a fixed bitmap font.
type Painter struct {
	face text.Face
}

func NewPainter() *Painter {
	return &Painter{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (p *Painter) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.LineSpacing = 15
	text.Draw(dst, s, p.face, op)
}

// DrawFrame paints the background, the image or placeholder and the grid.
// tex may be nil while the image is still decoding; status then replaces it.
func (p *Painter) DrawFrame(screen *ebiten.Image, f viewer.Frame, content viewer.Rect, tex *ebiten.Image, status string) {
	screen.Fill(f.Background)

	c := content.Center()
	if f.Placeholder != "" {
		p.drawText(screen, f.Placeholder, c.X, c.Y-6, textColor, text.AlignCenter)
		return
	}

	if tex != nil && f.HasImageRect() {
		r := f.ImageRect
		tw, th := tex.Bounds().Dx(), tex.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.Dx()/float64(tw), r.Dy()/float64(th))
		op.GeoM.Translate(-r.Dx()/2, -r.Dy()/2)
		op.GeoM.Rotate(f.Rotation)
		rc := r.Center()
		op.GeoM.Translate(rc.X, rc.Y)
		t := float32(f.Tint) / 255
		op.ColorScale.Scale(t, t, t, t)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(tex, op)
	} else if status != "" {
		p.drawText(screen, status, c.X, c.Y-6, dimTextColor, text.AlignCenter)
	}

	for _, s := range f.Grid {
		vector.StrokeLine(screen, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y),
			viewer.GridStrokeWidth, f.GridColor, false)
	}
}

// DrawToolbar paints the control strip for the current state.
func (p *Painter) DrawToolbar(screen *ebiten.Image, tb *Toolbar, s *viewer.ViewerState) {
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), ToolbarHeight, toolbarFill, false)

	ws := tb.layout(s)
	for _, wd := range ws {
		r := wd.rect
		x, y := float32(r.Min.X), float32(r.Min.Y)
		rw, rh := float32(r.Dx()), float32(r.Dy())
		switch wd.kind {
		case kindButton:
			vector.DrawFilledRect(screen, x, y, rw, rh, widgetFill, false)
			vector.StrokeRect(screen, x, y, rw, rh, 1, widgetStroke, false)
			p.drawText(screen, wd.label, r.Center().X, r.Min.Y+3, textColor, text.AlignCenter)
		case kindLabel:
			p.drawText(screen, wd.label, r.Min.X, r.Min.Y+3, textColor, text.AlignStart)
		case kindSeparator:
			mx := x + rw/2
			vector.StrokeLine(screen, mx, y, mx, y+rh, 1, widgetStroke, false)
		case kindSlider:
			my := y + rh/2
			kx := float32(sliderKnobX(r, s.Opacity))
			vector.StrokeLine(screen, x, my, x+rw, my, 2, widgetStroke, false)
			vector.StrokeLine(screen, x, my, kx, my, 2, sliderFill, false)
			vector.DrawFilledCircle(screen, kx, my, 5, textColor, true)
		case kindStepper:
			dec, inc := stepperHalves(r)
			for _, b := range []viewer.Rect{dec, inc} {
				vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), widgetFill, false)
			}
			vector.StrokeRect(screen, x, y, rw, rh, 1, widgetStroke, false)
			p.drawText(screen, "-", dec.Center().X, r.Min.Y+3, textColor, text.AlignCenter)
			p.drawText(screen, "+", inc.Center().X, r.Min.Y+3, textColor, text.AlignCenter)
			p.drawText(screen, fmt.Sprint(stepperCurrent(s, wd.id)), r.Center().X, r.Min.Y+3, textColor, text.AlignCenter)
		case kindDropdown:
			vector.DrawFilledRect(screen, x, y, rw, rh, widgetFill, false)
			vector.StrokeRect(screen, x, y, rw, rh, 1, widgetStroke, false)
			vector.DrawFilledRect(screen, x+4, y+6, 8, 8, s.GridColor.RGBA(), false)
			p.drawText(screen, wd.label, r.Min.X+16, r.Min.Y+3, textColor, text.AlignStart)
			if tb.DropdownOpen() {
				p.drawDropdown(screen, r, s.GridColor)
			}
		}
	}
}

func (p *Painter) drawDropdown(screen *ebiten.Image, box viewer.Rect, selected viewer.GridColor) {
	colors := viewer.GridColors()
	for i, r := range dropdownItems(box) {
		x, y := float32(r.Min.X), float32(r.Min.Y)
		rw, rh := float32(r.Dx()), float32(r.Dy())
		fill := widgetFill
		if colors[i] == selected {
			fill = widgetStroke
		}
		vector.DrawFilledRect(screen, x, y, rw, rh, fill, false)
		vector.DrawFilledRect(screen, x+4, y+5, 8, 8, colors[i].RGBA(), false)
		p.drawText(screen, colors[i].String(), r.Min.X+16, r.Min.Y+2, textColor, text.AlignStart)
	}
}

// DrawInfo paints the metadata panel in the bottom-left corner of content.
func (p *Painter) DrawInfo(screen *ebiten.Image, content viewer.Rect, name string, info *service.ImageInfo) {
	lines := []string{name}
	if info != nil {
		lines = append(lines,
			fmt.Sprintf("%dx%d px", info.Width, info.Height),
			fmt.Sprintf("%d bytes", info.Size),
			info.ModTime.Format("2006-01-02 15:04"),
		)
		keys := make([]string, 0, len(info.EXIFData))
		for k := range info.EXIFData {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, k+": "+info.EXIFData[k])
		}
	} else {
		lines = append(lines, "no metadata")
	}

	widest := 0
	for _, l := range lines {
		if len(l) > widest {
			widest = len(l)
		}
	}
	w := float32(widest*glyphWidth + 2*widgetPadding)
	h := float32(len(lines)*15 + 2*widgetPadding)
	x := float32(content.Min.X) + widgetPadding
	y := float32(content.Max.Y) - h - widgetPadding
	vector.DrawFilledRect(screen, x, y, w, h, infoPanelFill, false)
	p.drawText(screen, strings.Join(lines, "\n"), float64(x)+widgetPadding, float64(y)+widgetPadding, textColor, text.AlignStart)
}
