package ui

import (
	"github.com/nicky-ayoub/moshya/internal/viewer"
)

const (
	ToolbarHeight = 28

	glyphWidth    = 7 // basicfont.Face7x13 advance
	widgetHeight  = 20
	widgetPadding = 6
	widgetSpacing = 4
	sliderWidth   = 100
	stepperButton = 16
	stepperValue  = 24
	dropdownWidth = 64
	dropdownRow   = 18
	separatorGap  = 8
)

type widgetKind int

const (
	kindButton widgetKind = iota
	kindLabel
	kindSlider
	kindStepper
	kindDropdown
	kindSeparator
)

type widgetID int

const (
	idNone widgetID = iota
	idOpen
	idPin
	idOpacity
	idGrid
	idCols
	idRows
	idColor
	idSize
	idText
)

// widget is one laid-out toolbar control.
type widget struct {
	id    widgetID
	kind  widgetKind
	rect  viewer.Rect
	label string
}

// Toolbar is the control strip along the top of the window. Layout is
// recomputed from the state every frame; only pointer interaction state
// survives between frames.
type Toolbar struct {
	active       widgetID
	dropdownOpen bool

	dragging               bool
	dragStartX, dragStartY int
}

func NewToolbar() *Toolbar {
	return &Toolbar{}
}

// ContentRect is the area below the toolbar available to the image.
func ContentRect(w, h int) viewer.Rect {
	return viewer.NewRect(0, ToolbarHeight, float64(w), float64(h-ToolbarHeight))
}

func textWidth(s string) float64 {
	return float64(len(s) * glyphWidth)
}

// layout places the controls left to right in the order they are drawn.
func (tb *Toolbar) layout(s *viewer.ViewerState) []widget {
	var ws []widget
	x := float64(widgetPadding)
	y := float64(ToolbarHeight-widgetHeight) / 2

	add := func(id widgetID, kind widgetKind, w float64, label string) {
		ws = append(ws, widget{id: id, kind: kind, rect: viewer.NewRect(x, y, w, widgetHeight), label: label})
		x += w + widgetSpacing
	}
	button := func(id widgetID, label string) {
		add(id, kindButton, textWidth(label)+2*widgetPadding, label)
	}
	label := func(id widgetID, text string) {
		add(id, kindLabel, textWidth(text), text)
	}
	separator := func() {
		add(idNone, kindSeparator, separatorGap, "")
	}

	button(idOpen, "Open")
	if s.AlwaysOnTop {
		button(idPin, "Unpin")
	} else {
		button(idPin, "Pin")
	}
	separator()
	label(idText, "Op:")
	add(idOpacity, kindSlider, sliderWidth, "")
	separator()
	separator()
	if s.ShowGrid {
		button(idGrid, "Grid On")
		label(idText, "X:")
		add(idCols, kindStepper, 2*stepperButton+stepperValue, "")
		label(idText, "Y:")
		add(idRows, kindStepper, 2*stepperButton+stepperValue, "")
		add(idColor, kindDropdown, dropdownWidth, s.GridColor.String())
	} else {
		button(idGrid, "Grid Off")
	}
	separator()
	if s.ImageSize != nil {
		label(idSize, s.ImageSize.String())
	}
	return ws
}

func (tb *Toolbar) find(ws []widget, id widgetID) (widget, bool) {
	for _, w := range ws {
		if w.id == id {
			return w, true
		}
	}
	return widget{}, false
}

// dropdownItems returns the rect of each colour entry of the open dropdown.
func dropdownItems(box viewer.Rect) []viewer.Rect {
	colors := viewer.GridColors()
	rs := make([]viewer.Rect, len(colors))
	for i := range colors {
		rs[i] = viewer.NewRect(box.Min.X, box.Max.Y+float64(i*dropdownRow), box.Dx(), dropdownRow)
	}
	return rs
}

// sliderValue converts a cursor x position into an opacity on the slider.
func sliderValue(r viewer.Rect, x float64) float64 {
	t := (x - r.Min.X) / r.Dx()
	return viewer.ClampOpacity(viewer.MinOpacity + t*(viewer.MaxOpacity-viewer.MinOpacity))
}

// sliderKnobX is the inverse of sliderValue.
func sliderKnobX(r viewer.Rect, v float64) float64 {
	t := (viewer.ClampOpacity(v) - viewer.MinOpacity) / (viewer.MaxOpacity - viewer.MinOpacity)
	return r.Min.X + t*r.Dx()
}

// stepperHalves splits a stepper into its decrement and increment buttons.
func stepperHalves(r viewer.Rect) (dec, inc viewer.Rect) {
	dec = viewer.NewRect(r.Min.X, r.Min.Y, stepperButton, r.Dy())
	inc = viewer.NewRect(r.Max.X-stepperButton, r.Min.Y, stepperButton, r.Dy())
	return dec, inc
}

func stepperAction(id widgetID, n int) Action {
	n = viewer.ClampGridCells(n)
	if id == idCols {
		return Action{Kind: ActSetGridCols, N: n}
	}
	return Action{Kind: ActSetGridRows, N: n}
}

func stepperCurrent(s *viewer.ViewerState, id widgetID) int {
	if id == idCols {
		return s.GridCols
	}
	return s.GridRows
}

// Update turns this frame's pointer input into actions. It does not touch
// the state; the caller applies the returned actions.
func (tb *Toolbar) Update(s *viewer.ViewerState, in InputState) []Action {
	ws := tb.layout(s)
	p := viewer.Point{X: float64(in.MouseX), Y: float64(in.MouseY)}
	var acts []Action

	if tb.dropdownOpen && !s.ShowGrid {
		tb.dropdownOpen = false
	}

	// Window dragging and slider dragging continue until release,
	// wherever the cursor goes.
	if tb.dragging {
		if !in.LeftDown {
			tb.dragging = false
		} else if dx, dy := in.MouseX-tb.dragStartX, in.MouseY-tb.dragStartY; dx != 0 || dy != 0 {
			acts = append(acts, Action{Kind: ActMoveWindow, DX: dx, DY: dy})
		}
		return acts
	}
	if tb.active == idOpacity {
		if !in.LeftDown {
			tb.active = idNone
		} else if w, ok := tb.find(ws, idOpacity); ok {
			if v := sliderValue(w.rect, p.X); v != s.Opacity {
				acts = append(acts, Action{Kind: ActSetOpacity, Value: v})
			}
		}
		return acts
	}

	if in.WheelY != 0 {
		for _, w := range ws {
			if w.kind == kindStepper && w.rect.Contains(p) {
				step := 1
				if in.WheelY < 0 {
					step = -1
				}
				acts = append(acts, stepperAction(w.id, stepperCurrent(s, w.id)+step))
			}
		}
	}

	if !in.LeftClickStart {
		return acts
	}

	if tb.dropdownOpen {
		tb.dropdownOpen = false
		if box, ok := tb.find(ws, idColor); ok {
			colors := viewer.GridColors()
			for i, r := range dropdownItems(box.rect) {
				if r.Contains(p) {
					return append(acts, Action{Kind: ActSelectGridColor, Color: colors[i]})
				}
			}
			if box.rect.Contains(p) {
				return acts
			}
		}
	}

	if p.Y >= ToolbarHeight {
		return acts
	}

	for _, w := range ws {
		if !w.rect.Contains(p) {
			continue
		}
		switch w.kind {
		case kindButton:
			switch w.id {
			case idOpen:
				acts = append(acts, Action{Kind: ActOpenFile})
			case idPin:
				acts = append(acts, Action{Kind: ActTogglePin})
			case idGrid:
				acts = append(acts, Action{Kind: ActToggleGrid})
			}
			return acts
		case kindSlider:
			tb.active = idOpacity
			if v := sliderValue(w.rect, p.X); v != s.Opacity {
				acts = append(acts, Action{Kind: ActSetOpacity, Value: v})
			}
			return acts
		case kindStepper:
			dec, inc := stepperHalves(w.rect)
			n := stepperCurrent(s, w.id)
			switch {
			case dec.Contains(p):
				acts = append(acts, stepperAction(w.id, n-1))
			case inc.Contains(p):
				acts = append(acts, stepperAction(w.id, n+1))
			}
			return acts
		case kindDropdown:
			tb.dropdownOpen = true
			return acts
		}
	}

	// Empty toolbar space moves the borderless window.
	tb.dragging = true
	tb.dragStartX, tb.dragStartY = in.MouseX, in.MouseY
	return acts
}

// DropdownOpen reports whether the colour list is showing.
func (tb *Toolbar) DropdownOpen() bool { return tb.dropdownOpen }
