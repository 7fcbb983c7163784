package ui

import (
	"testing"

	"github.com/nicky-ayoub/moshya/internal/viewer"
)

func widgetRect(t *testing.T, tb *Toolbar, s *viewer.ViewerState, id widgetID) viewer.Rect {
	t.Helper()
	w, ok := tb.find(tb.layout(s), id)
	if !ok {
		t.Fatalf("widget %d not laid out", id)
	}
	return w.rect
}

func clickAt(p viewer.Point) InputState {
	return InputState{
		LeftClickStart: true,
		LeftDown:       true,
		MouseX:         int(p.X),
		MouseY:         int(p.Y),
	}
}

func singleAction(t *testing.T, acts []Action) Action {
	t.Helper()
	if len(acts) != 1 {
		t.Fatalf("got %v, want exactly one action", acts)
	}
	return acts[0]
}

func TestToolbarButtons(t *testing.T) {
	tests := []struct {
		id   widgetID
		want ActionKind
	}{
		{idOpen, ActOpenFile},
		{idPin, ActTogglePin},
		{idGrid, ActToggleGrid},
	}
	for _, tt := range tests {
		s := viewer.NewViewerState()
		tb := NewToolbar()
		r := widgetRect(t, tb, s, tt.id)
		a := singleAction(t, tb.Update(s, clickAt(r.Center())))
		if a.Kind != tt.want {
			t.Errorf("click on %d = %v, want kind %d", tt.id, a, tt.want)
		}
	}
}

func TestToolbarPinLabelFollowsState(t *testing.T) {
	s := viewer.NewViewerState()
	tb := NewToolbar()
	for _, want := range []string{"Pin", "Unpin"} {
		w, _ := tb.find(tb.layout(s), idPin)
		if w.label != want {
			t.Errorf("pin label = %q, want %q", w.label, want)
		}
		s.AlwaysOnTop = true
	}
}

func TestToolbarGridControlsOnlyWhenGridShown(t *testing.T) {
	s := viewer.NewViewerState()
	tb := NewToolbar()
	if _, ok := tb.find(tb.layout(s), idCols); ok {
		t.Error("cols stepper shown with grid off")
	}
	s.ShowGrid = true
	for _, id := range []widgetID{idCols, idRows, idColor} {
		if _, ok := tb.find(tb.layout(s), id); !ok {
			t.Errorf("widget %d missing with grid on", id)
		}
	}
}

func TestToolbarSizeLabel(t *testing.T) {
	s := viewer.NewViewerState()
	tb := NewToolbar()
	if _, ok := tb.find(tb.layout(s), idSize); ok {
		t.Error("size label shown without a size")
	}
	s.ImageSize = &viewer.Size{Width: 1920, Height: 1080}
	w, ok := tb.find(tb.layout(s), idSize)
	if !ok || w.label != "1920x1080" {
		t.Errorf("size label = %q, want 1920x1080", w.label)
	}
}

func TestToolbarSliderDrag(t *testing.T) {
	s := viewer.NewViewerState()
	tb := NewToolbar()
	r := widgetRect(t, tb, s, idOpacity)

	a := singleAction(t, tb.Update(s, clickAt(viewer.Point{X: r.Min.X, Y: r.Center().Y})))
	if a.Kind != ActSetOpacity || a.Value != viewer.MinOpacity {
		t.Fatalf("press at slider start = %v, want SetOpacity(0.1)", a)
	}
	s.SetOpacity(a.Value)

	// Dragging far past either end clamps, even below the toolbar.
	drag := InputState{LeftDown: true, MouseX: int(r.Max.X) + 300, MouseY: 200}
	a = singleAction(t, tb.Update(s, drag))
	if a.Value != viewer.MaxOpacity {
		t.Errorf("drag past end = %v, want 1.0", a.Value)
	}
	s.SetOpacity(a.Value)

	drag.MouseX = -500
	a = singleAction(t, tb.Update(s, drag))
	if a.Value != viewer.MinOpacity {
		t.Errorf("drag before start = %v, want 0.1", a.Value)
	}

	if acts := tb.Update(s, InputState{LeftReleased: true, MouseX: -500}); len(acts) != 0 {
		t.Errorf("release produced %v", acts)
	}
	if tb.active != idNone {
		t.Error("slider still active after release")
	}
}

func TestToolbarStepperClamps(t *testing.T) {
	s := viewer.NewViewerState()
	s.ShowGrid = true
	tb := NewToolbar()
	r := widgetRect(t, tb, s, idCols)
	dec, inc := stepperHalves(r)

	a := singleAction(t, tb.Update(s, clickAt(inc.Center())))
	if a.Kind != ActSetGridCols || a.N != 5 {
		t.Errorf("increment = %v, want SetGridCols(5)", a)
	}

	s.GridCols = 1
	a = singleAction(t, tb.Update(s, clickAt(dec.Center())))
	if a.N != 1 {
		t.Errorf("decrement below 1 = %v, want SetGridCols(1)", a)
	}

	s.GridRows = 50
	rows := widgetRect(t, tb, s, idRows)
	_, rowsInc := stepperHalves(rows)
	a = singleAction(t, tb.Update(s, clickAt(rowsInc.Center())))
	if a.Kind != ActSetGridRows || a.N != 50 {
		t.Errorf("increment above 50 = %v, want SetGridRows(50)", a)
	}
}

func TestToolbarStepperWheel(t *testing.T) {
	s := viewer.NewViewerState()
	s.ShowGrid = true
	tb := NewToolbar()
	c := widgetRect(t, tb, s, idRows).Center()

	a := singleAction(t, tb.Update(s, InputState{WheelY: -1, MouseX: int(c.X), MouseY: int(c.Y)}))
	if a.Kind != ActSetGridRows || a.N != 3 {
		t.Errorf("wheel down = %v, want SetGridRows(3)", a)
	}
}

func TestToolbarColorDropdown(t *testing.T) {
	s := viewer.NewViewerState()
	s.ShowGrid = true
	tb := NewToolbar()
	box := widgetRect(t, tb, s, idColor)

	if acts := tb.Update(s, clickAt(box.Center())); len(acts) != 0 {
		t.Fatalf("opening dropdown produced %v", acts)
	}
	if !tb.DropdownOpen() {
		t.Fatal("dropdown not open after click")
	}

	items := dropdownItems(box)
	a := singleAction(t, tb.Update(s, clickAt(items[3].Center())))
	if a.Kind != ActSelectGridColor || a.Color != viewer.GridWhite {
		t.Errorf("pick = %v, want SelectGridColor(White)", a)
	}
	if tb.DropdownOpen() {
		t.Error("dropdown still open after selection")
	}
}

func TestToolbarDropdownClosesOnOutsideClick(t *testing.T) {
	s := viewer.NewViewerState()
	s.ShowGrid = true
	tb := NewToolbar()
	tb.Update(s, clickAt(widgetRect(t, tb, s, idColor).Center()))

	acts := tb.Update(s, clickAt(viewer.Point{X: 300, Y: 400}))
	if len(acts) != 0 {
		t.Errorf("outside click produced %v", acts)
	}
	if tb.DropdownOpen() {
		t.Error("dropdown still open")
	}
}

func TestToolbarWindowDrag(t *testing.T) {
	s := viewer.NewViewerState()
	tb := NewToolbar()
	ws := tb.layout(s)
	last := ws[len(ws)-1].rect
	start := viewer.Point{X: last.Max.X + 40, Y: 10}

	if acts := tb.Update(s, clickAt(start)); len(acts) != 0 {
		t.Fatalf("press on empty toolbar produced %v", acts)
	}
	a := singleAction(t, tb.Update(s, InputState{LeftDown: true, MouseX: int(start.X) + 15, MouseY: 4}))
	if a.Kind != ActMoveWindow || a.DX != 15 || a.DY != -6 {
		t.Errorf("drag = %v, want MoveWindow(15,-6)", a)
	}
	if acts := tb.Update(s, InputState{LeftDown: false}); len(acts) != 0 {
		t.Errorf("release produced %v", acts)
	}
}

func TestToolbarWidgetPressDoesNotDrag(t *testing.T) {
	s := viewer.NewViewerState()
	s.ShowGrid = true
	for _, w := range NewToolbar().layout(s) {
		if w.kind == kindLabel {
			continue
		}
		tb := NewToolbar()
		st := viewer.NewViewerState()
		st.ShowGrid = true
		c := w.rect.Center()
		tb.Update(st, clickAt(c))
		acts := tb.Update(st, InputState{LeftDown: true, MouseX: int(c.X) + 20, MouseY: int(c.Y) + 3})
		for _, a := range acts {
			if a.Kind == ActMoveWindow {
				t.Errorf("press on widget %d moved the window: %v", w.id, a)
			}
		}
		if tb.dragging {
			t.Errorf("press on widget %d started a window drag", w.id)
		}
	}
}

func TestToolbarIgnoresContentClicks(t *testing.T) {
	s := viewer.NewViewerState()
	tb := NewToolbar()
	if acts := tb.Update(s, clickAt(viewer.Point{X: 100, Y: 200})); len(acts) != 0 {
		t.Errorf("content click produced %v", acts)
	}
	if tb.dragging {
		t.Error("content click started a window drag")
	}
}

func TestContentRect(t *testing.T) {
	r := ContentRect(600, 500)
	if r.Min.Y != ToolbarHeight || r.Dx() != 600 || r.Dy() != 500-ToolbarHeight {
		t.Errorf("ContentRect = %+v", r)
	}
}
