package viewer

import (
	"math"
	"testing"
)

func TestBackgroundAlphaAndTint(t *testing.T) {
	tests := []struct {
		opacity  float64
		bg, tint uint8
	}{
		{0.1, 3, 26},
		{0.5, 13, 128},
		{1.0, 26, 255},
	}
	for _, tt := range tests {
		if got := BackgroundAlpha(tt.opacity); got != tt.bg {
			t.Errorf("BackgroundAlpha(%v) = %d, want %d", tt.opacity, got, tt.bg)
		}
		if got := ImageTint(tt.opacity); got != tt.tint {
			t.Errorf("ImageTint(%v) = %d, want %d", tt.opacity, got, tt.tint)
		}
	}
}

func TestAlphaMonotonic(t *testing.T) {
	var prevBG, prevTint uint8
	for i := 0; i <= 900; i++ {
		v := 0.1 + float64(i)/1000
		bg, tint := BackgroundAlpha(v), ImageTint(v)
		if want := uint8(math.Round(255 * v * 0.1)); bg != want {
			t.Fatalf("BackgroundAlpha(%v) = %d, want %d", v, bg, want)
		}
		if want := uint8(math.Round(255 * v)); tint != want {
			t.Fatalf("ImageTint(%v) = %d, want %d", v, tint, want)
		}
		if bg < prevBG || tint < prevTint {
			t.Fatalf("not monotonic at %v: bg %d<%d or tint %d<%d", v, bg, prevBG, tint, prevTint)
		}
		prevBG, prevTint = bg, tint
	}
}

func TestGridSegmentsFourColumns(t *testing.T) {
	r := NewRect(100, 50, 200, 80)
	segs := GridSegments(r, 4, 1)

	if len(segs) != 4+3 {
		t.Fatalf("got %d segments, want 7", len(segs))
	}
	wantX := []float64{0.25, 0.5, 0.75}
	for i, s := range segs[4:] {
		rel := (s.From.X - r.Min.X) / r.Dx()
		if rel != wantX[i] {
			t.Errorf("vertical %d at %v, want %v", i, rel, wantX[i])
		}
		if s.From.X != s.To.X || s.From.Y != r.Min.Y || s.To.Y != r.Max.Y {
			t.Errorf("vertical %d = %+v, want full height", i, s)
		}
	}
}

func TestGridSegmentsSingleCell(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	segs := GridSegments(r, 1, 1)
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4 border segments", len(segs))
	}
	corners := map[Point]int{}
	for _, s := range segs {
		corners[s.From]++
		corners[s.To]++
	}
	for _, p := range []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}} {
		if corners[p] != 2 {
			t.Errorf("corner %v used %d times, want 2", p, corners[p])
		}
	}
}

func TestGridSegmentsRows(t *testing.T) {
	r := NewRect(0, 0, 90, 40)
	segs := GridSegments(r, 3, 4)
	if len(segs) != 4+2+3 {
		t.Fatalf("got %d segments, want 9", len(segs))
	}
	for i, want := range []float64{10, 20, 30} {
		s := segs[6+i]
		if s.From.Y != want || s.To.Y != want || s.From.X != 0 || s.To.X != 90 {
			t.Errorf("horizontal %d = %+v, want y=%v across", i, s, want)
		}
	}
}

func TestFitRect(t *testing.T) {
	area := NewRect(0, 28, 600, 472)
	tests := []struct {
		name       string
		w, h       int
		wantW      float64
		wantH      float64
		wantOffset float64
	}{
		{"small grows", 100, 50, 600, 300, 0},
		{"exact fit", 600, 472, 600, 472, 0},
		{"wide shrinks", 1200, 300, 600, 150, 0},
		{"tall shrinks", 472, 944, 236, 472, 182},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FitRect(area, tt.w, tt.h)
			if r.Dx() != tt.wantW || r.Dy() != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", r.Dx(), r.Dy(), tt.wantW, tt.wantH)
			}
			if r.Min.X != tt.wantOffset || r.Min.Y != 28 {
				t.Errorf("origin = %v, want (%v, 28)", r.Min, tt.wantOffset)
			}
		})
	}
	if !FitRect(area, 0, 0).Empty() {
		t.Error("FitRect with unknown size should be empty")
	}
}

func TestPlanFrameNoImage(t *testing.T) {
	s := NewViewerState()
	s.ShowGrid = true
	f := PlanFrame(s, NewRect(0, 28, 600, 472), 0, 0)

	if f.Placeholder != Placeholder {
		t.Errorf("Placeholder = %q, want %q", f.Placeholder, Placeholder)
	}
	if f.Image != nil || len(f.Grid) != 0 {
		t.Errorf("unexpected image or grid: %+v", f)
	}
	if f.Background.A != 26 || f.Background.R != 0 {
		t.Errorf("Background = %v, want black alpha 26", f.Background)
	}
}

func TestPlanFrameWithGrid(t *testing.T) {
	s := NewViewerState()
	s.Image = &ImageRef{Path: "/a.png"}
	s.Opacity = 0.5
	s.Rotation = 0.3
	s.ShowGrid = true
	s.GridColor = GridWhite

	f := PlanFrame(s, NewRect(0, 28, 600, 472), 200, 100)
	if f.Placeholder != "" {
		t.Errorf("Placeholder = %q, want empty", f.Placeholder)
	}
	if !f.HasImageRect() {
		t.Fatal("image not placed")
	}
	if f.Tint != 128 || f.Rotation != 0.3 {
		t.Errorf("Tint=%d Rotation=%v, want 128 and 0.3", f.Tint, f.Rotation)
	}
	if len(f.Grid) != 4+3+3 {
		t.Errorf("got %d grid segments, want 10", len(f.Grid))
	}
	if f.GridColor != GridWhite.RGBA() {
		t.Errorf("GridColor = %v, want white", f.GridColor)
	}
}

func TestPlanFrameGridWaitsForTexture(t *testing.T) {
	s := NewViewerState()
	s.Image = &ImageRef{Path: "/a.png"}
	s.ShowGrid = true

	f := PlanFrame(s, NewRect(0, 28, 600, 472), 0, 0)
	if f.HasImageRect() || len(f.Grid) != 0 {
		t.Errorf("grid drawn before texture is known: %+v", f)
	}
}
