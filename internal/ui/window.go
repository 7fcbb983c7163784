package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/moshya/internal/service"
	"github.com/nicky-ayoub/moshya/internal/viewer"
)

// EbitenWindow forwards window-manager commands to the Ebitengine window.
type EbitenWindow struct{}

// SetWindowLevel maps the level onto the floating window flag.
func (EbitenWindow) SetWindowLevel(l viewer.WindowLevel) {
	service.Logger().Debug("window level", "level", l)
	ebiten.SetWindowFloating(l == viewer.LevelAlwaysOnTop)
}

// MoveWindow shifts the window by dx, dy screen pixels.
func (EbitenWindow) MoveWindow(dx, dy int) {
	x, y := ebiten.WindowPosition()
	ebiten.SetWindowPosition(x+dx, y+dy)
}
