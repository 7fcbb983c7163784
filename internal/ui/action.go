package ui

import (
	"fmt"

	"github.com/nicky-ayoub/moshya/internal/viewer"
)

// ActionKind identifies a state change requested by the user.
type ActionKind int

const (
	ActOpenFile ActionKind = iota
	ActTogglePin
	ActSetOpacity
	ActToggleGrid
	ActSetGridCols
	ActSetGridRows
	ActSelectGridColor
	ActRotate
	ActSetRotation
	ActToggleInfo
	ActMoveWindow
	ActQuit
)

// Action is one user request produced by the toolbar or the keyboard.
// Only the fields relevant to Kind are set.
type Action struct {
	Kind   ActionKind
	Value  float64
	N      int
	Color  viewer.GridColor
	DX, DY int
}

func (a Action) String() string {
	switch a.Kind {
	case ActOpenFile:
		return "OpenFile"
	case ActTogglePin:
		return "TogglePin"
	case ActSetOpacity:
		return fmt.Sprintf("SetOpacity(%.3f)", a.Value)
	case ActToggleGrid:
		return "ToggleGrid"
	case ActSetGridCols:
		return fmt.Sprintf("SetGridCols(%d)", a.N)
	case ActSetGridRows:
		return fmt.Sprintf("SetGridRows(%d)", a.N)
	case ActSelectGridColor:
		return fmt.Sprintf("SelectGridColor(%s)", a.Color)
	case ActRotate:
		return fmt.Sprintf("Rotate(%.3f)", a.Value)
	case ActSetRotation:
		return fmt.Sprintf("SetRotation(%.3f)", a.Value)
	case ActToggleInfo:
		return "ToggleInfo"
	case ActMoveWindow:
		return fmt.Sprintf("MoveWindow(%d,%d)", a.DX, a.DY)
	case ActQuit:
		return "Quit"
	}
	return fmt.Sprintf("Action(%d)", int(a.Kind))
}
