package ui

import (
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/nicky-ayoub/moshya/internal/service"
)

// InputState holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic.
type InputState struct {
	Quit          bool
	OpenFile      bool
	TogglePin     bool
	ToggleGrid    bool
	ToggleInfo    bool
	RotateLeft    bool
	RotateRight   bool
	ResetRotation bool

	// Mouse state
	WheelY         float64
	LeftClickStart bool // Left mouse button just pressed
	LeftDown       bool // Left mouse button is being held down
	LeftReleased   bool // Left mouse button just released
	MouseX, MouseY int

	// Files dropped onto the window this frame.
	Dropped      fs.FS
	DroppedNames []string
}

// PollInput gathers all raw input events for the current frame.
func PollInput() InputState {
	_, wheelY := ebiten.Wheel()
	mx, my := ebiten.CursorPosition()
	in := InputState{
		Quit:          inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		OpenFile:      inpututil.IsKeyJustPressed(ebiten.KeyO),
		TogglePin:     inpututil.IsKeyJustPressed(ebiten.KeyP),
		ToggleGrid:    inpututil.IsKeyJustPressed(ebiten.KeyG),
		ToggleInfo:    inpututil.IsKeyJustPressed(ebiten.KeyI),
		RotateLeft:    inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft),
		RotateRight:   inpututil.IsKeyJustPressed(ebiten.KeyBracketRight),
		ResetRotation: inpututil.IsKeyJustPressed(ebiten.KeyDigit0),

		WheelY:         wheelY,
		LeftClickStart: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftDown:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftReleased:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		MouseX:         mx,
		MouseY:         my,
	}

	if fsys := ebiten.DroppedFiles(); fsys != nil {
		entries, err := fs.ReadDir(fsys, ".")
		if err != nil {
			service.Logger().Warn("reading dropped files", "err", err)
		}
		in.Dropped = fsys
		for _, e := range entries {
			in.DroppedNames = append(in.DroppedNames, e.Name())
		}
	}
	return in
}

// rotateStep is the rotation applied by one bracket key press (15 degrees).
const rotateStep = math.Pi / 12

// KeyActions maps this frame's keyboard shortcuts to actions.
func KeyActions(in InputState) []Action {
	var acts []Action
	if in.Quit {
		acts = append(acts, Action{Kind: ActQuit})
	}
	if in.OpenFile {
		acts = append(acts, Action{Kind: ActOpenFile})
	}
	if in.TogglePin {
		acts = append(acts, Action{Kind: ActTogglePin})
	}
	if in.ToggleGrid {
		acts = append(acts, Action{Kind: ActToggleGrid})
	}
	if in.ToggleInfo {
		acts = append(acts, Action{Kind: ActToggleInfo})
	}
	if in.RotateLeft {
		acts = append(acts, Action{Kind: ActRotate, Value: -rotateStep})
	}
	if in.RotateRight {
		acts = append(acts, Action{Kind: ActRotate, Value: rotateStep})
	}
	if in.ResetRotation {
		acts = append(acts, Action{Kind: ActSetRotation, Value: 0})
	}
	return acts
}
