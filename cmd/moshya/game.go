package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/moshya/internal/service"
	"github.com/nicky-ayoub/moshya/internal/ui"
	"github.com/nicky-ayoub/moshya/internal/viewer"
)

// windowController is the part of the host window the game drives.
type windowController interface {
	viewer.WindowManager
	MoveWindow(dx, dy int)
}

// textureSource resolves the current image to a texture.
type textureSource interface {
	Update()
	Request(ref viewer.ImageRef) (*ebiten.Image, ui.TextureState)
	Close()
}

// imageService is what the game needs from service.ImageService.
type imageService interface {
	viewer.DimensionProber
	GetImageInfo(ref viewer.ImageRef) (*service.ImageInfo, error)
}

type Game struct {
	state   *viewer.ViewerState
	toolbar *ui.Toolbar
	painter *ui.Painter

	window   windowController
	picker   viewer.FilePicker
	images   imageService
	textures textureSource

	// Texture for the current image, refreshed every Update.
	tex      *ebiten.Image
	texState ui.TextureState

	showInfo    bool
	info        *service.ImageInfo
	infoLocator string
}

// handleInput applies one frame of input to the state. Keyboard shortcuts
// are applied before toolbar actions, and drops last, so a file dropped in
// the same frame as an open wins.
func (g *Game) handleInput(in ui.InputState) error {
	acts := ui.KeyActions(in)
	acts = append(acts, g.toolbar.Update(g.state, in)...)

	for _, a := range acts {
		if err := g.apply(a); err != nil {
			return err
		}
	}

	if g.state.DropFile(in.Dropped, in.DroppedNames) {
		name := g.state.Image.Path
		service.Logger().Info("image dropped", "name", name)
		if !service.IsImagePath(name) {
			service.Logger().Warn("dropped file has no image extension", "name", name)
		}
	}
	return nil
}

func (g *Game) apply(a ui.Action) error {
	s := g.state
	switch a.Kind {
	case ui.ActQuit:
		if g.textures != nil {
			g.textures.Close()
		}
		return ebiten.Termination
	case ui.ActOpenFile:
		if err := s.OpenFile(g.picker, g.images); err != nil {
			// Cancelled dialogs and unreadable headers are not fatal.
			service.Logger().Debug("open file", "err", err)
		}
		if s.Image != nil {
			service.Logger().Info("image opened", "path", s.Image.Path)
		}
	case ui.ActTogglePin:
		s.TogglePin(g.window)
	case ui.ActSetOpacity:
		s.SetOpacity(a.Value)
	case ui.ActToggleGrid:
		s.ToggleGrid()
	case ui.ActSetGridCols:
		s.SetGridCols(a.N)
	case ui.ActSetGridRows:
		s.SetGridRows(a.N)
	case ui.ActSelectGridColor:
		s.SelectGridColor(a.Color)
	case ui.ActRotate:
		s.Rotate(a.Value)
	case ui.ActSetRotation:
		s.SetRotation(a.Value)
	case ui.ActToggleInfo:
		g.showInfo = !g.showInfo
	case ui.ActMoveWindow:
		g.window.MoveWindow(a.DX, a.DY)
	default:
		return fmt.Errorf("unknown action %v", a)
	}
	return nil
}

func (g *Game) Update() error {
	// Poll all input at the beginning of the frame so Draw only reads state.
	if err := g.handleInput(ui.PollInput()); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return err
		}
		service.Logger().Error("handling input", "err", err)
	}

	g.textures.Update()
	g.tex, g.texState = nil, ui.TextureLoading
	if g.state.Image != nil {
		g.tex, g.texState = g.textures.Request(*g.state.Image)
	}

	g.refreshInfo()
	return nil
}

// refreshInfo reads metadata for the info panel when it is visible and the
// image changed since the last read.
func (g *Game) refreshInfo() {
	if !g.showInfo || g.state.Image == nil {
		return
	}
	loc := g.state.Image.Locator()
	if loc == g.infoLocator {
		return
	}
	g.infoLocator = loc
	info, err := g.images.GetImageInfo(*g.state.Image)
	if err != nil {
		service.Logger().Debug("image info", "locator", loc, "err", err)
	}
	g.info = info
}

// status is the text shown in place of an image that is not drawable yet.
func (g *Game) status() string {
	if g.state.Image == nil {
		return ""
	}
	switch g.texState {
	case ui.TextureFailed:
		return "Cannot display " + g.state.Image.Name()
	case ui.TextureLoading:
		return "Loading " + g.state.Image.Name()
	}
	return ""
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	content := ui.ContentRect(b.Dx(), b.Dy())

	var texW, texH int
	if g.tex != nil {
		texW, texH = g.tex.Bounds().Dx(), g.tex.Bounds().Dy()
	}
	frame := viewer.PlanFrame(g.state, content, texW, texH)

	g.painter.DrawFrame(screen, frame, content, g.tex, g.status())
	if g.showInfo && g.state.Image != nil {
		g.painter.DrawInfo(screen, content, g.state.Image.Name(), g.info)
	}
	g.painter.DrawToolbar(screen, g.toolbar, g.state)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// A 1:1 logical-to-window mapping keeps grid strokes one pixel wide.
	return outsideWidth, outsideHeight
}
