package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/moshya/internal/service"
	"github.com/nicky-ayoub/moshya/internal/ui"
	"github.com/nicky-ayoub/moshya/internal/viewer"
)

func newGame() *Game {
	images := service.NewImageService()
	return &Game{
		state:    viewer.NewViewerState(),
		toolbar:  ui.NewToolbar(),
		painter:  ui.NewPainter(),
		window:   ui.EbitenWindow{},
		picker:   service.NewDialogPicker(),
		images:   images,
		textures: ui.NewTextureCache(images),
	}
}

func main() {
	width := flag.Int("width", 600, "Initial window width in pixels")
	height := flag.Int("height", 500, "Initial window height in pixels")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	service.SetLogger(logger)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Moshya Viewer")
	ebiten.SetWindowIcon(service.WindowIcons())
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowFloating(false)

	game := newGame()
	err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{
		ScreenTransparent: true,
	})
	game.textures.Close()
	if err != nil {
		logger.Error("viewer exited", "err", err)
		os.Exit(1)
	}
}
