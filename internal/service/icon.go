package service

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
)

const iconMaster = 96

// IconSizes are the window icon sizes handed to the window manager.
var IconSizes = []uint{16, 32, 48}

// WindowIcons renders the application glyph (a framed 3x3 grid over a
// translucent square) and scales it to each of IconSizes.
func WindowIcons() []image.Image {
	master := drawIconGlyph(iconMaster)
	icons := make([]image.Image, 0, len(IconSizes))
	for _, s := range IconSizes {
		icons = append(icons, resize.Resize(s, s, master, resize.Lanczos3))
	}
	return icons
}

func drawIconGlyph(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	bg := color.RGBA{R: 20, G: 20, B: 28, A: 200}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	line := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	stroke := size / 16
	if stroke < 1 {
		stroke = 1
	}
	margin := size / 8
	inner := size - 2*margin
	for i := 0; i <= 3; i++ {
		off := margin + i*inner/3
		if i == 3 {
			off = size - margin - stroke
		}
		vertical := image.Rect(off, margin, off+stroke, size-margin)
		horizontal := image.Rect(margin, off, size-margin, off+stroke)
		draw.Draw(img, vertical, &image.Uniform{C: line}, image.Point{}, draw.Src)
		draw.Draw(img, horizontal, &image.Uniform{C: line}, image.Point{}, draw.Src)
	}
	return img
}
