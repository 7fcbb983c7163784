// Package service provides image probing, decoding and metadata extraction,
// plus the native collaborators (file picker, window icons) the viewer needs.
package service

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/nicky-ayoub/moshya/internal/viewer"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ImageInfo holds metadata about an image.
type ImageInfo struct {
	Width    int
	Height   int
	Size     int64
	ModTime  time.Time
	EXIFData map[string]string
}

// ImageService provides methods for probing and decoding images.
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// file is what both os.File and files from a dropped fs.FS give us.
type file interface {
	io.Reader
	Stat() (fs.FileInfo, error)
	Close() error
}

func open(ref viewer.ImageRef) (file, error) {
	if ref.FS != nil {
		return ref.FS.Open(ref.Path)
	}
	return os.Open(ref.Path)
}

// rewind returns to the start of f, reopening it when f cannot seek.
func rewind(ref viewer.ImageRef, f file) (file, error) {
	if s, ok := f.(io.Seeker); ok {
		if _, err := s.Seek(0, io.SeekStart); err == nil {
			return f, nil
		}
	}
	f.Close()
	return open(ref)
}

// ProbeDimensions reads only the image header to get its pixel size.
func (is *ImageService) ProbeDimensions(ref viewer.ImageRef) (viewer.Size, error) {
	f, err := open(ref)
	if err != nil {
		return viewer.Size{}, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	config, format, err := image.DecodeConfig(f)
	if err != nil {
		return viewer.Size{}, fmt.Errorf("decoding image config: %w", err)
	}
	Logger().Debug("probed image", "path", ref.Path, "format", format,
		"width", config.Width, "height", config.Height)
	return viewer.Size{Width: config.Width, Height: config.Height}, nil
}

// Decode fully decodes the referenced image.
func (is *ImageService) Decode(ref viewer.ImageRef) (image.Image, error) {
	f, err := open(ref)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// GetImageInfo reads an image file and extracts metadata without decoding the full image.
func (is *ImageService) GetImageInfo(ref viewer.ImageRef) (*ImageInfo, error) {
	f, err := open(ref)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer func() {
		if f != nil {
			f.Close()
		}
	}()

	config, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image config: %w", err)
	}

	fileInfo, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("getting file stats: %w", err)
	}

	info := &ImageInfo{
		Width:    config.Width,
		Height:   config.Height,
		Size:     fileInfo.Size(),
		ModTime:  fileInfo.ModTime(),
		EXIFData: make(map[string]string),
	}

	if f, err = rewind(ref, f); err != nil {
		return nil, fmt.Errorf("seeking file for exif: %w", err)
	}

	exifData, err := exif.Decode(f)
	if err != nil {
		// Most PNG, BMP and WebP files carry no EXIF block.
		Logger().Debug("no exif data", "path", ref.Path, "err", err)
		return info, nil
	}

	if camModel, err := exifData.Get(exif.Model); err == nil {
		info.EXIFData["Camera Model"] = camModel.String()
	}
	if fNum, err := exifData.Get(exif.FNumber); err == nil {
		numer, denom, _ := fNum.Rat2(0)
		if denom != 0 {
			info.EXIFData["F-Number"] = fmt.Sprintf("f/%.1f", float64(numer)/float64(denom))
		}
	}
	if expTime, err := exifData.Get(exif.ExposureTime); err == nil {
		numer, denom, _ := expTime.Rat2(0)
		info.EXIFData["Exposure Time"] = fmt.Sprintf("%d/%d s", numer, denom)
	}
	if orient, err := exifData.Get(exif.Orientation); err == nil {
		if v, err := orient.Int(0); err == nil {
			info.EXIFData["Orientation"] = fmt.Sprintf("%d", v)
		}
	}

	return info, nil
}
