package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/moshya/internal/service"
	"github.com/nicky-ayoub/moshya/internal/viewer"
)

// Decoder turns an image reference into pixels. It is called from the
// loader goroutine.
type Decoder interface {
	Decode(ref viewer.ImageRef) (image.Image, error)
}

// TextureState reports how far a texture has progressed.
type TextureState int

const (
	TextureLoading TextureState = iota
	TextureReady
	TextureFailed
)

type texture struct {
	img   *ebiten.Image
	state TextureState
	err   error
}

// decodeResult holds a decoded image, ready to be converted to an ebiten.Image.
type decodeResult struct {
	locator string
	img     image.Image
	err     error
}

type decodeJob struct {
	locator string
	ref     viewer.ImageRef
}

// TextureCache decodes images in the background and keeps the texture for
// the current locator. Entries for other locators are released once a new
// image is requested.
type TextureCache struct {
	decoder Decoder

	entries  map[string]*texture
	jobs     chan decodeJob
	results  chan decodeResult
	released []*ebiten.Image

	// done is closed when the loader has exited.
	done   chan struct{}
	closed bool
}

// NewTextureCache creates a cache and starts its background loader.
func NewTextureCache(d Decoder) *TextureCache {
	tc := newTextureCache(d, 4)
	go tc.loader()
	return tc
}

func newTextureCache(d Decoder, queue int) *TextureCache {
	return &TextureCache{
		decoder: d,
		entries: make(map[string]*texture),
		jobs:    make(chan decodeJob, queue),
		results: make(chan decodeResult, queue),
		done:    make(chan struct{}),
	}
}

// loader is a background worker that decodes requested images.
func (tc *TextureCache) loader() {
	defer close(tc.done)
	for job := range tc.jobs {
		img, err := tc.decoder.Decode(job.ref)
		// Send the result back to the game goroutine.
		tc.results <- decodeResult{locator: job.locator, img: img, err: err}
	}
}

// Update must be called once per frame from the game goroutine, as
// ebiten.Image creation is not thread-safe.
func (tc *TextureCache) Update() {
	// Release textures evicted last frame; Draw no longer uses them.
	for _, img := range tc.released {
		img.Deallocate()
	}
	tc.released = tc.released[:0]

	for {
		select {
		case r := <-tc.results:
			t, ok := tc.entries[r.locator]
			if !ok {
				// Evicted while decoding.
				continue
			}
			if r.err != nil {
				service.Logger().Warn("cannot display image", "locator", r.locator, "err", r.err)
				t.state, t.err = TextureFailed, r.err
				continue
			}
			t.img = ebiten.NewImageFromImage(r.img)
			t.state = TextureReady
			service.Logger().Debug("texture ready", "locator", r.locator,
				"width", r.img.Bounds().Dx(), "height", r.img.Bounds().Dy())
		default:
			return
		}
	}
}

// Request returns the texture for ref, queueing a decode the first time a
// locator is seen. Requesting a new locator evicts all others.
func (tc *TextureCache) Request(ref viewer.ImageRef) (*ebiten.Image, TextureState) {
	loc := ref.Locator()
	if t, ok := tc.entries[loc]; ok {
		return t.img, t.state
	}
	if tc.closed {
		return nil, TextureLoading
	}

	select {
	case tc.jobs <- decodeJob{locator: loc, ref: ref}:
	default:
		// Loader is busy; try again next frame.
		return nil, TextureLoading
	}

	tc.evictExcept(loc)
	tc.entries[loc] = &texture{state: TextureLoading}
	return nil, TextureLoading
}

func (tc *TextureCache) evictExcept(keep string) {
	for loc, t := range tc.entries {
		if loc == keep {
			continue
		}
		if t.img != nil {
			tc.released = append(tc.released, t.img)
		}
		delete(tc.entries, loc)
	}
}

// Close stops the background loader once its queued decodes finish.
// Later requests are not queued. Close may be called more than once.
func (tc *TextureCache) Close() {
	if tc.closed {
		return
	}
	tc.closed = true
	close(tc.jobs)
}
