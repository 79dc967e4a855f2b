package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"sync/atomic"
)

// ErrUnavailable reports that no drawing backend could be brought up.
// Callers treat it as a soft condition: skip generation and point the user
// at the browser-based fallback instead of failing the run.
var ErrUnavailable = errors.New("drawing backend unavailable")

// Renderer produces icon rasters and writes them out.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	RenderIcon(size int) (*image.RGBA, error)
	SaveIcon(img image.Image, path string) error
}

// IconRenderer draws icons onto an offscreen RGBA canvas and encodes them
// as PNG files.
type IconRenderer struct {
	running atomic.Bool
	Logger  interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewIconRenderer() *IconRenderer { return &IconRenderer{} }

func (r *IconRenderer) Start(ctx context.Context) error {
	r.running.Store(true)
	if r.Logger != nil {
		r.Logger.Infof("render", "raster backend ready")
	}
	return nil
}

func (r *IconRenderer) Stop() error {
	r.running.Store(false)
	return nil
}

// RenderIcon draws the calendar glyph at the given edge length.
func (r *IconRenderer) RenderIcon(size int) (*image.RGBA, error) {
	if !r.running.Load() {
		return nil, ErrUnavailable
	}
	img, err := ComposeIcon(size)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "compose %dx%d failed: %v", size, size, err)
		}
		return nil, err
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "composed %dx%d icon", size, size)
	}
	return img, nil
}

// SaveIcon encodes img as PNG at path, overwriting any existing file.
func (r *IconRenderer) SaveIcon(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "wrote %s", path)
	}
	return nil
}

// UnavailableRenderer is a stub whose backend never comes up. It stands in
// for the real renderer on platforms (or builds) without a drawing
// facility and in tests of the skip path.
type UnavailableRenderer struct{}

func (UnavailableRenderer) Start(ctx context.Context) error { return ErrUnavailable }
func (UnavailableRenderer) Stop() error                     { return nil }
func (UnavailableRenderer) RenderIcon(size int) (*image.RGBA, error) {
	return nil, ErrUnavailable
}
func (UnavailableRenderer) SaveIcon(img image.Image, path string) error { return ErrUnavailable }
