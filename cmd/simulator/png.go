package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gold-silver-copper/mousefood"
	"github.com/gold-silver-copper/mousefood/logger"
	"github.com/gold-silver-copper/mousefood/surface"
)

// pngDisplay writes every presented frame to dir as frame-NNNN.png and
// closes itself after limit frames.
type pngDisplay struct {
	dir     string
	limit   int
	written int
	surface *surface.Image
	logger  logger.Logger
}

func newPNGDisplay(dir string, width, height, limit int, l logger.Logger) (*pngDisplay, error) {
	if limit < 1 {
		return nil, fmt.Errorf("png: frame limit %d must be at least 1", limit)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("png: %w", err)
	}
	return &pngDisplay{
		dir:     dir,
		limit:   limit,
		surface: surface.NewRGBA(width, height),
		logger:  logger.With(l, "driver", "png"),
	}, nil
}

func (d *pngDisplay) Surface() surface.Surface { return d.surface }

func (d *pngDisplay) Present(surface.Surface) error {
	if d.Closed() {
		return mousefood.ErrCancelled
	}
	path := filepath.Join(d.dir, fmt.Sprintf("frame-%04d.png", d.written))
	if err := d.write(path); err != nil {
		// A lost frame is not fatal.
		return &mousefood.SurfaceError{Op: "present", Err: err}
	}
	d.written++
	d.logger.Debug("frame written", "path", path)
	return nil
}

func (d *pngDisplay) write(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, d.surface.Image())
}

func (d *pngDisplay) Closed() bool { return d.written >= d.limit }

func (d *pngDisplay) Close() error { return nil }
