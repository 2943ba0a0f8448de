package main

import (
	"fmt"
	"image"
	"sync/atomic"

	"github.com/gold-silver-copper/mousefood"
	"github.com/gold-silver-copper/mousefood/surface"
	"github.com/sheik/xgb/xproto"
	"github.com/sheik/xgbutil"
	"github.com/sheik/xgbutil/keybind"
	"github.com/sheik/xgbutil/xevent"
	"github.com/sheik/xgbutil/xgraphics"
	"github.com/sheik/xgbutil/xwindow"
)

// x11Display shows the display in a window, each display pixel drawn as a
// scale x scale block.
type x11Display struct {
	X       *xgbutil.XUtil
	img     *xgraphics.Image
	window  *xwindow.Window
	surface *surface.Scaled
	closed  atomic.Bool
}

func newX11Display(width, height, scale int) (*x11Display, error) {
	X, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	keybind.Initialize(X)

	img := xgraphics.New(X, image.Rect(0, 0, width*scale, height*scale))
	scaled, err := surface.Scale(img, scale)
	if err != nil {
		X.Conn().Close()
		return nil, fmt.Errorf("x11: %w", err)
	}

	d := &x11Display{X: X, img: img, surface: scaled}
	// Closing the window quits the event loop.
	d.window = img.XShowExtra(windowTitle, true)
	if err := d.window.Listen(xproto.EventMaskKeyPress); err != nil {
		X.Conn().Close()
		return nil, fmt.Errorf("x11: listen: %w", err)
	}
	xevent.KeyPressFun(d.keyPress).Connect(X, d.window.Id)

	go func() {
		xevent.Main(X)
		d.closed.Store(true)
	}()
	return d, nil
}

func (d *x11Display) keyPress(X *xgbutil.XUtil, e xevent.KeyPressEvent) {
	if keybind.KeyMatch(X, "Escape", e.State, e.Detail) || keybind.LookupString(X, e.State, e.Detail) == "q" {
		xevent.Quit(X)
	}
}

func (d *x11Display) Surface() surface.Surface { return d.surface }

func (d *x11Display) Present(surface.Surface) error {
	if d.Closed() {
		return mousefood.ErrCancelled
	}
	d.img.XDraw()
	d.img.XPaint(d.window.Id)
	return nil
}

func (d *x11Display) Closed() bool { return d.closed.Load() }

func (d *x11Display) Close() error {
	if !d.closed.Load() {
		xevent.Quit(d.X)
	}
	d.img.Destroy()
	d.X.Conn().Close()
	return nil
}
