package main

import (
	"fmt"
	"image"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/gold-silver-copper/mousefood"
	"github.com/gold-silver-copper/mousefood/surface"
)

// upperHalf shows two display pixels per terminal cell: the top one as
// foreground, the bottom one as background.
const upperHalf = '▀'

type tcellDisplay struct {
	screen  tcell.Screen
	surface *surface.Image
	closed  atomic.Bool
}

func newTcellDisplay(width, height int) (*tcellDisplay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell: init: %w", err)
	}
	screen.Clear()

	d := &tcellDisplay{
		screen:  screen,
		surface: surface.NewRGBA(width, height),
	}
	go d.pollEvents()
	return d, nil
}

func (d *tcellDisplay) pollEvents() {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			// Fini was called.
			d.closed.Store(true)
			return
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				d.closed.Store(true)
				return
			}
		}
	}
}

func (d *tcellDisplay) Surface() surface.Surface { return d.surface }

func (d *tcellDisplay) Present(surface.Surface) error {
	if d.Closed() {
		return mousefood.ErrCancelled
	}
	img := d.surface.Image()
	bounds := img.Bounds()
	cols, rows := d.screen.Size()
	for y := 0; y < rows && bounds.Min.Y+2*y < bounds.Max.Y; y++ {
		top := bounds.Min.Y + 2*y
		for x := 0; x < cols && bounds.Min.X+x < bounds.Max.X; x++ {
			px := bounds.Min.X + x
			fg := tcellColor(img, px, top)
			bg := fg
			if top+1 < bounds.Max.Y {
				bg = tcellColor(img, px, top+1)
			}
			d.screen.SetContent(x, y, upperHalf, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
	d.screen.Show()
	return nil
}

func tcellColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (d *tcellDisplay) Closed() bool { return d.closed.Load() }

func (d *tcellDisplay) Close() error {
	d.screen.Fini()
	return nil
}
