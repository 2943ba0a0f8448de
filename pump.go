// Package mousefood renders a cell based text UI onto any pixel
// addressable surface and drives its redraw loop.
package mousefood

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime/debug"
	"time"

	"github.com/gold-silver-copper/mousefood/logger"
	"github.com/gold-silver-copper/mousefood/surface"
	"github.com/gold-silver-copper/mousefood/terminal/grid"
	"github.com/gold-silver-copper/mousefood/terminal/style"
)

type State int

const (
	StateIdle State = iota
	StateRendering
	StatePresenting
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StatePresenting:
		return "presenting"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Pump owns the redraw loop: it hands a blank frame to the draw callback,
// draws the result onto the surface and presents it.
type Pump struct {
	opts    Options
	surface surface.Surface
	backend *Backend
	buf     *grid.Buffer
	logger  logger.Logger

	state  State
	frames uint64
	budget time.Duration
}

// New validates the configuration and sizes the grid from the surface and
// the rasterizer's cell size. All failures are *ConstructionError.
func New(s surface.Surface, opts Options) (*Pump, error) {
	if s == nil {
		return nil, &ConstructionError{Reason: "nil surface"}
	}
	if opts.Present == nil {
		return nil, &ConstructionError{Reason: "missing present callback"}
	}
	if opts.FrameRate < 0 {
		return nil, &ConstructionError{Reason: fmt.Sprintf("invalid frame rate %d", opts.FrameRate)}
	}
	size := s.Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, &ConstructionError{Reason: fmt.Sprintf("zero sized surface %v", size)}
	}
	opts.setDefaults()

	cell := opts.Rasterizer.CellSize()
	if cell.X <= 0 || cell.Y <= 0 {
		return nil, &ConstructionError{Reason: fmt.Sprintf("invalid cell size %v", cell)}
	}
	resolver := style.NewResolver(style.ResolverOptions{
		Palette:    opts.Palette,
		Foreground: opts.Foreground,
		Background: opts.Background,
		Epoch:      opts.Clock.Now(),
	})
	backend := NewBackend(opts.Rasterizer, resolver)
	cols, rows := backend.GridSize(size)
	buf, err := grid.New(cols, rows)
	if err != nil {
		return nil, &ConstructionError{
			Reason: fmt.Sprintf("surface %v is smaller than one %v cell", size, cell),
			Err:    err,
		}
	}

	p := &Pump{
		opts:    opts,
		surface: s,
		backend: backend,
		buf:     buf,
		logger:  logger.With(opts.Logger, "component", "pump"),
		state:   StateIdle,
	}
	if opts.FrameRate > 0 {
		p.budget = time.Second / time.Duration(opts.FrameRate)
	}
	p.logger.Info("pump ready",
		"cols", cols,
		"rows", rows,
		"cell", cell,
		"span", backend.Span(cols, rows).Size(),
		"surface", size,
		"frame_rate", opts.FrameRate,
	)
	return p, nil
}

// Size returns the grid size in cells.
func (p *Pump) Size() (cols, rows int) { return p.buf.Size() }

// Span returns the pixel rectangle the grid covers on the surface.
func (p *Pump) Span() image.Rectangle {
	return p.backend.Span(p.buf.Size())
}

func (p *Pump) State() State { return p.state }

// Frames returns the frame counter. It wraps on overflow.
func (p *Pump) Frames() uint64 { return p.frames }

func (p *Pump) setState(s State) {
	p.state = s
	if p.opts.OnState != nil {
		p.opts.OnState(s)
	}
}

// Step runs exactly one iteration and returns its error: *DrawError or
// *SurfaceError for a dropped frame, *TerminationError when present
// failed fatally. Once cancelled, Step only returns *TerminationError.
func (p *Pump) Step(draw DrawFunc) error {
	if p.state == StateCancelled {
		return &TerminationError{Frame: p.frames, Err: ErrCancelled}
	}

	p.setState(StateRendering)
	p.buf.Reset()
	frame := newFrame(p.buf, p.frames)
	err := p.callDraw(draw, frame)
	frame.release()
	count := p.frames
	p.frames++
	if err != nil {
		p.setState(StateIdle)
		return &DrawError{Frame: count, Err: err}
	}

	p.setState(StatePresenting)
	if err := p.backend.Draw(p.buf, p.surface, p.opts.Clock.Now()); err != nil {
		p.setState(StateIdle)
		return surfaceError(err, count, "draw")
	}
	if err := p.opts.Present(p.surface); err != nil {
		var se *SurfaceError
		if errors.As(err, &se) {
			p.setState(StateIdle)
			return surfaceError(err, count, "present")
		}
		p.setState(StateCancelled)
		return &TerminationError{Frame: p.frames, Err: err}
	}
	p.setState(StateIdle)
	return nil
}

func surfaceError(err error, frame uint64, op string) *SurfaceError {
	var se *SurfaceError
	if errors.As(err, &se) {
		out := *se
		out.Frame = frame
		if out.Op == "" {
			out.Op = op
		}
		return &out
	}
	return &SurfaceError{Frame: frame, Op: op, Err: err}
}

// callDraw runs the application callback. A panic inside it fails the
// frame instead of the loop.
func (p *Pump) callDraw(draw DrawFunc, frame *Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("panic in draw callback", "stack", string(debug.Stack()))
			err = fmt.Errorf("panic in draw callback: %v", r)
		}
	}()
	return draw(frame)
}

// Run iterates until ctx is done, the Cancelled check reports true, or
// present fails fatally. Per-iteration errors are logged and passed to
// OnError. Run always returns a *TerminationError.
func (p *Pump) Run(ctx context.Context, draw DrawFunc) error {
	p.logger.Debug("run loop started")
	for {
		if err := p.checkCancelled(ctx); err != nil {
			p.logger.Info("run loop cancelled", "frames", p.frames, "reason", err.Err)
			return err
		}
		start := p.opts.Clock.Now()
		err := p.Step(draw)

		var term *TerminationError
		if errors.As(err, &term) {
			p.logger.Info("run loop terminated", "frames", p.frames, "reason", term.Err)
			return term
		}
		if err != nil {
			p.logger.Warn("frame dropped", "error", err)
			if p.opts.OnError != nil {
				p.opts.OnError(err)
			}
		}
		p.pace(start)
	}
}

func (p *Pump) checkCancelled(ctx context.Context) *TerminationError {
	var reason error
	switch {
	case p.state == StateCancelled:
		reason = ErrCancelled
	case ctx.Err() != nil:
		reason = ctx.Err()
	case p.opts.Cancelled != nil && p.opts.Cancelled():
		reason = ErrCancelled
	default:
		return nil
	}
	if p.state != StateCancelled {
		p.setState(StateCancelled)
	}
	return &TerminationError{Frame: p.frames, Err: reason}
}

// pace sleeps away the rest of the frame budget.
func (p *Pump) pace(start time.Time) {
	if p.budget <= 0 {
		return
	}
	elapsed := p.opts.Clock.Now().Sub(start)
	if remaining := p.budget - elapsed; remaining > 0 {
		p.opts.Clock.Sleep(remaining)
	}
}
