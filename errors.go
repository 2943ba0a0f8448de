package mousefood

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned by present callbacks and cancellation checks
// when the display is gone, for example because the viewport was closed.
var ErrCancelled = errors.New("mousefood: display cancelled")

// ConstructionError reports an invalid configuration. The pump never
// starts.
type ConstructionError struct {
	Reason string
	Err    error
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("construction error: %s: %v", e.Reason, e.Err)
	}
	return "construction error: " + e.Reason
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// DrawError reports a failed application draw callback. The frame is
// skipped and the loop continues.
type DrawError struct {
	Frame uint64
	Err   error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("draw error on frame %d: %v", e.Frame, e.Err)
}

func (e *DrawError) Unwrap() error { return e.Err }

// SurfaceError reports a pixel write or present failure for one frame.
// The frame is dropped and the loop continues. Present callbacks return a
// *SurfaceError for failures they can recover from.
type SurfaceError struct {
	Frame uint64
	// Op is "draw" for pixel writes and "present" for the present step.
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("surface error on frame %d (%s): %v", e.Frame, e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

// TerminationError ends the loop. It wraps the context error, ErrCancelled
// or the fatal present error that triggered it.
type TerminationError struct {
	// Frame is the number of frames drawn before termination.
	Frame uint64
	Err   error
}

func (e *TerminationError) Error() string {
	return fmt.Sprintf("terminated after %d frames: %v", e.Frame, e.Err)
}

func (e *TerminationError) Unwrap() error { return e.Err }

// Kind names the error class of err for exit messages: "construction",
// "draw", "surface", "termination" or "unknown".
func Kind(err error) string {
	var (
		construction *ConstructionError
		draw         *DrawError
		surface      *SurfaceError
		termination  *TerminationError
	)
	switch {
	case errors.As(err, &termination):
		return "termination"
	case errors.As(err, &construction):
		return "construction"
	case errors.As(err, &draw):
		return "draw"
	case errors.As(err, &surface):
		return "surface"
	default:
		return "unknown"
	}
}
