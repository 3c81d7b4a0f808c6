package feed

import (
	"time"

	"golang.org/x/time/rate"
)

// Direction is the sign of a scroll gesture.
type Direction int

const (
	Back    Direction = -1
	None    Direction = 0
	Forward Direction = 1
)

// DefaultQuiet is the silence that separates two wheel gestures.
const DefaultQuiet = 250 * time.Millisecond

// Quantizer turns a burst of wheel events into at most one step per gesture.
//
// A gesture starts on the first event, on a direction change, or after
// quiet has elapsed since the previous event. Every later event of the
// same burst is swallowed. Steps are additionally limited to one per quiet
// window, which absorbs trackpad jitter that flips direction mid-swipe.
//
// A reversal that opens inside the window of the previous step is held
// rather than dropped: it steps on its first event after the window
// refills. A throttled gesture in the direction of the last step is only
// jitter and is swallowed whole.
// Not safe for concurrent use.
type Quantizer struct {
	quiet   time.Duration
	last    time.Time
	lastDir Direction
	stepDir Direction
	pending bool
	limiter *rate.Limiter
}

// NewQuantizer creates a quantizer. Non-positive quiet uses DefaultQuiet.
func NewQuantizer(quiet time.Duration) *Quantizer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Quantizer{
		quiet:   quiet,
		limiter: rate.NewLimiter(rate.Every(quiet), 1),
	}
}

// Observe records a wheel event at now and returns the step to apply:
// Forward, Back, or None when the event continues a gesture.
func (q *Quantizer) Observe(dir Direction, now time.Time) Direction {
	if dir == None {
		return None
	}

	fresh := q.last.IsZero() || dir != q.lastDir || now.Sub(q.last) >= q.quiet
	q.last = now
	q.lastDir = dir

	if fresh {
		q.pending = false
	} else if !q.pending {
		return None
	}
	if !q.limiter.AllowN(now, 1) {
		if fresh {
			q.pending = dir != q.stepDir
		}
		return None
	}
	q.pending = false
	q.stepDir = dir
	return dir
}

// Reset forgets the current gesture.
func (q *Quantizer) Reset() {
	q.last = time.Time{}
	q.lastDir = None
	q.stepDir = None
	q.pending = false
}
