// Package lightbox holds the interaction state of the full-screen image
// viewer: current index, zoom, pan and the active drag session. Events are
// processed one at a time; the only internal concurrency is the settle
// timer that clears zoom and pan shortly after a navigation.
package lightbox

import (
	"sync"
	"time"
)

const (
	ZoomMin  = 1.0
	ZoomMax  = 4.0
	ZoomStep = 0.25

	// Zoom level a double-activate toggles to from the resting state.
	DoubleTapZoom = 2.0

	// Delay before zoom and pan are cleared after switching images. The
	// reset is deliberately deferred: clearing immediately causes a visible
	// flash on touch devices while the new image renders.
	DefaultSettleDelay = 50 * time.Millisecond
)

type Point struct {
	X float64
	Y float64
}

type Lightbox struct {
	mu sync.Mutex

	count int
	open  bool

	index    int
	zoom     float64
	pan      Point
	dragging bool
	anchor   Point

	settleDelay time.Duration
	settleTimer *time.Timer
	gen         uint64
}

// New returns a closed lightbox over the given number of images.
func New(imageCount int) *Lightbox {
	return &Lightbox{
		count:       imageCount,
		zoom:        ZoomMin,
		settleDelay: DefaultSettleDelay,
	}
}

// SetSettleDelay overrides the navigation settle delay.
func (l *Lightbox) SetSettleDelay(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settleDelay = d
}

// Open shows the image at startIndex with zoom and pan reset. Opening an
// empty lightbox is a no-op.
func (l *Lightbox) Open(startIndex int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count == 0 {
		return
	}

	l.cancelSettle()
	l.open = true
	l.index = ((startIndex % l.count) + l.count) % l.count
	l.resetView()
}

// Close discards the session. No state survives into the next Open.
func (l *Lightbox) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return
	}

	l.cancelSettle()
	l.open = false
	l.resetView()
}

func (l *Lightbox) Next() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return
	}

	l.index = (l.index + 1) % l.count
	l.scheduleSettle()
}

func (l *Lightbox) Previous() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return
	}

	l.index = (l.index - 1 + l.count) % l.count
	l.scheduleSettle()
}

// Select jumps to a thumbnail. Out-of-range indices are ignored.
func (l *Lightbox) Select(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open || index < 0 || index >= l.count {
		return
	}

	l.index = index
	l.scheduleSettle()
}

func (l *Lightbox) ZoomIn() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return
	}

	l.zoom += ZoomStep
	if l.zoom > ZoomMax {
		l.zoom = ZoomMax
	}
}

func (l *Lightbox) ZoomOut() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return
	}

	l.zoom -= ZoomStep
	if l.zoom <= ZoomMin {
		l.zoom = ZoomMin
		l.pan = Point{}
	}
}

// DoubleActivate toggles between the resting view and a fixed zoom level.
func (l *Lightbox) DoubleActivate() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return
	}

	if l.zoom == ZoomMin {
		l.zoom = DoubleTapZoom
		l.pan = Point{}
	} else {
		l.resetView()
	}
}

// Reset clears zoom, pan and any drag session immediately.
func (l *Lightbox) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return
	}

	l.cancelSettle()
	l.resetView()
}

// DragStart begins a pan session. Dragging is only meaningful when zoomed
// in; at resting zoom it is a no-op. Touch input feeds the primary contact
// point through the same transitions.
func (l *Lightbox) DragStart(p Point) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open || l.zoom <= ZoomMin {
		return
	}

	l.dragging = true
	l.anchor = Point{X: p.X - l.pan.X, Y: p.Y - l.pan.Y}
}

func (l *Lightbox) DragMove(p Point) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open || !l.dragging || l.zoom <= ZoomMin {
		return
	}

	l.pan = Point{X: p.X - l.anchor.X, Y: p.Y - l.anchor.Y}
}

// DragEnd closes the drag session; the pan offset persists.
func (l *Lightbox) DragEnd() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return
	}

	l.dragging = false
}

// HandleKey dispatches a keyboard event by key name. Unknown keys are
// ignored; every key is ignored while closed.
func (l *Lightbox) HandleKey(key string) {
	switch key {
	case "Escape":
		l.Close()
	case "ArrowLeft":
		l.Previous()
	case "ArrowRight":
		l.Next()
	case "+", "=":
		l.ZoomIn()
	case "-":
		l.ZoomOut()
	}
}

func (l *Lightbox) IsOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open
}

func (l *Lightbox) Index() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index
}

func (l *Lightbox) Zoom() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zoom
}

func (l *Lightbox) Pan() Point {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pan
}

func (l *Lightbox) Dragging() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dragging
}

// resetView clears zoom, pan and the drag session. Callers hold the lock.
func (l *Lightbox) resetView() {
	l.zoom = ZoomMin
	l.pan = Point{}
	l.dragging = false
	l.anchor = Point{}
}

// scheduleSettle arms the deferred reset. A newer navigation, Reset, Close
// or reopen supersedes any pending one. Callers hold the lock.
func (l *Lightbox) scheduleSettle() {
	l.cancelSettle()

	g := l.gen
	l.settleTimer = time.AfterFunc(l.settleDelay, func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		if !l.open || l.gen != g {
			return
		}
		l.resetView()
	})
}

func (l *Lightbox) cancelSettle() {
	l.gen++
	if l.settleTimer != nil {
		l.settleTimer.Stop()
		l.settleTimer = nil
	}
}
