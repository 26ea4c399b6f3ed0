package chart

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

var ErrReleased = errors.New("chart: instance already released")

// Instance is a live chart bound to one render target. At most one instance
// may be live per target; the Registry enforces that by releasing the prior
// occupant on Replace.
type Instance struct {
	Target string
	Kind   string

	// Token orders instances produced for the same target. The registry
	// refuses to install an instance older than the one it replaced.
	Token uint64

	// Fallback marks an instance that downgraded to a simpler chart type
	// after the requested one failed to render.
	Fallback bool

	mu       sync.Mutex
	canvas   *Canvas
	released bool
}

func newInstance(target, kind string, token uint64, canvas *Canvas) *Instance {
	return &Instance{
		Target: target,
		Kind:   kind,
		Token:  token,
		canvas: canvas,
	}
}

// Render draws the chart as PNG. The configuration is immutable, so the
// chart can be re-rendered from scratch any number of times until released.
func (i *Instance) Render(w io.Writer) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.released {
		return ErrReleased
	}
	return i.canvas.Render(chart.PNG, w)
}

// RenderSVG draws the chart as SVG.
func (i *Instance) RenderSVG(w io.Writer) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.released {
		return ErrReleased
	}
	return i.canvas.Render(chart.SVG, w)
}

// Release frees the instance. Further renders fail with ErrReleased.
// Release is idempotent.
func (i *Instance) Release() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.released = true
	i.canvas = nil
}

// Released reports whether the instance has been freed.
func (i *Instance) Released() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.released
}
