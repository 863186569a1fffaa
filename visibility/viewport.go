package visibility

import (
	"sync"

	"github.com/karupanerura/lazyload"
)

const (
	// DefaultThreshold is the default minimum visible ratio of a region to count as visible.
	DefaultThreshold = 0.1

	// DefaultRootMargin is the default distance by which the viewport is grown on both edges,
	// so that regions are reported slightly before they scroll in.
	DefaultRootMargin = 100.0
)

// Region is the vertical extent of an item in list coordinates.
type Region struct {
	Top    float64
	Height float64
}

// Bottom returns the bottom edge of the region.
func (r Region) Bottom() float64 {
	return r.Top + r.Height
}

// IntersectionRatio returns the ratio of the region height that lies in [top, bottom].
// An empty region never intersects.
func IntersectionRatio(r Region, top, bottom float64) float64 {
	if r.Height <= 0 {
		return 0
	}
	overlap := min(bottom, r.Bottom()) - max(top, r.Top)
	if overlap <= 0 {
		return 0
	}
	return overlap / r.Height
}

// ViewportOption is the interface for the options of the Viewport.
type ViewportOption interface {
	apply(*Viewport)
}

type viewportOptionFunc func(*Viewport)

func (f viewportOptionFunc) apply(v *Viewport) {
	f(v)
}

// WithThreshold sets the minimum visible ratio. It must be in the range of [0, 1].
// A zero threshold reports any overlap.
func WithThreshold(threshold float64) ViewportOption {
	if threshold < 0 || threshold > 1 {
		panic("threshold must be in the range of [0, 1]")
	}
	return viewportOptionFunc(func(v *Viewport) {
		v.threshold = threshold
	})
}

// WithRootMargin sets the distance by which the viewport is grown on both edges.
func WithRootMargin(margin float64) ViewportOption {
	return viewportOptionFunc(func(v *Viewport) {
		v.rootMargin = margin
	})
}

type placement struct {
	region       Region
	placed       bool
	intersecting bool
	trigger      *Trigger
}

// Viewport is a vertically scrolled window over a list of regions.
// It is safe for concurrent use; signals are fired outside of its lock.
type Viewport struct {
	height     float64
	threshold  float64
	rootMargin float64

	mu     sync.Mutex
	offset float64
	items  map[string]*placement
}

// NewViewport creates a viewport of the given height scrolled to the top.
func NewViewport(height float64, opts ...ViewportOption) *Viewport {
	v := &Viewport{
		height:     height,
		threshold:  DefaultThreshold,
		rootMargin: DefaultRootMargin,
		items:      map[string]*placement{},
	}
	for _, o := range opts {
		o.apply(v)
	}
	return v
}

// Signal returns the visibility signal of the item.
// Subscribe to it before placing the item to observe the initial intersection.
func (v *Viewport) Signal(id string) lazyload.VisibilitySignal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.placementLocked(id).trigger
}

// Place sets the region of the item and fires its signal if it has just become visible.
func (v *Viewport) Place(id string, region Region) {
	v.mu.Lock()
	p := v.placementLocked(id)
	p.region = region
	p.placed = true
	fire := v.updateLocked(p)
	v.mu.Unlock()

	if fire {
		p.trigger.Fire()
	}
}

// Remove forgets the item. Its signal never fires again.
func (v *Viewport) Remove(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.items, id)
}

// ScrollTo moves the top edge of the viewport and fires the signals of the items
// that have entered it.
func (v *Viewport) ScrollTo(offset float64) {
	v.mu.Lock()
	v.offset = offset
	var triggers []*Trigger
	for _, p := range v.items {
		if v.updateLocked(p) {
			triggers = append(triggers, p.trigger)
		}
	}
	v.mu.Unlock()

	for _, t := range triggers {
		t.Fire()
	}
}

// ScrollBy moves the viewport by delta. See ScrollTo.
func (v *Viewport) ScrollBy(delta float64) {
	v.mu.Lock()
	offset := v.offset + delta
	v.mu.Unlock()

	v.ScrollTo(offset)
}

// Offset returns the top edge of the viewport.
func (v *Viewport) Offset() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

// Visible reports whether the item is currently intersecting the viewport.
func (v *Viewport) Visible(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	p, ok := v.items[id]
	return ok && p.intersecting
}

func (v *Viewport) placementLocked(id string) *placement {
	p, ok := v.items[id]
	if !ok {
		p = &placement{trigger: &Trigger{}}
		v.items[id] = p
	}
	return p
}

// updateLocked recomputes the intersection of the placement.
// It returns true when the placement has just started intersecting.
func (v *Viewport) updateLocked(p *placement) bool {
	was := p.intersecting
	p.intersecting = p.placed && v.intersects(p.region)
	return p.intersecting && !was
}

func (v *Viewport) intersects(r Region) bool {
	top := v.offset - v.rootMargin
	bottom := v.offset + v.height + v.rootMargin
	ratio := IntersectionRatio(r, top, bottom)
	return ratio > 0 && ratio >= v.threshold
}
