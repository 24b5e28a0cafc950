package attach

import (
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/arabtext/detector"
	"github.com/npillmayer/arabtext/shaping"
)

// Display is a text display with a stable identity.
type Display interface {
	detector.TextSource
	ID() int
}

// HandlerOwner may be implemented by displays which carry a handler of
// their own, e.g. one configured by hand. A registry will not attach a
// second one.
type HandlerOwner interface {
	HasHandler() bool
}

// Scene enumerates the live displays of a host.
type Scene interface {
	Displays() []Display
}

// Factory creates a handler for a display. It may return nil to leave a
// display alone.
type Factory func(Display) *detector.Handler

// NewFactory returns a factory creating handlers with a common shaper and
// configuration. If step is positive, handlers use a fixed time step per
// tick, otherwise each handler gets its own wall clock.
func NewFactory(shaper shaping.Shaper, step time.Duration, conf detector.Config) Factory {
	return func(d Display) *detector.Handler {
		var clock detector.TimeSource
		if step > 0 {
			clock = detector.FixedStep(step)
		} else {
			clock = detector.NewWallClock()
		}
		return detector.New(d, shaper, clock, conf)
	}
}

// DefaultMaxAge is the maximum age of the set of known displays.
const DefaultMaxAge = 60 * time.Second

// Registry keeps track of displays and their handlers.
type Registry struct {
	factory  Factory
	maxAge   time.Duration
	now      func() time.Time
	built    time.Time
	handled  *hashset.Set // IDs of displays seen
	handlers *treemap.Map // ID -> *detector.Handler, ordered by ID
}

// NewRegistry creates a registry. maxAge <= 0 disables invalidation by age.
func NewRegistry(factory Factory, maxAge time.Duration) *Registry {
	r := &Registry{
		factory:  factory,
		maxAge:   maxAge,
		now:      time.Now,
		handled:  hashset.New(),
		handlers: treemap.NewWithIntComparator(),
	}
	r.built = r.now()
	return r
}

// Scan attaches handlers to displays not seen before and returns the
// number of handlers created.
func (r *Registry) Scan(scene Scene) int {
	attached := 0
	for _, d := range scene.Displays() {
		id := d.ID()
		if r.handled.Contains(id) {
			continue
		}
		r.handled.Add(id)
		if owner, ok := d.(HandlerOwner); ok && owner.HasHandler() {
			tracer().Debugf("display %d has a handler of its own", id)
			continue
		}
		if _, found := r.handlers.Get(id); found {
			continue
		}
		if r.factory == nil {
			continue
		}
		if h := r.factory(d); h != nil {
			r.handlers.Put(id, h)
			attached++
		}
	}
	if attached > 0 {
		tracer().Infof("attached %d handler(s)", attached)
	}
	return attached
}

// HierarchyChanged is called whenever displays have been added to or
// removed from the scene. Handlers of vanished displays are dropped, then
// the scene is scanned.
func (r *Registry) HierarchyChanged(scene Scene) int {
	if r.maxAge > 0 && r.now().Sub(r.built) > r.maxAge {
		tracer().Debugf("registry older than %v, invalidating", r.maxAge)
		r.Invalidate()
	}
	live := hashset.New()
	for _, d := range scene.Displays() {
		live.Add(d.ID())
	}
	for _, v := range r.handled.Values() {
		if !live.Contains(v) {
			r.handled.Remove(v)
		}
	}
	for _, k := range r.handlers.Keys() {
		if !live.Contains(k) {
			tracer().Debugf("display %d vanished", k)
			r.handlers.Remove(k)
		}
	}
	return r.Scan(scene)
}

// Invalidate forgets which displays have been seen. Existing handlers are
// kept.
func (r *Registry) Invalidate() {
	r.handled.Clear()
	r.built = r.now()
}

// Handler returns the handler attached to display id, if any.
func (r *Registry) Handler(id int) (*detector.Handler, bool) {
	v, found := r.handlers.Get(id)
	if !found {
		return nil, false
	}
	return v.(*detector.Handler), true
}

// TickAll ticks all handlers, in order of display ID.
func (r *Registry) TickAll() {
	r.handlers.Each(func(_ interface{}, v interface{}) {
		v.(*detector.Handler).Tick()
	})
}

// IDs returns the IDs of displays with a handler, in ascending order.
func (r *Registry) IDs() []int {
	keys := r.handlers.Keys()
	ids := make([]int, len(keys))
	for i, k := range keys {
		ids[i] = k.(int)
	}
	return ids
}

// Len returns the number of handlers.
func (r *Registry) Len() int {
	return r.handlers.Size()
}

// Seen returns the number of known displays, with or without handler.
func (r *Registry) Seen() int {
	return r.handled.Size()
}
