// Package refresh decouples theme changes from the widgets that
// display resolved theme values. Editors subscribe a refresh callback
// under a stable id when they are built; whoever mutates the theme
// calls Notify and every subscriber re-pulls its state.
package refresh

// Bus is an ordered list of refresh callbacks keyed by stable ids.
// It is not safe for concurrent use: all access happens on the UI
// event loop.
type Bus struct {
	ids       []string
	callbacks map[string]func()
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{callbacks: map[string]func(){}}
}

// Subscribe registers fn under id. A new id appends to the end; an
// existing id is replaced in place, keeping its original position, so
// rebuilding one editor does not shuffle it behind callbacks that
// depend on running after it.
func (b *Bus) Subscribe(id string, fn func()) {
	if _, ok := b.callbacks[id]; !ok {
		b.ids = append(b.ids, id)
	}
	b.callbacks[id] = fn
}

// Unsubscribe removes the callback registered under id, if any.
func (b *Bus) Unsubscribe(id string) {
	if _, ok := b.callbacks[id]; !ok {
		return
	}
	delete(b.callbacks, id)
	for i, other := range b.ids {
		if other == id {
			b.ids = append(b.ids[:i], b.ids[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered callbacks.
func (b *Bus) Len() int {
	return len(b.ids)
}

// Notify invokes every callback once, in registration order. The pass
// runs over a snapshot of the id list: subscriptions made during
// notification wait for the next pass, and a callback unsubscribed
// mid-pass no longer runs.
func (b *Bus) Notify() {
	ids := append([]string(nil), b.ids...)
	for _, id := range ids {
		if fn, ok := b.callbacks[id]; ok {
			fn()
		}
	}
}

// UpdateGuard breaks callback loops between paired inputs (a slider
// and its spin button, a color button and its hex entry). Wrap
// programmatic widget updates in Begin/End; change handlers bail out
// while the guard is active.
type UpdateGuard struct {
	depth int
}

// Begin enters a guarded update. Calls nest.
func (g *UpdateGuard) Begin() {
	g.depth++
}

// End leaves a guarded update.
func (g *UpdateGuard) End() {
	if g.depth > 0 {
		g.depth--
	}
}

// Active reports whether a guarded update is in progress.
func (g *UpdateGuard) Active() bool {
	return g.depth > 0
}
