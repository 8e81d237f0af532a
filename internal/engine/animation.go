package engine

import "math"

// targetChangeThreshold filters sensor jitter: target updates smaller
// than half a percent of the bar range do not restart the animation.
const targetChangeThreshold = 0.005

// frameTime is the assumed tick length of the animation loop (~60fps).
const frameTime = 0.016

// AnimatedValue eases a displayed value toward its live target. The
// zero value is ready to use; the first SetTarget snaps instead of
// animating so a fresh panel does not sweep up from zero.
type AnimatedValue struct {
	Current float64
	Target  float64
	updated bool
}

// SetTarget feeds a new sample into the animation. Changes within the
// jitter threshold leave the target alone. With animation off, or on
// the first sample, Current snaps straight to the value. Returns
// whether the display needs a redraw.
func (v *AnimatedValue) SetTarget(target float64, animate bool) bool {
	changed := math.Abs(v.Target-target) > targetChangeThreshold
	if changed {
		v.Target = target
	}
	if !v.updated || !animate {
		v.Current = target
		v.updated = true
		return true
	}
	return changed
}

// Step advances Current toward Target by one frame at the given speed,
// snapping when within snapThreshold. Returns whether Current moved.
func (v *AnimatedValue) Step(speed, snapThreshold float64) bool {
	diff := v.Target - v.Current
	if math.Abs(diff) > snapThreshold {
		v.Current += diff * speed * frameTime
		return true
	}
	if v.Current != v.Target {
		v.Current = v.Target
		return true
	}
	return false
}

// Animator holds every animated value of one panel, keyed by slot
// prefix: one value per bar-style slot, a vector per core-bars slot.
type Animator struct {
	bars  map[string]*AnimatedValue
	cores map[string][]*AnimatedValue
}

// NewAnimator returns an empty animator.
func NewAnimator() *Animator {
	return &Animator{
		bars:  map[string]*AnimatedValue{},
		cores: map[string][]*AnimatedValue{},
	}
}

// Bar returns the animated value for a slot, creating it on first use.
func (a *Animator) Bar(prefix string) *AnimatedValue {
	v, ok := a.bars[prefix]
	if !ok {
		v = &AnimatedValue{}
		a.bars[prefix] = v
	}
	return v
}

// Cores returns the per-core animated values for a slot, resized to n.
// Values for retained cores keep their state.
func (a *Animator) Cores(prefix string, n int) []*AnimatedValue {
	vals := a.cores[prefix]
	for len(vals) < n {
		vals = append(vals, &AnimatedValue{})
	}
	vals = vals[:n]
	a.cores[prefix] = vals
	return vals
}

// Step advances every animated value by one frame. Returns whether any
// of them moved.
func (a *Animator) Step(speed, snapThreshold float64) bool {
	moved := false
	for _, v := range a.bars {
		if v.Step(speed, snapThreshold) {
			moved = true
		}
	}
	for _, vals := range a.cores {
		for _, v := range vals {
			if v.Step(speed, snapThreshold) {
				moved = true
			}
		}
	}
	return moved
}

// CleanupPrefixes drops state for slots no longer in the active set,
// so a panel losing a group does not keep animating ghosts.
func (a *Animator) CleanupPrefixes(active []string) {
	keep := make(map[string]bool, len(active))
	for _, p := range active {
		keep[p] = true
	}
	for prefix := range a.bars {
		if !keep[prefix] {
			delete(a.bars, prefix)
		}
	}
	for prefix := range a.cores {
		if !keep[prefix] {
			delete(a.cores, prefix)
		}
	}
}

// GraphPoint is one sample of a slot's history series.
type GraphPoint struct {
	Value     float64
	Timestamp float64 // seconds since the panel started sampling
}

// GraphHistory keeps the bounded per-slot series graph displays draw
// from.
type GraphHistory struct {
	series map[string][]GraphPoint
}

// NewGraphHistory returns an empty history.
func NewGraphHistory() *GraphHistory {
	return &GraphHistory{series: map[string][]GraphPoint{}}
}

// Push appends a sample to a slot's series and trims the front so at
// most maxPoints remain. maxPoints below 1 keeps a single sample.
func (h *GraphHistory) Push(prefix string, value, timestamp float64, maxPoints int) {
	if maxPoints < 1 {
		maxPoints = 1
	}
	s := append(h.series[prefix], GraphPoint{Value: value, Timestamp: timestamp})
	if over := len(s) - maxPoints; over > 0 {
		s = s[over:]
	}
	h.series[prefix] = s
}

// Points returns a slot's series, oldest first.
func (h *GraphHistory) Points(prefix string) []GraphPoint {
	return h.series[prefix]
}

// CleanupPrefixes drops series for slots no longer in the active set.
func (h *GraphHistory) CleanupPrefixes(active []string) {
	keep := make(map[string]bool, len(active))
	for _, p := range active {
		keep[p] = true
	}
	for prefix := range h.series {
		if !keep[prefix] {
			delete(h.series, prefix)
		}
	}
}
