package metrics

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// Sampler drives the bound slots of one panel: at every tick it samples
// each slot's source, prefixes the returned fields with the slot name
// and hands the merged snapshot to the callback. Each bound slot owns
// its source instance, so rate baselines never cross slots.
//
// The callback runs on the sampler's goroutine; UI code marshals the
// snapshot onto its own thread.
type Sampler struct {
	registry   *Registry
	onSnapshot func(map[string]string)
	log        *logrus.Entry

	mu       sync.Mutex
	slots    map[string]boundSlot
	order    []string
	interval time.Duration
	running  bool
	ticker   *time.Ticker
	stopChan chan struct{}
}

type boundSlot struct {
	source Source
	config model.SlotConfig
}

// NewSampler returns a sampler creating sources from the registry and
// delivering snapshots to onSnapshot. Nothing runs until Start.
func NewSampler(registry *Registry, onSnapshot func(map[string]string)) *Sampler {
	return &Sampler{
		registry:   registry,
		onSnapshot: onSnapshot,
		log:        logrus.WithField("component", "sampler"),
		slots:      map[string]boundSlot{},
		interval:   time.Second,
	}
}

// Bind points the sampler at a panel's slot bindings, replacing any
// previous binding. Slots without a source are dropped; unknown source
// IDs are logged and skipped. A running sampler picks up the panel's
// update interval immediately.
func (s *Sampler) Bind(cfg model.PanelSourceConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = map[string]boundSlot{}
	s.order = s.order[:0]
	for _, name := range cfg.SlotNames() {
		slot := cfg.Slot(name)
		if slot.SourceID == "" || slot.SourceID == "none" {
			continue
		}
		source, err := s.registry.Create(slot.SourceID)
		if err != nil {
			s.log.WithField("slot", name).WithError(err).Warn("skipping slot")
			continue
		}
		s.slots[name] = boundSlot{source: source, config: slot}
		s.order = append(s.order, name)
	}

	s.interval = cfg.UpdateInterval()
	if s.running && s.ticker != nil {
		s.ticker.Reset(s.interval)
	}
}

// BoundSlots returns the slot names that will be sampled, in slot
// order.
func (s *Sampler) BoundSlots() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Interval returns the active sampling interval.
func (s *Sampler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// Start begins periodic sampling. Calling Start on a running sampler
// does nothing.
func (s *Sampler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ticker = time.NewTicker(s.interval)
	s.stopChan = make(chan struct{})
	ticker, stopChan := s.ticker, s.stopChan
	s.mu.Unlock()

	go s.loop(ticker, stopChan)
}

// Stop halts sampling. Safe to call on a stopped sampler.
func (s *Sampler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.ticker.Stop()
	close(s.stopChan)
	s.mu.Unlock()
}

func (s *Sampler) loop(ticker *time.Ticker, stopChan chan struct{}) {
	for {
		select {
		case <-ticker.C:
			snapshot := s.SampleOnce()
			if s.onSnapshot != nil {
				s.onSnapshot(snapshot)
			}
		case <-stopChan:
			return
		}
	}
}

// SampleOnce samples every bound slot immediately and returns the
// merged, slot-prefixed snapshot. A failing slot is logged and leaves
// the others untouched.
func (s *Sampler) SampleOnce() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := map[string]string{}
	for _, name := range s.order {
		bound := s.slots[name]
		values, err := bound.source.Sample(bound.config.SourceConfig)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"slot":   name,
				"source": bound.source.ID(),
			}).WithError(err).Warn("sample failed")
			continue
		}
		for key, value := range values {
			out[model.FieldKey(name, key)] = value
		}
		if bound.config.CaptionOverride != "" {
			out[model.FieldKey(name, model.FieldCaption)] = bound.config.CaptionOverride
		}
	}
	return out
}
