package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PulseBoard/internal/model"
)

type stubSource struct {
	id       string
	values   map[string]string
	err      error
	samples  int
	lastOpts map[string]any
}

func (s *stubSource) ID() string                    { return s.id }
func (s *stubSource) Name() string                  { return "Stub " + s.id }
func (s *stubSource) Fields() []model.FieldMetadata { return model.DefaultSlotFields() }

func (s *stubSource) Sample(opts map[string]any) (map[string]string, error) {
	s.samples++
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}

// stubRegistry registers a "stub" source and records every instance
// the registry hands out.
func stubRegistry(values map[string]string) (*Registry, *[]*stubSource) {
	reg := NewRegistry()
	var created []*stubSource
	reg.Register("stub", func() Source {
		s := &stubSource{id: "stub", values: values}
		created = append(created, s)
		return s
	})
	return reg, &created
}

func twoSlotConfig() model.PanelSourceConfig {
	cfg := model.DefaultSourceConfig()
	cfg.Groups = []model.GroupConfig{{ItemCount: 2, SizeWeight: 1.0}}
	cfg.SetSlot("group1_1", model.SlotConfig{SourceID: "stub"})
	cfg.SetSlot("group1_2", model.SlotConfig{SourceID: "stub", CaptionOverride: "Tweaked"})
	return cfg
}

func TestSampler_PrefixesSlotFields(t *testing.T) {
	reg, _ := stubRegistry(map[string]string{
		model.FieldCaption: "CPU",
		model.FieldValue:   "42.0",
	})
	s := NewSampler(reg, nil)
	s.Bind(twoSlotConfig())

	snapshot := s.SampleOnce()

	assert.Equal(t, "42.0", snapshot["group1_1_value"])
	assert.Equal(t, "42.0", snapshot["group1_2_value"])
	assert.Equal(t, "CPU", snapshot["group1_1_caption"])
	assert.Equal(t, "Tweaked", snapshot["group1_2_caption"], "slot caption override wins")
}

func TestSampler_EachSlotOwnsItsInstance(t *testing.T) {
	reg, created := stubRegistry(map[string]string{model.FieldValue: "1"})
	s := NewSampler(reg, nil)
	s.Bind(twoSlotConfig())

	require.Len(t, *created, 2)
	assert.NotSame(t, (*created)[0], (*created)[1])
}

func TestSampler_SkipsUnboundAndUnknownSlots(t *testing.T) {
	reg, _ := stubRegistry(map[string]string{model.FieldValue: "1"})
	cfg := model.DefaultSourceConfig()
	cfg.Groups = []model.GroupConfig{{ItemCount: 4, SizeWeight: 1.0}}
	cfg.SetSlot("group1_1", model.SlotConfig{SourceID: "stub"})
	cfg.SetSlot("group1_2", model.SlotConfig{SourceID: "none"})
	cfg.SetSlot("group1_3", model.SlotConfig{SourceID: "ghost"})
	// group1_4 never bound.

	s := NewSampler(reg, nil)
	s.Bind(cfg)

	assert.Equal(t, []string{"group1_1"}, s.BoundSlots())

	snapshot := s.SampleOnce()
	assert.Contains(t, snapshot, "group1_1_value")
	assert.NotContains(t, snapshot, "group1_3_value")
}

func TestSampler_IgnoresStaleSlotBindings(t *testing.T) {
	reg, _ := stubRegistry(map[string]string{model.FieldValue: "1"})
	cfg := twoSlotConfig()
	// Binding left behind by a larger former grid.
	cfg.SetSlot("group3_1", model.SlotConfig{SourceID: "stub"})

	s := NewSampler(reg, nil)
	s.Bind(cfg)

	snapshot := s.SampleOnce()
	assert.NotContains(t, snapshot, "group3_1_value", "slots outside the grid are not sampled")
}

func TestSampler_PassesSlotOptions(t *testing.T) {
	reg, created := stubRegistry(map[string]string{model.FieldValue: "1"})
	cfg := model.DefaultSourceConfig()
	cfg.Groups = []model.GroupConfig{{ItemCount: 1, SizeWeight: 1.0}}
	cfg.SetSlot("group1_1", model.SlotConfig{
		SourceID:     "stub",
		SourceConfig: map[string]any{"direction": "rx"},
	})

	s := NewSampler(reg, nil)
	s.Bind(cfg)
	s.SampleOnce()

	require.Len(t, *created, 1)
	assert.Equal(t, "rx", (*created)[0].lastOpts["direction"])
}

func TestSampler_FailingSlotLeavesOthersIntact(t *testing.T) {
	reg := NewRegistry()
	reg.Register("bad", func() Source {
		return &stubSource{id: "bad", err: errors.New("sensor gone")}
	})
	reg.Register("good", func() Source {
		return &stubSource{id: "good", values: map[string]string{model.FieldValue: "7"}}
	})

	cfg := model.DefaultSourceConfig()
	cfg.Groups = []model.GroupConfig{{ItemCount: 2, SizeWeight: 1.0}}
	cfg.SetSlot("group1_1", model.SlotConfig{SourceID: "bad"})
	cfg.SetSlot("group1_2", model.SlotConfig{SourceID: "good"})

	s := NewSampler(reg, nil)
	s.Bind(cfg)

	snapshot := s.SampleOnce()
	assert.NotContains(t, snapshot, "group1_1_value")
	assert.Equal(t, "7", snapshot["group1_2_value"])
}

func TestSampler_BindSetsInterval(t *testing.T) {
	reg, _ := stubRegistry(nil)
	cfg := twoSlotConfig()
	cfg.UpdateIntervalMS = 250

	s := NewSampler(reg, nil)
	s.Bind(cfg)

	assert.Equal(t, 250*time.Millisecond, s.Interval())
}

func TestSampler_StartStopDeliversSnapshots(t *testing.T) {
	reg, _ := stubRegistry(map[string]string{model.FieldValue: "1"})
	cfg := twoSlotConfig()
	cfg.UpdateIntervalMS = 10

	var mu sync.Mutex
	count := 0
	s := NewSampler(reg, func(snapshot map[string]string) {
		mu.Lock()
		defer mu.Unlock()
		count++
		assert.Contains(t, snapshot, "group1_1_value")
	})
	s.Bind(cfg)

	s.Start()
	s.Start() // second Start is a no-op
	defer s.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count >= 2
	}, 2*time.Second, 5*time.Millisecond, "ticker snapshots arrive")

	s.Stop()
	mu.Lock()
	stopped := count
	mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.LessOrEqual(t, count, stopped+1, "at most one in-flight snapshot after Stop")
	mu.Unlock()

	s.Stop() // second Stop is a no-op
}

func TestRegistry_CreateAndOrder(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, []string{"cpu", "memory", "disk", "network", "host"}, reg.IDs())
	assert.True(t, reg.Has("cpu"))
	assert.False(t, reg.Has("gpu"))

	a, err := reg.Create("cpu")
	require.NoError(t, err)
	b, err := reg.Create("cpu")
	require.NoError(t, err)
	assert.NotSame(t, a, b, "every slot gets its own instance")

	_, err = reg.Create("gpu")
	assert.Error(t, err)
}

func TestRegistry_DisplayName(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, "Memory (RAM)", reg.DisplayName("memory"))
	assert.Equal(t, "gpu", reg.DisplayName("gpu"), "unknown IDs fall back to the ID")
}

func TestRegistry_RegisterReplacesInPlace(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", func() Source { return &stubSource{id: "a"} })
	reg.Register("b", func() Source { return &stubSource{id: "b"} })
	reg.Register("a", func() Source { return &stubSource{id: "a2"} })

	assert.Equal(t, []string{"a", "b"}, reg.IDs(), "re-registering keeps position")
	src, err := reg.Create("a")
	require.NoError(t, err)
	assert.Equal(t, "a2", src.ID())
}
