package state

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/sightcalc/internal/entry"
)

// apply runs a replay script against m and fails the test on a bad token.
func apply(t *testing.T, m *Manager, script string) {
	t.Helper()
	inputs, err := ParseInputs(script)
	require.NoError(t, err)
	for _, in := range inputs {
		m.Apply(in)
	}
}

func TestNewManager(t *testing.T) {
	m := NewManager(DefaultConfig())
	require.NotNil(t, m)

	snap := m.Snapshot()
	assert.Equal(t, entry.LHADegrees, snap.Active)
	assert.Equal(t, entry.Buffers{}, snap.Buffers)
	assert.Empty(t, snap.Events)

	_, ok := m.LastEvent()
	assert.False(t, ok)
}

func TestNewManager_DefaultsMaxEvents(t *testing.T) {
	m := NewManager(Config{})
	assert.Equal(t, 50, m.maxEvents)
}

func TestManager_ApplyDispatch(t *testing.T) {
	m := NewManager(DefaultConfig())

	assert.Equal(t, entry.FeedbackAccepted, m.Apply(Digit('3')))
	assert.Equal(t, entry.FeedbackAccepted, m.Apply(Digit('0')))
	assert.Equal(t, entry.FeedbackAdvanced, m.Apply(Press(OpEnter)))
	assert.Equal(t, entry.FeedbackRejected, m.Apply(Digit('-')))
	assert.Equal(t, entry.FeedbackAccepted, m.Apply(SelectField(entry.DecDegrees)))
	assert.Equal(t, entry.FeedbackAccepted, m.Apply(Digit('5')))
	assert.Equal(t, entry.FeedbackAccepted, m.Apply(Press(OpClearEntry)))

	snap := m.Snapshot()
	assert.Equal(t, "30", snap.Buffers.LHA.Degrees)
	assert.Empty(t, snap.Buffers.Dec.Degrees)
	assert.Equal(t, entry.DecDegrees, snap.Active)

	assert.Equal(t, entry.FeedbackAccepted, m.Apply(Press(OpClearAll)))
	snap = m.Snapshot()
	assert.Equal(t, entry.Buffers{}, snap.Buffers)
	assert.Equal(t, entry.LHADegrees, snap.Active)
}

func TestManager_FoldThroughApply(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "F3 - 4 5 F4 3 0 DEG")

	snap := m.Snapshot()
	assert.Equal(t, "-45.50000", snap.Buffers.Lat.Degrees)
	assert.Empty(t, snap.Buffers.Lat.Minutes)
	assert.Equal(t, entry.LatMinutes, snap.Active)
}

func TestManager_SnapshotReduction(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "3 0 ENTER ENTER 4 0 ENTER ENTER 2 0")

	snap := m.Snapshot()
	assert.InDelta(t, 30.0, snap.Values.LHA, 1e-12)
	assert.InDelta(t, 40.0, snap.Values.Lat, 1e-12)
	assert.InDelta(t, 20.0, snap.Values.Dec, 1e-12)

	require.True(t, snap.Reduction.HcValid())
	require.True(t, snap.Reduction.ZValid())
	assert.InDelta(t, 57.485080, snap.Reduction.HcDeg, 1e-4)
	assert.Equal(t, "57.48508", snap.Display.Hc)
	assert.Equal(t, "119.1", snap.Display.Z)
	assert.Equal(t, "241", snap.Display.Zn)
}

func TestManager_SnapshotRecomputesAfterEveryEdit(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "3 0 F3 4 0 F5 2 0")
	before := m.Snapshot().Reduction

	apply(t, m, "F1 CE 3 3 0")
	after := m.Snapshot().Reduction

	assert.NotEqual(t, before.ZnDeg, after.ZnDeg)
	assert.InDelta(t, 119.061193, after.ZnDeg, 1e-4)
}

func TestManager_NegativeZeroLatitudeIsNorth(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "F1 30 F3 -0 F4 30 F5 20")

	snap := m.Snapshot()
	assert.InDelta(t, 0.5, snap.Values.Lat, 1e-12)
	require.True(t, snap.Reduction.ZValid())
	assert.InDelta(t, 360-snap.Reduction.ZDeg, snap.Reduction.ZnDeg, 1e-9)

	apply(t, m, "DEG")
	snap = m.Snapshot()
	assert.Equal(t, "0.50000", snap.Buffers.Lat.Degrees)
	assert.Empty(t, snap.Buffers.Lat.Minutes)
}

func TestManager_SnapshotIsCopy(t *testing.T) {
	m := NewManager(DefaultConfig())
	apply(t, m, "1 2")

	snap := m.Snapshot()
	apply(t, m, "3")

	assert.Equal(t, "12", snap.Buffers.LHA.Degrees)
	assert.Equal(t, "123", m.Snapshot().Buffers.LHA.Degrees)
}

func TestManager_Events(t *testing.T) {
	m := NewManager(DefaultConfig())
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	m.Apply(Digit('7'))
	m.Apply(Digit('.'))
	m.Apply(Digit('.'))
	m.Apply(Press(OpEnter))

	events := m.Snapshot().Events
	require.Len(t, events, 4)

	assert.Equal(t, entry.FeedbackAccepted, events[0].Type)
	assert.Equal(t, "7", events[0].Input)
	assert.Equal(t, entry.LHADegrees, events[0].Field)
	assert.Equal(t, fixed, events[0].Timestamp)

	assert.Equal(t, entry.FeedbackRejected, events[2].Type)

	assert.Equal(t, entry.FeedbackAdvanced, events[3].Type)
	assert.Equal(t, "Enter", events[3].Input)
	assert.Equal(t, entry.LHADegrees, events[3].Field)

	last, ok := m.LastEvent()
	require.True(t, ok)
	assert.Equal(t, events[3], last)
}

func TestManager_IgnoredInputsAreNotLogged(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Disable()

	assert.Equal(t, entry.FeedbackNone, m.Apply(Digit('1')))
	assert.Equal(t, entry.FeedbackNone, m.Apply(Press(OpEnter)))
	assert.Empty(t, m.RecentEvents(10))
	assert.Equal(t, entry.NoField, m.Snapshot().Active)
}

func TestManager_EventRingBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxEvents = 3
	m := NewManager(cfg)

	// Five selects; only the last three survive, oldest first.
	for _, f := range []entry.Field{entry.LHAMinutes, entry.LatDegrees, entry.LatMinutes, entry.DecDegrees, entry.DecMinutes} {
		m.Apply(SelectField(f))
	}

	events := m.Snapshot().Events
	require.Len(t, events, 3)
	assert.Equal(t, "select Lat'", events[0].Input)
	assert.Equal(t, "select Dec°", events[1].Input)
	assert.Equal(t, "select Dec'", events[2].Input)

	recent := m.RecentEvents(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "select Dec°", recent[0].Input)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			m.Apply(SelectField(entry.Fields[n%entry.FieldCount]))
			m.Apply(Digit(rune('0' + n)))
		}(i)
		go func() {
			defer wg.Done()
			snap := m.Snapshot()
			// Every snapshot must describe a store state that actually existed.
			for _, f := range entry.Fields {
				assert.LessOrEqual(t, len(snap.Buffers.Get(f)), entry.MaxLen, fmt.Sprintf("field %s", f))
			}
		}()
	}
	wg.Wait()
}
