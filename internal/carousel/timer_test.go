package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimerRestartSupersedesPendingFiring(t *testing.T) {
	clock := NewManualClock(epoch)
	var got []TimerFired
	tm := NewTimer(clock, time.Second, func(ev Event) { got = append(got, ev.(TimerFired)) })

	tm.Restart()
	clock.Advance(500 * time.Millisecond)
	tm.Restart()
	tm.Restart()
	require.Equal(t, 1, clock.Pending())

	clock.Advance(999 * time.Millisecond)
	require.Empty(t, got)
	clock.Advance(time.Millisecond)
	require.Len(t, got, 1)
	require.True(t, tm.Current(got[0].Generation))

	clock.Advance(5 * time.Second)
	require.Len(t, got, 1, "a window fires once")
}

func TestTimerProgressWithinWindow(t *testing.T) {
	clock := NewManualClock(epoch)
	tm := NewTimer(clock, DefaultAutoDelay, nil)
	require.Equal(t, 0.0, tm.Progress(clock.Now()))

	tm.Restart()
	start := clock.Now()
	last := -1.0
	for d := time.Duration(0); d <= DefaultAutoDelay+time.Second; d += 100 * time.Millisecond {
		p := tm.Progress(start.Add(d))
		require.GreaterOrEqual(t, p, last)
		require.LessOrEqual(t, p, 1.0)
		if d < DefaultAutoDelay {
			require.Less(t, p, 1.0)
		}
		last = p
	}
	require.Equal(t, 1.0, last)

	clock.Advance(time.Second)
	tm.Restart()
	require.Equal(t, 0.0, tm.Progress(clock.Now()))
}

func TestTimerCancelDropsFiring(t *testing.T) {
	clock := NewManualClock(epoch)
	fired := 0
	tm := NewTimer(clock, time.Second, func(Event) { fired++ })
	g := tm.Restart()
	tm.Cancel()

	clock.Advance(10 * time.Second)
	require.Equal(t, 0, fired)
	require.False(t, tm.Current(g))
	require.False(t, tm.Running())
	require.Equal(t, 0.0, tm.Progress(clock.Now()))
	_, running := tm.Deadline()
	require.False(t, running)
}

func TestTimerCallbackChecksGeneration(t *testing.T) {
	// A firing whose Stop lost the race still sees the bumped generation.
	clock := NewManualClock(epoch)
	fired := 0
	tm := NewTimer(clock, time.Second, func(Event) { fired++ })
	tm.Restart()
	tm.pending = nil // forget the handle so Cancel cannot stop it
	tm.Cancel()

	clock.Advance(2 * time.Second)
	require.Equal(t, 0, fired)
}

func TestManualClockOrdersCallbacks(t *testing.T) {
	clock := NewManualClock(epoch)
	var order []string
	var seen []time.Time
	clock.AfterFunc(2*time.Second, func() { order = append(order, "b"); seen = append(seen, clock.Now()) })
	clock.AfterFunc(time.Second, func() { order = append(order, "a"); seen = append(seen, clock.Now()) })
	stopped := clock.AfterFunc(1500*time.Millisecond, func() { order = append(order, "x") })
	require.True(t, stopped.Stop())
	require.False(t, stopped.Stop())

	clock.Advance(3 * time.Second)
	require.Equal(t, []string{"a", "b"}, order)
	require.Equal(t, []time.Time{epoch.Add(time.Second), epoch.Add(2 * time.Second)}, seen)
	require.Equal(t, epoch.Add(3*time.Second), clock.Now())

	clock.Set(epoch)
	require.Equal(t, epoch.Add(3*time.Second), clock.Now())
}
