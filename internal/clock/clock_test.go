package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFake_AdvanceFiresInDeadlineOrder(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	var order []string
	c.AfterFunc(300*time.Millisecond, func() { order = append(order, "b") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(time.Second, func() { order = append(order, "c") })

	c.Advance(500 * time.Millisecond)
	require.Equal(t, []string{"a", "b"}, order)
	require.Equal(t, 1, c.Pending())
	require.Equal(t, time.Unix(0, 0).Add(500*time.Millisecond), c.Now())
}

func TestFake_Stop(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop(), "second stop reports already stopped")
	c.Advance(2 * time.Second)
	require.False(t, fired)
}

func TestFake_CallbackSchedulesWithinWindow(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	var at []time.Duration
	start := c.Now()
	c.AfterFunc(100*time.Millisecond, func() {
		at = append(at, c.Now().Sub(start))
		c.AfterFunc(100*time.Millisecond, func() {
			at = append(at, c.Now().Sub(start))
		})
	})

	c.Advance(250 * time.Millisecond)
	require.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, at)
}

func TestReal_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
