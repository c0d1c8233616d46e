package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const interval = 80 * time.Millisecond

// collect returns a dispatcher delivering into the returned channel.
func collect(t *testing.T) (*Dispatcher[int], chan int) {
	t.Helper()
	ch := make(chan int, 16)
	d, err := New(interval, func(v int) { ch <- v })
	require.NoError(t, err)
	t.Cleanup(d.Stop)
	return d, ch
}

func recv(t *testing.T, ch chan int) int {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(10 * interval):
		t.Fatal("timed out waiting for invocation")
		return 0
	}
}

func expectQuiet(t *testing.T, ch chan int) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected invocation with %d", v)
	case <-time.After(3 * interval):
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New[int](0, func(int) {})
	require.Error(t, err)
	_, err = New[int](-time.Second, func(int) {})
	require.Error(t, err)
	_, err = New[int](interval, nil)
	require.Error(t, err)
}

func TestIdleWindowFiresOnce(t *testing.T) {
	d, ch := collect(t)
	d.Call(7)
	require.Equal(t, 7, recv(t, ch))
	expectQuiet(t, ch)
}

func TestBurstTrailingEdge(t *testing.T) {
	d, ch := collect(t)
	d.Call(1)
	require.Equal(t, 1, recv(t, ch))

	// Burst inside the cool-down: exactly one trailing invocation with the
	// last value, never zero and never one per event.
	d.Call(2)
	d.Call(3)
	d.Call(4)
	require.Equal(t, 4, recv(t, ch))
	expectQuiet(t, ch)
}

func TestInvocationNotSynchronous(t *testing.T) {
	ch := make(chan int, 1)
	d, err := New(interval, func(v int) { ch <- v })
	require.NoError(t, err)
	defer d.Stop()

	d.Call(1)
	// The leading invocation is scheduled, not re-entrant with Call.
	select {
	case <-ch:
		t.Fatal("invocation delivered synchronously with Call")
	default:
	}
	require.Equal(t, 1, recv(t, ch))
}

func TestStopCancelsPending(t *testing.T) {
	d, ch := collect(t)
	d.Call(1)
	require.Equal(t, 1, recv(t, ch))

	d.Call(2) // arms the trailing invocation
	require.True(t, d.Pending())
	d.Stop()
	require.False(t, d.Pending())
	expectQuiet(t, ch)

	// Idempotent, and Call after Stop stays silent.
	d.Stop()
	d.Call(3)
	expectQuiet(t, ch)
}

func TestConsecutiveWindows(t *testing.T) {
	d, ch := collect(t)
	d.Call(1)
	require.Equal(t, 1, recv(t, ch))
	d.Call(2)
	require.Equal(t, 2, recv(t, ch))

	// After the window expires the next event fires immediately again.
	time.Sleep(2 * interval)
	start := time.Now()
	d.Call(3)
	require.Equal(t, 3, recv(t, ch))
	require.Less(t, time.Since(start), interval)
}
