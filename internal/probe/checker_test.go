package probe

import (
	"fmt"
	"testing"
	"time"
)

// gatedProbe builds a probe function whose completion the test controls.
// Each call announces the path it observed on started, then blocks until
// the test sends on gate.
func gatedProbe(started chan string, gate chan struct{}) func(string) Result {
	return func(path string) Result {
		started <- path
		<-gate
		return Result{Status: StatusOK, Message: path}
	}
}

func recvResult(t *testing.T, results chan Result) Result {
	t.Helper()
	select {
	case res := <-results:
		return res
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for probe result")
		return Result{}
	}
}

func expectNoResult(t *testing.T, results chan Result) {
	t.Helper()
	select {
	case res := <-results:
		t.Fatalf("unexpected extra result: %+v", res)
	case <-time.After(100 * time.Millisecond):
		// expected path
	}
}

func TestCheckerDeliversResult(t *testing.T) {
	results := make(chan Result, 1)
	c := NewChecker(func(r Result) { results <- r })
	defer c.Close()

	c.RequestCheck(t.TempDir())

	res := recvResult(t, results)
	if res.Status != StatusOK {
		t.Errorf("expected StatusOK, got %v (%s)", res.Status, res.Message)
	}
}

func TestCheckerCoalescesRapidRequests(t *testing.T) {
	started := make(chan string, 8)
	gate := make(chan struct{}, 8)
	results := make(chan Result, 8)

	c := newChecker(gatedProbe(started, gate), func(r Result) { results <- r })
	defer c.Close()

	c.RequestCheck("p0")
	if got := <-started; got != "p0" {
		t.Fatalf("first probe observed %q, want p0", got)
	}

	// The worker is mid-probe: these must collapse into one further run.
	for i := 1; i <= 4; i++ {
		c.RequestCheck(fmt.Sprintf("p%d", i))
	}

	gate <- struct{}{}
	if res := recvResult(t, results); res.Message != "p0" {
		t.Errorf("first result for %q, want p0", res.Message)
	}

	if got := <-started; got != "p4" {
		t.Errorf("coalesced probe observed %q, want p4", got)
	}
	gate <- struct{}{}
	if res := recvResult(t, results); res.Message != "p4" {
		t.Errorf("final result for %q, want p4", res.Message)
	}

	expectNoResult(t, results)
}

func TestCheckerPathChangeDuringProbeNotLost(t *testing.T) {
	started := make(chan string, 2)
	gate := make(chan struct{}, 2)
	results := make(chan Result, 2)

	c := newChecker(gatedProbe(started, gate), func(r Result) { results <- r })
	defer c.Close()

	c.RequestCheck("old")
	<-started

	// The worker has already consumed "old"; a new path arriving now must
	// schedule a fresh probe rather than vanish.
	c.RequestCheck("new")

	gate <- struct{}{}
	gate <- struct{}{}

	if res := recvResult(t, results); res.Message != "old" {
		t.Errorf("first result for %q, want old", res.Message)
	}
	if res := recvResult(t, results); res.Message != "new" {
		t.Errorf("second result for %q, want new", res.Message)
	}
}

func TestCheckerCloseStopsDelivery(t *testing.T) {
	results := make(chan Result, 4)
	c := NewChecker(func(r Result) { results <- r })

	c.RequestCheck(t.TempDir())
	recvResult(t, results)

	c.Close()
	c.Close() // idempotent

	c.RequestCheck(t.TempDir())
	expectNoResult(t, results)
}

func TestCheckerCloseWaitsForInFlightProbe(t *testing.T) {
	started := make(chan string, 1)
	gate := make(chan struct{}, 1)
	results := make(chan Result, 1)

	c := newChecker(gatedProbe(started, gate), func(r Result) { results <- r })

	c.RequestCheck("slow")
	<-started

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while a probe was still running")
	case <-time.After(100 * time.Millisecond):
		// expected: Close blocks on the worker
	}

	gate <- struct{}{}

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close did not return after the probe finished")
	}

	if res := recvResult(t, results); res.Message != "slow" {
		t.Errorf("result for %q, want slow", res.Message)
	}
}
