// Package testutil provides testing utilities for fieldkit tests.
package testutil

import (
	"testing"
	"time"
)

// WaitFor polls cond until it returns true or the timeout elapses.
// Store delivery is asynchronous, so tests that observe subscribers need a
// bounded wait rather than a bare sleep.
func WaitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out after %v waiting for %s", timeout, msg)
}

// Drain reads values from ch until it has n of them or the timeout elapses,
// returning the values received so far.
func Drain[T any](t *testing.T, ch <-chan T, n int, timeout time.Duration) []T {
	t.Helper()

	got := make([]T, 0, n)
	deadline := time.After(timeout)
	for len(got) < n {
		select {
		case v := <-ch:
			got = append(got, v)
		case <-deadline:
			t.Fatalf("timed out with %d of %d values", len(got), n)
		}
	}
	return got
}
