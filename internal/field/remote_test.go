package field

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fieldkit/fieldkit/internal/errors"
	"github.com/fieldkit/fieldkit/internal/store"
)

func waitDone(t *testing.T, r *Remote) {
	t.Helper()
	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for fetch to settle")
	}
}

func TestRemoteValidation(t *testing.T) {
	fetch := func(context.Context) (string, error) { return "", nil }
	dispatch := func(store.Action) store.State { return nil }

	if _, err := NewRemote(nil, fetch, dispatch, nil); !errors.IsValidation(err) {
		t.Errorf("nil renderer error = %v, want validation error", err)
	}
	if _, err := NewRemote(&probe{}, nil, dispatch, nil); !errors.IsValidation(err) {
		t.Errorf("nil fetch error = %v, want validation error", err)
	}
	if _, err := NewRemote(&probe{}, fetch, nil, nil); !errors.IsValidation(err) {
		t.Errorf("nil dispatch error = %v, want validation error", err)
	}
}

func TestRemoteMountDispatchesFetchedValue(t *testing.T) {
	st, p, binder := newBoundProbe(t, "initial")

	remote, err := NewRemote(binder, func(context.Context) (string, error) {
		return "remote-value", nil
	}, st.Dispatch, nil)
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	remote.Mount(context.Background())
	waitDone(t, remote)

	remote.Render(Props{})
	if p.last.Value != "remote-value" {
		t.Errorf("Value slot after fetch = %q, want %q", p.last.Value, "remote-value")
	}
}

func TestRemoteMountRunsOnce(t *testing.T) {
	var calls atomic.Int32
	dispatch := func(store.Action) store.State { return nil }

	remote, err := NewRemote(&probe{}, func(context.Context) (string, error) {
		calls.Add(1)
		return "v", nil
	}, dispatch, nil)
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	ctx := context.Background()
	remote.Mount(ctx)
	remote.Mount(ctx)
	remote.Mount(ctx)
	waitDone(t, remote)

	if got := calls.Load(); got != 1 {
		t.Errorf("fetch ran %d times, want exactly once per mount lifecycle", got)
	}
}

func TestRemoteFetchFailureKeepsValue(t *testing.T) {
	st, p, binder := newBoundProbe(t, "initial")

	var hookErr error
	hooked := make(chan struct{})
	remote, err := NewRemote(binder, func(context.Context) (string, error) {
		return "", errors.New("connection refused")
	}, st.Dispatch, nil, WithResultHook(func(err error) {
		hookErr = err
		close(hooked)
	}))
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	remote.Mount(context.Background())
	waitDone(t, remote)
	<-hooked

	remote.Render(Props{})
	if p.last.Value != "initial" {
		t.Errorf("Value slot after failed fetch = %q, want the last-known %q", p.last.Value, "initial")
	}

	var fetchErr *errors.FetchError
	if !errors.As(hookErr, &fetchErr) {
		t.Errorf("result hook error = %v, want *FetchError", hookErr)
	}
	if !errors.IsRetryable(hookErr) {
		t.Error("fetch failures should classify as retryable")
	}
}

func TestRemoteLateDispatchAfterStoreClose(t *testing.T) {
	st, _, binder := newBoundProbe(t, "kept")

	started := make(chan struct{})
	release := make(chan struct{})
	remote, err := NewRemote(binder, func(context.Context) (string, error) {
		close(started)
		<-release
		return "late", nil
	}, st.Dispatch, nil)
	if err != nil {
		t.Fatalf("NewRemote() error = %v", err)
	}

	remote.Mount(context.Background())
	<-started

	// Discard the owning composition before the fetch resolves.
	st.Close()
	close(release)
	waitDone(t, remote)

	// The late dispatch is a no-op against the closed container.
	if got := store.SelectTextFieldValue(st.State()); got != "kept" {
		t.Errorf("container value = %q, want %q", got, "kept")
	}
}
