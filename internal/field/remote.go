package field

import (
	"context"
	"sync"

	"github.com/fieldkit/fieldkit/internal/errors"
	"github.com/fieldkit/fieldkit/internal/logging"
	"github.com/fieldkit/fieldkit/internal/store"
)

// FetchFunc asynchronously produces a value from a remote collaborator.
// The wire format behind it is the collaborator's concern, not this
// package's.
type FetchFunc func(ctx context.Context) (string, error)

// Remote wraps a renderer with a fetch-on-mount behavior: the first Mount
// triggers exactly one asynchronous fetch, and a successful result is
// dispatched as an UPDATE_VALUE action. Re-renders never re-trigger the
// fetch.
//
// A failed fetch is logged and otherwise ignored; the wrapped renderer keeps
// showing the last-known value. If the owning renderer is discarded before
// the fetch resolves, the late dispatch lands in the store as a regular
// update with no one watching, which is a harmless race rather than a crash.
type Remote struct {
	renderer Renderer
	fetch    FetchFunc
	dispatch store.Dispatch
	logger   *logging.Logger
	onResult func(error)

	once sync.Once
	done chan struct{}
}

// RemoteOption configures a Remote.
type RemoteOption func(*Remote)

// WithResultHook registers a callback invoked when the fetch settles, with
// nil on success. The demo UI uses this to surface the outcome in its
// footer; the composition itself never displays fetch errors.
func WithResultHook(fn func(error)) RemoteOption {
	return func(r *Remote) { r.onResult = fn }
}

// NewRemote wraps a renderer with fetch-on-mount loading.
// Pass nil for logger to discard logs.
func NewRemote(r Renderer, fetch FetchFunc, dispatch store.Dispatch, logger *logging.Logger, opts ...RemoteOption) (*Remote, error) {
	if r == nil {
		return nil, errors.NewValidationError("renderer", errors.ErrNilRenderer.Error())
	}
	if fetch == nil {
		return nil, errors.NewValidationError("fetch", "must not be nil")
	}
	if dispatch == nil {
		return nil, errors.NewValidationError("dispatch", "must not be nil")
	}

	remote := &Remote{
		renderer: r,
		fetch:    fetch,
		dispatch: dispatch,
		logger:   logging.Or(logger).WithComponent("remote"),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(remote)
	}
	return remote, nil
}

// Mount starts the one-time fetch. Subsequent calls are no-ops, so the UI
// loop may call Mount on every init path without double-fetching.
func (r *Remote) Mount(ctx context.Context) {
	r.once.Do(func() {
		go r.load(ctx)
	})
}

// Done is closed once the fetch has settled, success or failure.
func (r *Remote) Done() <-chan struct{} {
	return r.done
}

// Render implements Renderer. Remote adds behavior, not presentation: all
// slots pass straight through to the wrapped renderer.
func (r *Remote) Render(p Props) string {
	return r.renderer.Render(p)
}

func (r *Remote) load(ctx context.Context) {
	defer close(r.done)

	value, err := r.fetch(ctx)
	if err != nil {
		// No retry and no user-facing error state: the field keeps its
		// last-known value.
		r.logger.Warn("fetch failed, keeping current value", "error", err)
		if r.onResult != nil {
			r.onResult(errors.NewFetchError("fetch on mount", err))
		}
		return
	}

	r.dispatch(store.UpdateValue(value))
	r.logger.Debug("fetched value dispatched", "length", len(value))
	if r.onResult != nil {
		r.onResult(nil)
	}
}
