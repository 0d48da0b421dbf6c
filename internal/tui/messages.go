package tui

import (
	"github.com/fieldkit/fieldkit/internal/store"
)

// storeChangedMsg carries a new container state into the Update loop.
// Delivery order matches the store's per-subscriber guarantee.
type storeChangedMsg struct {
	state store.State
}

// fetchSettledMsg reports the outcome of the fetch-on-mount request.
// err is nil on success; the value itself arrives through the store.
type fetchSettledMsg struct {
	err error
}
