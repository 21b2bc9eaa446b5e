// Package oracle provides access to the trusted beacon block root history:
// an append-only, timestamp-keyed store with a bounded retention window,
// served on mainnet by the EIP-4788 beacon roots contract.
package oracle

import (
	"context"

	"github.com/pkg/errors"
)

// ErrRootNotFound is returned when the root history has no entry for the
// requested timestamp, typically because it fell out of the retention window.
var ErrRootNotFound = errors.New("no beacon block root known for timestamp")

// RootSource is a keyed lookup into the trusted beacon block root history.
// Implementations perform one synchronous read per call and define no retry
// policy of their own.
type RootSource interface {
	RootAtTimestamp(ctx context.Context, timestamp uint64) ([32]byte, error)
}
