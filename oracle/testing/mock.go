// Package testing provides a controllable in-memory RootSource for tests.
package testing

import (
	"context"

	"github.com/ethverify/beaconproofs/oracle"
)

// MockRootSource serves beacon block roots from a plain map.
type MockRootSource struct {
	Roots map[uint64][32]byte
}

// RootAtTimestamp returns the stored root for the timestamp, or
// oracle.ErrRootNotFound when no entry exists.
func (m *MockRootSource) RootAtTimestamp(_ context.Context, timestamp uint64) ([32]byte, error) {
	root, ok := m.Roots[timestamp]
	if !ok {
		return [32]byte{}, oracle.ErrRootNotFound
	}
	return root, nil
}
