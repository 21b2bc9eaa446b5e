package primitives

import "math"

// Epoch represents a single epoch.
type Epoch uint64

// FarFutureEpoch is the sentinel value for an epoch that has not been set.
const FarFutureEpoch = Epoch(math.MaxUint64)

// Uint64 returns epoch as a uint64 value.
func (e Epoch) Uint64() uint64 {
	return uint64(e)
}
