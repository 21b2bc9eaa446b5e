// Package primitives defines the scalar types used across beacon chain
// verification: slots, epochs and validator indices.
package primitives

// Slot represents a single slot.
type Slot uint64

// Uint64 returns slot as a uint64 value.
func (s Slot) Uint64() uint64 {
	return uint64(s)
}

// Add returns the slot incremented by x.
func (s Slot) Add(x uint64) Slot {
	return s + Slot(x)
}
