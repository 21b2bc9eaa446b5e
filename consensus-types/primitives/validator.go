package primitives

// ValidatorIndex in the validator registry.
type ValidatorIndex uint64

// Uint64 returns validator index as a uint64 value.
func (v ValidatorIndex) Uint64() uint64 {
	return uint64(v)
}
