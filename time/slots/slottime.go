// Package slots includes the slot and timestamp arithmetic used to key the
// trusted beacon roots history.
package slots

import (
	"github.com/pkg/errors"

	"github.com/ethverify/beaconproofs/config/params"
	"github.com/ethverify/beaconproofs/consensus-types/primitives"
)

// ToTimestamp returns the unix time at which the given slot starts.
func ToTimestamp(slot primitives.Slot) uint64 {
	cfg := params.BeaconConfig()
	return slot.Uint64()*cfg.SecondsPerSlot + cfg.GenesisTimestamp
}

// FromTimestamp returns the slot that contains the given unix time.
func FromTimestamp(timestamp uint64) (primitives.Slot, error) {
	cfg := params.BeaconConfig()
	if timestamp < cfg.GenesisTimestamp {
		return 0, errors.Errorf("timestamp %d precedes genesis time %d", timestamp, cfg.GenesisTimestamp)
	}
	return primitives.Slot((timestamp - cfg.GenesisTimestamp) / cfg.SecondsPerSlot), nil
}

// ToEpoch returns the epoch that contains the given slot.
func ToEpoch(slot primitives.Slot) primitives.Epoch {
	return primitives.Epoch(slot.Uint64() / params.BeaconConfig().SlotsPerEpoch)
}
