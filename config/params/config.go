// Package params defines the chain constants the verifier depends on.
package params

// BeaconVerifierConfig contains the constants needed to anchor Merkle proof
// verification against mainnet.
type BeaconVerifierConfig struct {
	GenesisTimestamp      uint64 `yaml:"MIN_GENESIS_TIME" spec:"true"`    // GenesisTimestamp is the unix time of slot 0.
	SecondsPerSlot        uint64 `yaml:"SECONDS_PER_SLOT" spec:"true"`    // SecondsPerSlot is the fixed slot duration.
	SlotsPerEpoch         uint64 `yaml:"SLOTS_PER_EPOCH" spec:"true"`     // SlotsPerEpoch is the number of slots per epoch.
	HeaderStateRootIndex  uint64 // HeaderStateRootIndex is the fixed leaf position of the state root within the header tree.
	BeaconRootsAddress    string // BeaconRootsAddress is the EIP-4788 beacon roots contract address.
	BeaconRootsRingLength uint64 // BeaconRootsRingLength is the retention window of the beacon roots contract, in slots.
}

var beaconVerifierConfig = MainnetConfig()

// BeaconConfig retrieves the verifier chain config.
func BeaconConfig() *BeaconVerifierConfig {
	return beaconVerifierConfig
}

// OverrideBeaconConfig by replacing the config. The preferred pattern is to
// call BeaconConfig(), change the specific parameters, and then call
// OverrideBeaconConfig(c). Any subsequent calls to params.BeaconConfig() will
// return this new configuration.
func OverrideBeaconConfig(c *BeaconVerifierConfig) {
	beaconVerifierConfig = c
}
