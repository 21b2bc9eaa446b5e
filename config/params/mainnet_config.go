package params

const (
	// mainnetGenesisTimestamp is the unix time of mainnet slot 0, Dec 1 2020 12:00:23 UTC.
	mainnetGenesisTimestamp = 1606824023
	// mainnetSecondsPerSlot is the mainnet slot duration.
	mainnetSecondsPerSlot = 12
	// mainnetBeaconRootsAddress is the EIP-4788 beacon roots contract address.
	mainnetBeaconRootsAddress = "0x000F3df6D732807Ef1319fB7B8bB8522d0Beac02"
	// mainnetBeaconRootsRingLength is the EIP-4788 ring buffer length. Roots
	// older than this many slots (roughly the most recent day) are evicted.
	mainnetBeaconRootsRingLength = 8191
)

// MainnetConfig returns the configuration to be used in the mainnet beacon chain.
func MainnetConfig() *BeaconVerifierConfig {
	return &BeaconVerifierConfig{
		GenesisTimestamp:      mainnetGenesisTimestamp,
		SecondsPerSlot:        mainnetSecondsPerSlot,
		SlotsPerEpoch:         32,
		HeaderStateRootIndex:  3,
		BeaconRootsAddress:    mainnetBeaconRootsAddress,
		BeaconRootsRingLength: mainnetBeaconRootsRingLength,
	}
}
