// Package field_params defines the byte lengths of the fixed-size fields
// handled by this library.
package field_params

const (
	RootLength                    = 32   // RootLength defines the byte length of a Merkle root.
	BLSPubkeyLength               = 48   // BLSPubkeyLength defines the byte length of a BLS public key.
	PubkeyChunkPadding            = 16   // PubkeyChunkPadding defines the zero bytes appended to a pubkey before hashing it into a single chunk.
	ExecutionAddressLength        = 20   // ExecutionAddressLength defines the byte length of an execution layer address.
	BeaconBlockHeaderSSZLength    = 112  // BeaconBlockHeaderSSZLength defines the serialized size of a BeaconBlockHeader.
	ValidatorSSZLength            = 121  // ValidatorSSZLength defines the serialized size of a Validator.
	ExecutionWithdrawalPrefixByte = 0x01 // ExecutionWithdrawalPrefixByte marks withdrawal credentials that commit to an execution address.
)
