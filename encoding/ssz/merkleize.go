// Package ssz implements the fixed-schema Merkleization of the two container
// types this library verifies. Each container's field order and leaf count
// are spelled out as constants so the mapping can be audited independently of
// the hashing engine.
package ssz

import (
	fieldparams "github.com/ethverify/beaconproofs/config/fieldparams"
	"github.com/ethverify/beaconproofs/consensus-types/containers"
	"github.com/ethverify/beaconproofs/container/merkle"
	"github.com/ethverify/beaconproofs/crypto/hash"
	"github.com/ethverify/beaconproofs/encoding/bytesutil"
)

// Leaf positions of the BeaconBlockHeader fields. The container has five
// fields and is padded with zero chunks to the next power of two.
const (
	HeaderLeafSlot          = 0
	HeaderLeafProposerIndex = 1
	HeaderLeafParentRoot    = 2
	HeaderLeafStateRoot     = 3
	HeaderLeafBodyRoot      = 4

	// HeaderLeafCount is the padded leaf count of the header tree.
	HeaderLeafCount = 8
)

// Leaf positions of the Validator fields. Eight fields, no padding.
const (
	ValidatorLeafPubkey                     = 0
	ValidatorLeafWithdrawalCredentials      = 1
	ValidatorLeafEffectiveBalance           = 2
	ValidatorLeafSlashed                    = 3
	ValidatorLeafActivationEligibilityEpoch = 4
	ValidatorLeafActivationEpoch            = 5
	ValidatorLeafExitEpoch                  = 6
	ValidatorLeafWithdrawableEpoch          = 7

	// ValidatorLeafCount is the leaf count of the validator tree.
	ValidatorLeafCount = 8
)

// HeaderLeaves maps a BeaconBlockHeader to its canonical ordered sequence of
// eight 32-byte leaves: the two scalars in little-endian chunk form, the
// three roots copied verbatim, and three zero padding chunks.
func HeaderLeaves(h *containers.BeaconBlockHeader) [][32]byte {
	leaves := make([][32]byte, HeaderLeafCount)
	leaves[HeaderLeafSlot] = bytesutil.Uint64Chunk(h.Slot.Uint64())
	leaves[HeaderLeafProposerIndex] = bytesutil.Uint64Chunk(h.ProposerIndex.Uint64())
	leaves[HeaderLeafParentRoot] = h.ParentRoot
	leaves[HeaderLeafStateRoot] = h.StateRoot
	leaves[HeaderLeafBodyRoot] = h.BodyRoot
	return leaves
}

// ValidatorLeaves maps a Validator to its canonical ordered sequence of eight
// 32-byte leaves.
func ValidatorLeaves(v *containers.Validator) [][32]byte {
	leaves := make([][32]byte, ValidatorLeafCount)
	leaves[ValidatorLeafPubkey] = PubkeyChunk(v.Pubkey)
	leaves[ValidatorLeafWithdrawalCredentials] = v.WithdrawalCredentials
	leaves[ValidatorLeafEffectiveBalance] = bytesutil.Uint64Chunk(v.EffectiveBalance)
	leaves[ValidatorLeafSlashed] = bytesutil.BoolChunk(v.Slashed)
	leaves[ValidatorLeafActivationEligibilityEpoch] = bytesutil.Uint64Chunk(v.ActivationEligibilityEpoch.Uint64())
	leaves[ValidatorLeafActivationEpoch] = bytesutil.Uint64Chunk(v.ActivationEpoch.Uint64())
	leaves[ValidatorLeafExitEpoch] = bytesutil.Uint64Chunk(v.ExitEpoch.Uint64())
	leaves[ValidatorLeafWithdrawableEpoch] = bytesutil.Uint64Chunk(v.WithdrawableEpoch.Uint64())
	return leaves
}

// PubkeyChunk packs a 48-byte pubkey into a single leaf by hashing it
// together with 16 zero padding bytes. This is a fixed convention of the
// validator tree, not general SSZ byte-list Merkleization.
func PubkeyChunk(pubkey [48]byte) [32]byte {
	padded := make([]byte, 0, fieldparams.BLSPubkeyLength+fieldparams.PubkeyChunkPadding)
	padded = append(padded, pubkey[:]...)
	padded = append(padded, make([]byte, fieldparams.PubkeyChunkPadding)...)
	return hash.Hash(padded)
}

// HeaderRoot computes the hash tree root of a BeaconBlockHeader.
func HeaderRoot(h *containers.BeaconBlockHeader) ([32]byte, error) {
	return merkle.ComputeRoot(HeaderLeaves(h))
}

// ValidatorRoot computes the hash tree root of a Validator.
func ValidatorRoot(v *containers.Validator) ([32]byte, error) {
	return merkle.ComputeRoot(ValidatorLeaves(v))
}
