// Package beacon composes the Merkle engine, the fixed-schema Merkleization
// rules and a trusted root source into beacon chain verification calls:
// header roots, state root inclusion, and validator inclusion chained up to
// an externally agreed trusted root.
package beacon

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ethverify/beaconproofs/config/params"
	"github.com/ethverify/beaconproofs/consensus-types/containers"
	"github.com/ethverify/beaconproofs/container/merkle"
	"github.com/ethverify/beaconproofs/encoding/ssz"
	"github.com/ethverify/beaconproofs/oracle"
	"github.com/ethverify/beaconproofs/time/slots"
)

var log = logrus.WithField("prefix", "beacon")

// Fatal precondition failures. These abort a verification attempt through the
// error channel and are never folded into a boolean false result.
var (
	// ErrWithdrawalCredentialsMismatch is returned when a validator's
	// withdrawal credentials do not commit to the expected address.
	ErrWithdrawalCredentialsMismatch = errors.New("withdrawal credentials do not match expected address")
	// ErrValidatorSlashed is returned when an operation requires an
	// unslashed validator.
	ErrValidatorSlashed = errors.New("validator is slashed")
)

// Verifier verifies beacon chain data against Merkle roots. All methods are
// pure functions of their arguments except the two that consult the trusted
// root source; every call is independently reentrant.
type Verifier struct {
	rootSource oracle.RootSource
}

// NewVerifier creates a Verifier anchored on the given trusted root source.
func NewVerifier(rootSource oracle.RootSource) *Verifier {
	return &Verifier{rootSource: rootSource}
}

// HeaderRoot computes the hash tree root of a beacon block header.
func (*Verifier) HeaderRoot(header *containers.BeaconBlockHeader) ([32]byte, error) {
	return ssz.HeaderRoot(header)
}

// VerifyHeaderAgainstRoot reports whether the header's hash tree root equals
// the expected root.
func (v *Verifier) VerifyHeaderAgainstRoot(header *containers.BeaconBlockHeader, expectedRoot [32]byte) (bool, error) {
	root, err := v.HeaderRoot(header)
	if err != nil {
		return false, err
	}
	return root == expectedRoot, nil
}

// VerifyHeaderAgainstTrustedSource reports whether the header's hash tree
// root equals the root the trusted source recorded for the following slot's
// timestamp. The root history keys each root by the timestamp of the slot
// after it, so the lookup uses slot+1. A missing history entry is an error,
// not a negative result.
func (v *Verifier) VerifyHeaderAgainstTrustedSource(ctx context.Context, header *containers.BeaconBlockHeader) (bool, error) {
	timestamp := slots.ToTimestamp(header.Slot.Add(1))
	trustedRoot, err := v.rootSource.RootAtTimestamp(ctx, timestamp)
	if err != nil {
		return false, errors.Wrapf(err, "could not fetch trusted root for slot %d", header.Slot)
	}
	root, err := v.HeaderRoot(header)
	if err != nil {
		return false, err
	}
	matched := root == trustedRoot
	if !matched {
		log.WithFields(logrus.Fields{
			"slot":        header.Slot,
			"headerRoot":  common.Hash(root).Hex(),
			"trustedRoot": common.Hash(trustedRoot).Hex(),
		}).Debug("Header root does not match trusted root")
	}
	recordVerification("header_trusted_source", matched)
	return matched, nil
}

// VerifyStateRootInclusion reports whether the given state root sits at the
// header tree's fixed state root position under the given header root. The
// leaf index is not caller-supplied.
func (*Verifier) VerifyStateRootInclusion(headerRoot, stateRoot [32]byte, proof [][32]byte) bool {
	return merkle.VerifyProof(headerRoot, stateRoot, proof, params.BeaconConfig().HeaderStateRootIndex)
}

// ValidatorRoot computes the hash tree root of a validator record.
func (*Verifier) ValidatorRoot(validator *containers.Validator) ([32]byte, error) {
	return ssz.ValidatorRoot(validator)
}

// VerifyValidatorInclusion reports whether the validator's hash tree root is
// included under the state root at the given generalized index. The witness
// must have been derived against the same generalized index.
func (v *Verifier) VerifyValidatorInclusion(stateRoot [32]byte, validator *containers.Validator, proof [][32]byte, gindex uint64) (bool, error) {
	root, err := v.ValidatorRoot(validator)
	if err != nil {
		return false, err
	}
	matched := merkle.VerifyProof(stateRoot, root, proof, gindex)
	recordVerification("validator_inclusion", matched)
	return matched, nil
}

// VerifyValidatorInclusionWithHeader chains two independent checks: the
// validator must be included under the header's own state root, and the
// header itself must match the trusted source. The state root check runs
// first and short-circuits a false result without consulting the source.
func (v *Verifier) VerifyValidatorInclusionWithHeader(ctx context.Context, header *containers.BeaconBlockHeader, validator *containers.Validator, proof [][32]byte, gindex uint64) (bool, error) {
	included, err := v.VerifyValidatorInclusion(header.StateRoot, validator, proof, gindex)
	if err != nil {
		return false, err
	}
	if !included {
		return false, nil
	}
	return v.VerifyHeaderAgainstTrustedSource(ctx, header)
}

// VerifyValidatorWithdrawalAddress verifies validator inclusion after
// requiring that the low 160 bits of the validator's withdrawal credentials
// equal the expected address. A mismatching address is a fatal error, not a
// negative proof result.
func (v *Verifier) VerifyValidatorWithdrawalAddress(stateRoot [32]byte, validator *containers.Validator, proof [][32]byte, gindex uint64, expectedAddress common.Address) (bool, error) {
	if validator.WithdrawalAddress() != expectedAddress {
		return false, errors.Wrapf(ErrWithdrawalCredentialsMismatch,
			"credentials commit to %s, expected %s", validator.WithdrawalAddress().Hex(), expectedAddress.Hex())
	}
	return v.VerifyValidatorInclusion(stateRoot, validator, proof, gindex)
}

// VerifyValidatorActive verifies validator inclusion after requiring that the
// validator is not slashed. It checks only the slashed flag, not the
// activation or exit epoch windows.
func (v *Verifier) VerifyValidatorActive(stateRoot [32]byte, validator *containers.Validator, proof [][32]byte, gindex uint64) (bool, error) {
	if validator.Slashed {
		return false, ErrValidatorSlashed
	}
	return v.VerifyValidatorInclusion(stateRoot, validator, proof, gindex)
}
