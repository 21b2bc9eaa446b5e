package containers

import (
	ssz "github.com/ferranbt/fastssz"

	fieldparams "github.com/ethverify/beaconproofs/config/fieldparams"
	"github.com/ethverify/beaconproofs/consensus-types/primitives"
	"github.com/ethverify/beaconproofs/encoding/bytesutil"
)

// MarshalSSZ ssz marshals the BeaconBlockHeader object.
func (h *BeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(h)
}

// MarshalSSZTo ssz marshals the BeaconBlockHeader object to a target array.
func (h *BeaconBlockHeader) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	dst = ssz.MarshalUint64(dst, h.Slot.Uint64())
	dst = ssz.MarshalUint64(dst, h.ProposerIndex.Uint64())
	dst = append(dst, h.ParentRoot[:]...)
	dst = append(dst, h.StateRoot[:]...)
	dst = append(dst, h.BodyRoot[:]...)
	return
}

// UnmarshalSSZ ssz unmarshals the BeaconBlockHeader object.
func (h *BeaconBlockHeader) UnmarshalSSZ(buf []byte) error {
	if len(buf) != fieldparams.BeaconBlockHeaderSSZLength {
		return ssz.ErrSize
	}
	h.Slot = primitives.Slot(ssz.UnmarshallUint64(buf[0:8]))
	h.ProposerIndex = primitives.ValidatorIndex(ssz.UnmarshallUint64(buf[8:16]))
	h.ParentRoot = bytesutil.ToBytes32(buf[16:48])
	h.StateRoot = bytesutil.ToBytes32(buf[48:80])
	h.BodyRoot = bytesutil.ToBytes32(buf[80:112])
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the BeaconBlockHeader object.
func (h *BeaconBlockHeader) SizeSSZ() int {
	return fieldparams.BeaconBlockHeaderSSZLength
}

// MarshalSSZ ssz marshals the Validator object.
func (v *Validator) MarshalSSZ() ([]byte, error) {
	return ssz.MarshalSSZ(v)
}

// MarshalSSZTo ssz marshals the Validator object to a target array.
func (v *Validator) MarshalSSZTo(buf []byte) (dst []byte, err error) {
	dst = buf
	dst = append(dst, v.Pubkey[:]...)
	dst = append(dst, v.WithdrawalCredentials[:]...)
	dst = ssz.MarshalUint64(dst, v.EffectiveBalance)
	dst = ssz.MarshalBool(dst, v.Slashed)
	dst = ssz.MarshalUint64(dst, v.ActivationEligibilityEpoch.Uint64())
	dst = ssz.MarshalUint64(dst, v.ActivationEpoch.Uint64())
	dst = ssz.MarshalUint64(dst, v.ExitEpoch.Uint64())
	dst = ssz.MarshalUint64(dst, v.WithdrawableEpoch.Uint64())
	return
}

// UnmarshalSSZ ssz unmarshals the Validator object.
func (v *Validator) UnmarshalSSZ(buf []byte) error {
	if len(buf) != fieldparams.ValidatorSSZLength {
		return ssz.ErrSize
	}
	v.Pubkey = bytesutil.ToBytes48(buf[0:48])
	v.WithdrawalCredentials = bytesutil.ToBytes32(buf[48:80])
	v.EffectiveBalance = ssz.UnmarshallUint64(buf[80:88])
	v.Slashed = ssz.UnmarshalBool(buf[88:89])
	v.ActivationEligibilityEpoch = primitives.Epoch(ssz.UnmarshallUint64(buf[89:97]))
	v.ActivationEpoch = primitives.Epoch(ssz.UnmarshallUint64(buf[97:105]))
	v.ExitEpoch = primitives.Epoch(ssz.UnmarshallUint64(buf[105:113]))
	v.WithdrawableEpoch = primitives.Epoch(ssz.UnmarshallUint64(buf[113:121]))
	return nil
}

// SizeSSZ returns the ssz encoded size in bytes for the Validator object.
func (v *Validator) SizeSSZ() int {
	return fieldparams.ValidatorSSZLength
}
