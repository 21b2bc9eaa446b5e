// Package containers defines the two fixed-shape beacon chain records this
// library verifies, their JSON form as served by beacon node APIs, and their
// SSZ wire serialization.
package containers

import (
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	fieldparams "github.com/ethverify/beaconproofs/config/fieldparams"
	"github.com/ethverify/beaconproofs/consensus-types/primitives"
	"github.com/ethverify/beaconproofs/encoding/bytesutil"
)

// BeaconBlockHeader is the five-field beacon block header container.
type BeaconBlockHeader struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// beaconBlockHeaderJSON mirrors the beacon API wire form, where the unsigned
// integer fields are decimal strings and the roots are 0x-prefixed hex.
type beaconBlockHeaderJSON struct {
	Slot          string `json:"slot"`
	ProposerIndex string `json:"proposer_index"`
	ParentRoot    string `json:"parent_root"`
	StateRoot     string `json:"state_root"`
	BodyRoot      string `json:"body_root"`
}

// MarshalJSON implements json.Marshaler.
func (h *BeaconBlockHeader) MarshalJSON() ([]byte, error) {
	return json.Marshal(&beaconBlockHeaderJSON{
		Slot:          strconv.FormatUint(h.Slot.Uint64(), 10),
		ProposerIndex: strconv.FormatUint(h.ProposerIndex.Uint64(), 10),
		ParentRoot:    hexutil.Encode(h.ParentRoot[:]),
		StateRoot:     hexutil.Encode(h.StateRoot[:]),
		BodyRoot:      hexutil.Encode(h.BodyRoot[:]),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *BeaconBlockHeader) UnmarshalJSON(data []byte) error {
	var raw beaconBlockHeaderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "could not unmarshal beacon block header")
	}
	slot, err := strconv.ParseUint(raw.Slot, 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse slot")
	}
	proposerIndex, err := strconv.ParseUint(raw.ProposerIndex, 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse proposer index")
	}
	parentRoot, err := decodeRoot(raw.ParentRoot)
	if err != nil {
		return errors.Wrap(err, "could not parse parent root")
	}
	stateRoot, err := decodeRoot(raw.StateRoot)
	if err != nil {
		return errors.Wrap(err, "could not parse state root")
	}
	bodyRoot, err := decodeRoot(raw.BodyRoot)
	if err != nil {
		return errors.Wrap(err, "could not parse body root")
	}
	h.Slot = primitives.Slot(slot)
	h.ProposerIndex = primitives.ValidatorIndex(proposerIndex)
	h.ParentRoot = parentRoot
	h.StateRoot = stateRoot
	h.BodyRoot = bodyRoot
	return nil
}

func decodeRoot(s string) ([32]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return [32]byte{}, err
	}
	if len(b) != fieldparams.RootLength {
		return [32]byte{}, errors.Errorf("expected %d bytes, got %d", fieldparams.RootLength, len(b))
	}
	return bytesutil.ToBytes32(b), nil
}
