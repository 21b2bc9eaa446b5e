// Package proof defines the externally produced Merkle witness record the
// verifier consumes. Witnesses are generated off-chain against the full
// BeaconState tree and supplied as JSON of the form
// {"gindex": ..., "root": ..., "witness": [...], "value": ...}.
package proof

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	fieldparams "github.com/ethverify/beaconproofs/config/fieldparams"
	"github.com/ethverify/beaconproofs/container/merkle"
	"github.com/ethverify/beaconproofs/encoding/bytesutil"
	"github.com/ethverify/beaconproofs/math"
)

// Witness is a Merkle inclusion witness: the sibling hashes from the proven
// leaf up to the root, deepest sibling first, together with the generalized
// index the path was derived against. Root and Value are carried along for
// sanity checking; the verifier recomputes everything else.
type Witness struct {
	Gindex  uint64
	Root    [32]byte
	Witness [][32]byte
	Value   [32]byte
}

// Depth returns the number of tree levels the witness spans.
func (w *Witness) Depth() int {
	return math.Depth(w.Gindex)
}

// Verify reports whether the witness reconstructs its own root from its own
// value. It is a self-consistency check on the record, independent of any
// externally trusted root.
func (w *Witness) Verify() bool {
	return merkle.VerifyProof(w.Root, w.Value, w.Witness, w.Gindex)
}

type witnessJSON struct {
	Gindex  uint64   `json:"gindex"`
	Root    string   `json:"root"`
	Witness []string `json:"witness"`
	Value   string   `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (w *Witness) MarshalJSON() ([]byte, error) {
	siblings := make([]string, len(w.Witness))
	for i, s := range w.Witness {
		siblings[i] = hexutil.Encode(s[:])
	}
	return json.Marshal(&witnessJSON{
		Gindex:  w.Gindex,
		Root:    hexutil.Encode(w.Root[:]),
		Witness: siblings,
		Value:   hexutil.Encode(w.Value[:]),
	})
}

// UnmarshalJSON implements json.Unmarshaler. The generator is inconsistent
// about 0x prefixes between fields, so both forms are accepted.
func (w *Witness) UnmarshalJSON(data []byte) error {
	var raw witnessJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "could not unmarshal witness")
	}
	if raw.Gindex < 2 {
		return errors.Errorf("generalized index %d does not address a proper subtree node", raw.Gindex)
	}
	if len(raw.Witness) != math.Depth(raw.Gindex) {
		return errors.Errorf("gindex %d requires %d siblings, witness has %d",
			raw.Gindex, math.Depth(raw.Gindex), len(raw.Witness))
	}
	root, err := decodeHash(raw.Root)
	if err != nil {
		return errors.Wrap(err, "could not parse root")
	}
	value, err := decodeHash(raw.Value)
	if err != nil {
		return errors.Wrap(err, "could not parse value")
	}
	siblings := make([][32]byte, len(raw.Witness))
	for i, s := range raw.Witness {
		sibling, err := decodeHash(s)
		if err != nil {
			return errors.Wrapf(err, "could not parse witness element %d", i)
		}
		siblings[i] = sibling
	}
	w.Gindex = raw.Gindex
	w.Root = root
	w.Witness = siblings
	w.Value = value
	return nil
}

// ReadFile loads a witness record from a JSON file.
func ReadFile(path string) (*Witness, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read witness file %s", path)
	}
	w := &Witness{}
	if err := json.Unmarshal(data, w); err != nil {
		return nil, err
	}
	return w, nil
}

func decodeHash(s string) ([32]byte, error) {
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return [32]byte{}, err
	}
	if len(b) != fieldparams.RootLength {
		return [32]byte{}, errors.Errorf("expected %d bytes, got %d", fieldparams.RootLength, len(b))
	}
	return bytesutil.ToBytes32(b), nil
}
