// Package merkle implements the SHA-256 binary Merkle tree primitives used
// across beacon chain verification: bottom-up root computation, sibling-path
// inclusion proofs and their verification.
package merkle

import (
	"github.com/pkg/errors"

	"github.com/ethverify/beaconproofs/crypto/hash"
	"github.com/ethverify/beaconproofs/math"
)

// ErrInvalidLeafCount is returned when a leaf sequence whose length is not a
// power of two is passed to the tree builder. Callers are responsible for
// padding their leaves before handing them over.
var ErrInvalidLeafCount = errors.New("leaf count is not a power of two")

// HashPair returns sha256(left || right). The concatenation order is
// significant: HashPair(a, b) and HashPair(b, a) differ.
func HashPair(left, right [32]byte) [32]byte {
	return hash.Hash(append(left[:], right[:]...))
}

// ComputeRoot computes the Merkle root of an ordered, power-of-two-length
// sequence of 32-byte leaves by repeated pairwise hashing.
func ComputeRoot(leaves [][32]byte) ([32]byte, error) {
	if !math.IsPowerOf2(uint64(len(leaves))) {
		return [32]byte{}, errors.Wrapf(ErrInvalidLeafCount, "got %d leaves", len(leaves))
	}
	hasher := hash.CustomSHA256Hasher()
	layer := make([][32]byte, len(leaves))
	copy(layer, leaves)
	for len(layer) > 1 {
		for i := 0; i < len(layer)/2; i++ {
			layer[i] = hasher(append(layer[2*i][:], layer[2*i+1][:]...))
		}
		layer = layer[:len(layer)/2]
	}
	return layer[0], nil
}

// VerifyProof checks a sibling-path inclusion proof against a root. The proof
// is consumed deepest sibling first: each element is combined with the running
// node using the parity of the current index (even places the running node on
// the left), after which the index is halved. The same walk serves both a
// leaf position inside a record's own fixed tree and a generalized index into
// a containing state tree, as long as proof and index originate from the same
// tree.
//
// An inclusion proof that does not reconstruct the root yields false; there
// is no error path.
func VerifyProof(root, leaf [32]byte, proof [][32]byte, index uint64) bool {
	hasher := hash.CustomSHA256Hasher()
	node := leaf
	for _, sibling := range proof {
		if index%2 == 0 {
			node = hasher(append(node[:], sibling[:]...))
		} else {
			node = hasher(append(sibling[:], node[:]...))
		}
		index /= 2
	}
	return node == root
}

// ProofFromLeaves builds the sibling path for the leaf at the given position,
// deepest sibling first. The returned proof satisfies VerifyProof against
// ComputeRoot of the same leaves.
func ProofFromLeaves(leaves [][32]byte, index uint64) ([][32]byte, error) {
	if !math.IsPowerOf2(uint64(len(leaves))) {
		return nil, errors.Wrapf(ErrInvalidLeafCount, "got %d leaves", len(leaves))
	}
	if index >= uint64(len(leaves)) {
		return nil, errors.Errorf("leaf index %d out of range for %d leaves", index, len(leaves))
	}
	hasher := hash.CustomSHA256Hasher()
	layer := make([][32]byte, len(leaves))
	copy(layer, leaves)
	var proof [][32]byte
	for len(layer) > 1 {
		proof = append(proof, layer[index^1])
		for i := 0; i < len(layer)/2; i++ {
			layer[i] = hasher(append(layer[2*i][:], layer[2*i+1][:]...))
		}
		layer = layer[:len(layer)/2]
		index /= 2
	}
	return proof, nil
}
