package merkle_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethverify/beaconproofs/container/merkle"
	"github.com/ethverify/beaconproofs/crypto/hash"
)

// testLeaves returns n deterministic distinct leaves.
func testLeaves(n int) [][32]byte {
	leaves := make([][32]byte, n)
	for i := range leaves {
		var seed [8]byte
		binary.LittleEndian.PutUint64(seed[:], uint64(i))
		leaves[i] = hash.Hash(seed[:])
	}
	return leaves
}

func TestHashPair_OrderSensitive(t *testing.T) {
	a := hash.Hash([]byte("a"))
	b := hash.Hash([]byte("b"))
	assert.NotEqual(t, merkle.HashPair(a, b), merkle.HashPair(b, a))
	assert.Equal(t, hash.Hash(append(a[:], b[:]...)), merkle.HashPair(a, b))
}

func TestComputeRoot_RejectsBadLeafCounts(t *testing.T) {
	_, err := merkle.ComputeRoot(nil)
	require.ErrorIs(t, err, merkle.ErrInvalidLeafCount)
	_, err = merkle.ComputeRoot(testLeaves(3))
	require.ErrorIs(t, err, merkle.ErrInvalidLeafCount)
	_, err = merkle.ComputeRoot(testLeaves(8))
	require.NoError(t, err)
}

func TestComputeRoot_SingleLeaf(t *testing.T) {
	leaves := testLeaves(1)
	root, err := merkle.ComputeRoot(leaves)
	require.NoError(t, err)
	assert.Equal(t, leaves[0], root)
}

func TestComputeRoot_PositionSensitive(t *testing.T) {
	leaves := testLeaves(4)
	root, err := merkle.ComputeRoot(leaves)
	require.NoError(t, err)

	swapped := testLeaves(4)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	swappedRoot, err := merkle.ComputeRoot(swapped)
	require.NoError(t, err)
	assert.NotEqual(t, root, swappedRoot)
}

func TestProofRoundTrip_AllIndices(t *testing.T) {
	for _, n := range []int{2, 8, 16} {
		leaves := testLeaves(n)
		root, err := merkle.ComputeRoot(leaves)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			proof, err := merkle.ProofFromLeaves(leaves, uint64(i))
			require.NoError(t, err)
			assert.True(t, merkle.VerifyProof(root, leaves[i], proof, uint64(i)),
				"leaf %d of %d failed to verify", i, n)
			// The generalized index of leaf i in a tree of n leaves is n+i;
			// its low bits trace the same path, so the same proof holds.
			assert.True(t, merkle.VerifyProof(root, leaves[i], proof, uint64(n+i)))
			// A neighboring index walks a different path.
			assert.False(t, merkle.VerifyProof(root, leaves[i], proof, uint64(i)^1))
		}
	}
}

func TestProofFromLeaves_IndexOutOfRange(t *testing.T) {
	_, err := merkle.ProofFromLeaves(testLeaves(8), 8)
	require.Error(t, err)
}

func TestVerifyProof_TamperedLeaf(t *testing.T) {
	leaves := testLeaves(8)
	root, err := merkle.ComputeRoot(leaves)
	require.NoError(t, err)
	proof4, err := merkle.ProofFromLeaves(leaves, 4)
	require.NoError(t, err)
	proof5, err := merkle.ProofFromLeaves(leaves, 5)
	require.NoError(t, err)

	// Flipping a single bit of leaf 5 changes the root and breaks its proof
	// against the old root.
	tampered := leaves[5]
	tampered[0] ^= 0x01
	assert.False(t, merkle.VerifyProof(root, tampered, proof5, 5))

	leaves[5] = tampered
	newRoot, err := merkle.ComputeRoot(leaves)
	require.NoError(t, err)
	assert.NotEqual(t, root, newRoot)

	// Leaf 5's own sibling path did not change, so its old proof carries the
	// tampered leaf to the new root. Leaf 4's proof contains leaf 5 as a
	// sibling and is now stale.
	assert.True(t, merkle.VerifyProof(newRoot, tampered, proof5, 5))
	assert.False(t, merkle.VerifyProof(newRoot, leaves[4], proof4, 4))
}

func TestVerifyProof_ReorderedSiblings(t *testing.T) {
	leaves := testLeaves(8)
	root, err := merkle.ComputeRoot(leaves)
	require.NoError(t, err)
	proof, err := merkle.ProofFromLeaves(leaves, 2)
	require.NoError(t, err)
	proof[0], proof[1] = proof[1], proof[0]
	assert.False(t, merkle.VerifyProof(root, leaves[2], proof, 2))
}

func TestVerifyProof_EmptyProofComparesLeafToRoot(t *testing.T) {
	leaf := hash.Hash([]byte("leaf"))
	assert.True(t, merkle.VerifyProof(leaf, leaf, nil, 0))
	assert.False(t, merkle.VerifyProof([32]byte{}, leaf, nil, 0))
}
