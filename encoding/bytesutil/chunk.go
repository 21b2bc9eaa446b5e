package bytesutil

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// LittleEndianChunk converts an unsigned integer of up to 256 bits into the
// 32-byte little-endian chunk form used as a Merkle leaf. The limbs of the
// input are already little-endian words of the value, so each one is laid
// down in order.
func LittleEndianChunk(v *uint256.Int) [32]byte {
	var chunk [32]byte
	binary.LittleEndian.PutUint64(chunk[0:8], v[0])
	binary.LittleEndian.PutUint64(chunk[8:16], v[1])
	binary.LittleEndian.PutUint64(chunk[16:24], v[2])
	binary.LittleEndian.PutUint64(chunk[24:32], v[3])
	return chunk
}

// Uint64Chunk converts a uint64 into its 32-byte little-endian chunk form.
func Uint64Chunk(v uint64) [32]byte {
	return LittleEndianChunk(uint256.NewInt(v))
}

// BoolChunk converts a boolean into its 32-byte chunk form: true sets the
// chunk's leading byte to 0x01, false yields the all-zero chunk.
func BoolChunk(b bool) [32]byte {
	var chunk [32]byte
	if b {
		chunk[0] = 0x01
	}
	return chunk
}
