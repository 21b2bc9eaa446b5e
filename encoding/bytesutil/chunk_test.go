package bytesutil_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/ethverify/beaconproofs/encoding/bytesutil"
)

func TestUint64Chunk(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  [32]byte
	}{
		{
			name:  "one sets the leading byte",
			value: 1,
			want:  [32]byte{0x01},
		},
		{
			name:  "zero is the zero chunk",
			value: 0,
			want:  [32]byte{},
		},
		{
			name:  "mainnet max effective balance",
			value: 32000000000,
			want:  [32]byte{0x00, 0x40, 0x59, 0x73, 0x07, 0x00, 0x00, 0x00},
		},
		{
			name:  "far future epoch fills eight bytes",
			value: ^uint64(0),
			want:  [32]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bytesutil.Uint64Chunk(tt.value))
		})
	}
}

func TestLittleEndianChunk_WideValue(t *testing.T) {
	// 0x0102 big-endian becomes 0x02 0x01 at the front of the chunk.
	v := new(uint256.Int).SetBytes([]byte{0x01, 0x02})
	chunk := bytesutil.LittleEndianChunk(v)
	assert.Equal(t, byte(0x02), chunk[0])
	assert.Equal(t, byte(0x01), chunk[1])
	for i := 2; i < 32; i++ {
		assert.Equal(t, byte(0), chunk[i])
	}

	// A full-width value reverses end to end.
	be := make([]byte, 32)
	for i := range be {
		be[i] = byte(i + 1)
	}
	chunk = bytesutil.LittleEndianChunk(new(uint256.Int).SetBytes(be))
	for i := 0; i < 32; i++ {
		assert.Equal(t, be[31-i], chunk[i])
	}
}

func TestBoolChunk(t *testing.T) {
	trueChunk := bytesutil.BoolChunk(true)
	assert.Equal(t, byte(0x01), trueChunk[0])
	for i := 1; i < 32; i++ {
		assert.Equal(t, byte(0), trueChunk[i])
	}
	assert.Equal(t, [32]byte{}, bytesutil.BoolChunk(false))
}

func TestToBytes32_Truncates(t *testing.T) {
	long := make([]byte, 40)
	for i := range long {
		long[i] = byte(i)
	}
	got := bytesutil.ToBytes32(long)
	assert.Equal(t, long[:32], got[:])
}
