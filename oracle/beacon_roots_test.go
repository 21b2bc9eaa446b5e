package oracle_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethverify/beaconproofs/config/params"
	"github.com/ethverify/beaconproofs/oracle"
	oracletesting "github.com/ethverify/beaconproofs/oracle/testing"
)

type stubCaller struct {
	lastMsg ethereum.CallMsg
	ret     []byte
	err     error
}

func (s *stubCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	s.lastMsg = msg
	return s.ret, s.err
}

func TestBeaconRootsClient_RootAtTimestamp(t *testing.T) {
	root := common.HexToHash("0x9923abbb85402e9232fc2e584a1f947be15c9977e4721bcf7e85c675f96495e2")
	caller := &stubCaller{ret: root.Bytes()}
	client := oracle.NewBeaconRootsClient(caller)

	got, err := client.RootAtTimestamp(context.Background(), 1728066359)
	require.NoError(t, err)
	assert.Equal(t, root, common.Hash(got))

	// The contract takes the timestamp as a single 32-byte big-endian word.
	require.NotNil(t, caller.lastMsg.To)
	assert.Equal(t, common.HexToAddress(params.BeaconConfig().BeaconRootsAddress), *caller.lastMsg.To)
	require.Len(t, caller.lastMsg.Data, 32)
	assert.Equal(t, big.NewInt(1728066359), new(big.Int).SetBytes(caller.lastMsg.Data))
}

func TestBeaconRootsClient_RevertIsRootNotFound(t *testing.T) {
	caller := &stubCaller{err: errors.New("execution reverted")}
	client := oracle.NewBeaconRootsClient(caller)
	_, err := client.RootAtTimestamp(context.Background(), 42)
	assert.ErrorIs(t, err, oracle.ErrRootNotFound)
}

func TestBeaconRootsClient_ShortReturnIsRootNotFound(t *testing.T) {
	caller := &stubCaller{ret: []byte{0x01}}
	client := oracle.NewBeaconRootsClient(caller)
	_, err := client.RootAtTimestamp(context.Background(), 42)
	assert.ErrorIs(t, err, oracle.ErrRootNotFound)
}

func TestMockRootSource(t *testing.T) {
	root := common.HexToHash("0x01")
	src := &oracletesting.MockRootSource{Roots: map[uint64][32]byte{100: root}}

	got, err := src.RootAtTimestamp(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, root, common.Hash(got))

	_, err = src.RootAtTimestamp(context.Background(), 101)
	assert.ErrorIs(t, err, oracle.ErrRootNotFound)
}
