package oracle

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	fieldparams "github.com/ethverify/beaconproofs/config/fieldparams"
	"github.com/ethverify/beaconproofs/config/params"
	"github.com/ethverify/beaconproofs/encoding/bytesutil"
)

var log = logrus.WithField("prefix", "oracle")

// ContractCaller performs a read-only contract call against an execution
// node. *ethclient.Client satisfies it.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// BeaconRootsClient reads historical beacon block roots from the EIP-4788
// beacon roots contract. The contract takes a 32-byte big-endian timestamp as
// calldata and returns the parent beacon block root recorded at that
// timestamp, reverting when the timestamp is outside its ring buffer.
type BeaconRootsClient struct {
	caller  ContractCaller
	address common.Address
}

// NewBeaconRootsClient creates a root source backed by the given caller and
// the configured beacon roots contract address.
func NewBeaconRootsClient(caller ContractCaller) *BeaconRootsClient {
	return &BeaconRootsClient{
		caller:  caller,
		address: common.HexToAddress(params.BeaconConfig().BeaconRootsAddress),
	}
}

// DialBeaconRoots connects to an execution node JSON-RPC endpoint and returns
// a root source backed by it.
func DialBeaconRoots(ctx context.Context, endpoint string) (*BeaconRootsClient, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "could not dial execution node at %s", endpoint)
	}
	log.WithField("endpoint", endpoint).Info("Connected to execution node")
	return NewBeaconRootsClient(client), nil
}

// RootAtTimestamp returns the beacon block root recorded for the given
// timestamp. A reverting call and an empty return are both reported as
// ErrRootNotFound; transport failures propagate unchanged.
func (c *BeaconRootsClient) RootAtTimestamp(ctx context.Context, timestamp uint64) ([32]byte, error) {
	calldata := uint256.NewInt(timestamp).Bytes32()
	res, err := c.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &c.address,
		Data: calldata[:],
	}, nil)
	if err != nil {
		return [32]byte{}, errors.Wrapf(ErrRootNotFound, "beacon roots call for timestamp %d failed: %v", timestamp, err)
	}
	if len(res) != fieldparams.RootLength {
		return [32]byte{}, errors.Wrapf(ErrRootNotFound, "beacon roots call for timestamp %d returned %d bytes", timestamp, len(res))
	}
	root := bytesutil.ToBytes32(res)
	log.WithFields(logrus.Fields{
		"timestamp": timestamp,
		"root":      common.Hash(root).Hex(),
	}).Debug("Fetched trusted beacon block root")
	return root, nil
}
