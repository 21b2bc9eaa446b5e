// beaconproofs is a command line tool that checks beacon chain Merkle
// witnesses: a block header against a trusted root, or a validator record
// against a state root witness produced off-chain.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ethverify/beaconproofs/beacon"
	"github.com/ethverify/beaconproofs/consensus-types/containers"
	"github.com/ethverify/beaconproofs/oracle"
	"github.com/ethverify/beaconproofs/proof"
)

var log = logrus.WithField("prefix", "main")

var (
	witnessFlag = &cli.StringFlag{
		Name:     "witness",
		Usage:    "Path to a witness JSON file ({gindex, root, witness, value})",
		Required: true,
	}
	validatorFlag = &cli.StringFlag{
		Name:     "validator",
		Usage:    "Path to a validator record JSON file",
		Required: true,
	}
	headerFlag = &cli.StringFlag{
		Name:  "header",
		Usage: "Path to a beacon block header JSON file",
	}
	rootFlag = &cli.StringFlag{
		Name:  "root",
		Usage: "Expected 0x-prefixed 32-byte root",
	}
	executionEndpointFlag = &cli.StringFlag{
		Name:  "execution-endpoint",
		Usage: "Execution node JSON-RPC endpoint used to read the EIP-4788 beacon roots contract",
	}
	withdrawalAddressFlag = &cli.StringFlag{
		Name:  "withdrawal-address",
		Usage: "Expected 0x-prefixed execution withdrawal address",
	}
)

func main() {
	app := &cli.App{
		Name:  "beaconproofs",
		Usage: "verify beacon chain Merkle witnesses",
		Commands: []*cli.Command{
			{
				Name:   "verify-header",
				Usage:  "verify a beacon block header against a root or the beacon roots contract",
				Flags:  []cli.Flag{headerFlag, rootFlag, executionEndpointFlag},
				Action: verifyHeader,
			},
			{
				Name:   "verify-validator",
				Usage:  "verify a validator record against a state witness",
				Flags:  []cli.Flag{witnessFlag, validatorFlag, headerFlag, executionEndpointFlag, withdrawalAddressFlag},
				Action: verifyValidator,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("verification aborted")
	}
}

func verifyHeader(c *cli.Context) error {
	header := &containers.BeaconBlockHeader{}
	if err := readJSONFile(c.String(headerFlag.Name), header); err != nil {
		return err
	}
	verifier, cleanup, err := newVerifier(c)
	if err != nil {
		return err
	}
	defer cleanup()

	var matched bool
	switch {
	case c.IsSet(rootFlag.Name):
		var root [32]byte
		root, err = parseRoot(c.String(rootFlag.Name))
		if err != nil {
			return err
		}
		matched, err = verifier.VerifyHeaderAgainstRoot(header, root)
	case c.IsSet(executionEndpointFlag.Name):
		matched, err = verifier.VerifyHeaderAgainstTrustedSource(c.Context, header)
	default:
		return errors.Errorf("either --%s or --%s is required", rootFlag.Name, executionEndpointFlag.Name)
	}
	if err != nil {
		return err
	}
	return report(matched, "header")
}

func verifyValidator(c *cli.Context) error {
	witness, err := proof.ReadFile(c.String(witnessFlag.Name))
	if err != nil {
		return err
	}
	if !witness.Verify() {
		return errors.New("witness is not self-consistent")
	}
	validator := &containers.Validator{}
	if err := readJSONFile(c.String(validatorFlag.Name), validator); err != nil {
		return err
	}
	verifier, cleanup, err := newVerifier(c)
	if err != nil {
		return err
	}
	defer cleanup()

	var matched bool
	switch {
	case c.IsSet(withdrawalAddressFlag.Name):
		matched, err = verifier.VerifyValidatorWithdrawalAddress(
			witness.Root, validator, witness.Witness, witness.Gindex,
			common.HexToAddress(c.String(withdrawalAddressFlag.Name)))
	case c.IsSet(headerFlag.Name):
		if !c.IsSet(executionEndpointFlag.Name) {
			return errors.Errorf("--%s requires --%s", headerFlag.Name, executionEndpointFlag.Name)
		}
		header := &containers.BeaconBlockHeader{}
		if err := readJSONFile(c.String(headerFlag.Name), header); err != nil {
			return err
		}
		matched, err = verifier.VerifyValidatorInclusionWithHeader(
			c.Context, header, validator, witness.Witness, witness.Gindex)
	default:
		matched, err = verifier.VerifyValidatorInclusion(
			witness.Root, validator, witness.Witness, witness.Gindex)
	}
	if err != nil {
		return err
	}
	return report(matched, "validator")
}

func newVerifier(c *cli.Context) (*beacon.Verifier, func(), error) {
	cleanup := func() {}
	var src oracle.RootSource
	if c.IsSet(executionEndpointFlag.Name) {
		ctx, cancel := context.WithCancel(c.Context)
		client, err := oracle.DialBeaconRoots(ctx, c.String(executionEndpointFlag.Name))
		if err != nil {
			cancel()
			return nil, nil, err
		}
		src = client
		cleanup = cancel
	}
	return beacon.NewVerifier(src), cleanup, nil
}

func readJSONFile(path string, v interface{}) error {
	if path == "" {
		return errors.New("no input file provided")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	return json.Unmarshal(data, v)
}

func parseRoot(s string) ([32]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return [32]byte{}, errors.Wrapf(err, "%s is not a hex root", s)
	}
	if len(b) != 32 {
		return [32]byte{}, errors.Errorf("expected 32 byte root, got %d bytes", len(b))
	}
	var root [32]byte
	copy(root[:], b)
	return root, nil
}

func report(matched bool, what string) error {
	if !matched {
		return cli.Exit(errors.Errorf("%s verification failed: root mismatch", what), 1)
	}
	log.Infof("%s verified", what)
	return nil
}
