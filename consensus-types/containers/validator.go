package containers

import (
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	fieldparams "github.com/ethverify/beaconproofs/config/fieldparams"
	"github.com/ethverify/beaconproofs/consensus-types/primitives"
	"github.com/ethverify/beaconproofs/encoding/bytesutil"
)

// Validator is the eight-field validator registry record.
type Validator struct {
	Pubkey                     [48]byte
	WithdrawalCredentials      [32]byte
	EffectiveBalance           uint64
	Slashed                    bool
	ActivationEligibilityEpoch primitives.Epoch
	ActivationEpoch            primitives.Epoch
	ExitEpoch                  primitives.Epoch
	WithdrawableEpoch          primitives.Epoch
}

// HasExecutionWithdrawalCredentials returns whether the withdrawal credentials
// commit to an execution layer address.
func (v *Validator) HasExecutionWithdrawalCredentials() bool {
	return v.WithdrawalCredentials[0] == fieldparams.ExecutionWithdrawalPrefixByte
}

// WithdrawalAddress returns the execution address held in the low 160 bits of
// the withdrawal credentials.
func (v *Validator) WithdrawalAddress() common.Address {
	return common.BytesToAddress(v.WithdrawalCredentials[fieldparams.RootLength-fieldparams.ExecutionAddressLength:])
}

type validatorJSON struct {
	Pubkey                     string `json:"pubkey"`
	WithdrawalCredentials      string `json:"withdrawal_credentials"`
	EffectiveBalance           string `json:"effective_balance"`
	Slashed                    bool   `json:"slashed"`
	ActivationEligibilityEpoch string `json:"activation_eligibility_epoch"`
	ActivationEpoch            string `json:"activation_epoch"`
	ExitEpoch                  string `json:"exit_epoch"`
	WithdrawableEpoch          string `json:"withdrawable_epoch"`
}

// MarshalJSON implements json.Marshaler.
func (v *Validator) MarshalJSON() ([]byte, error) {
	return json.Marshal(&validatorJSON{
		Pubkey:                     hexutil.Encode(v.Pubkey[:]),
		WithdrawalCredentials:      hexutil.Encode(v.WithdrawalCredentials[:]),
		EffectiveBalance:           strconv.FormatUint(v.EffectiveBalance, 10),
		Slashed:                    v.Slashed,
		ActivationEligibilityEpoch: strconv.FormatUint(v.ActivationEligibilityEpoch.Uint64(), 10),
		ActivationEpoch:            strconv.FormatUint(v.ActivationEpoch.Uint64(), 10),
		ExitEpoch:                  strconv.FormatUint(v.ExitEpoch.Uint64(), 10),
		WithdrawableEpoch:          strconv.FormatUint(v.WithdrawableEpoch.Uint64(), 10),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Validator) UnmarshalJSON(data []byte) error {
	var raw validatorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "could not unmarshal validator")
	}
	pubkey, err := hexutil.Decode(raw.Pubkey)
	if err != nil {
		return errors.Wrap(err, "could not parse pubkey")
	}
	if len(pubkey) != fieldparams.BLSPubkeyLength {
		return errors.Errorf("expected %d byte pubkey, got %d", fieldparams.BLSPubkeyLength, len(pubkey))
	}
	withdrawalCredentials, err := decodeRoot(raw.WithdrawalCredentials)
	if err != nil {
		return errors.Wrap(err, "could not parse withdrawal credentials")
	}
	effectiveBalance, err := strconv.ParseUint(raw.EffectiveBalance, 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse effective balance")
	}
	activationEligibility, err := strconv.ParseUint(raw.ActivationEligibilityEpoch, 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse activation eligibility epoch")
	}
	activation, err := strconv.ParseUint(raw.ActivationEpoch, 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse activation epoch")
	}
	exit, err := strconv.ParseUint(raw.ExitEpoch, 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse exit epoch")
	}
	withdrawable, err := strconv.ParseUint(raw.WithdrawableEpoch, 10, 64)
	if err != nil {
		return errors.Wrap(err, "could not parse withdrawable epoch")
	}
	v.Pubkey = bytesutil.ToBytes48(pubkey)
	v.WithdrawalCredentials = withdrawalCredentials
	v.EffectiveBalance = effectiveBalance
	v.Slashed = raw.Slashed
	v.ActivationEligibilityEpoch = primitives.Epoch(activationEligibility)
	v.ActivationEpoch = primitives.Epoch(activation)
	v.ExitEpoch = primitives.Epoch(exit)
	v.WithdrawableEpoch = primitives.Epoch(withdrawable)
	return nil
}
