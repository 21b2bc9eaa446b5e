package containers_test

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethverify/beaconproofs/consensus-types/containers"
	"github.com/ethverify/beaconproofs/consensus-types/primitives"
)

const validatorJSON = `{
	"pubkey": "0xa9df2cfd79a8b569e7abc286047ade81dbc2e5b89bfd8c00b0913ba3c539b80ff469e77465c6d1815b29e151ab8efd38",
	"withdrawal_credentials": "0x01000000000000000000000007982d9ece6ff05d7eaf38f3431a330d2f4a5233",
	"effective_balance": "32000000000",
	"slashed": false,
	"activation_eligibility_epoch": "0",
	"activation_epoch": "0",
	"exit_epoch": "18446744073709551615",
	"withdrawable_epoch": "18446744073709551615"
}`

func TestValidator_JSONRoundTrip(t *testing.T) {
	validator := &containers.Validator{}
	require.NoError(t, json.Unmarshal([]byte(validatorJSON), validator))
	assert.Equal(t, uint64(32000000000), validator.EffectiveBalance)
	assert.False(t, validator.Slashed)
	assert.Equal(t, primitives.FarFutureEpoch, validator.ExitEpoch)
	assert.Equal(t, primitives.FarFutureEpoch, validator.WithdrawableEpoch)

	encoded, err := json.Marshal(validator)
	require.NoError(t, err)
	decoded := &containers.Validator{}
	require.NoError(t, json.Unmarshal(encoded, decoded))
	assert.Equal(t, validator, decoded)
}

func TestValidator_WithdrawalAddress(t *testing.T) {
	validator := &containers.Validator{}
	require.NoError(t, json.Unmarshal([]byte(validatorJSON), validator))
	assert.True(t, validator.HasExecutionWithdrawalCredentials())
	assert.Equal(t,
		common.HexToAddress("0x07982d9ece6ff05d7eaf38f3431a330d2f4a5233"),
		validator.WithdrawalAddress())

	// BLS credentials (0x00 prefix) still expose their low 160 bits but are
	// not execution credentials.
	validator.WithdrawalCredentials[0] = 0x00
	assert.False(t, validator.HasExecutionWithdrawalCredentials())
}

func TestValidator_SSZRoundTrip(t *testing.T) {
	validator := &containers.Validator{}
	require.NoError(t, json.Unmarshal([]byte(validatorJSON), validator))

	encoded, err := validator.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, encoded, validator.SizeSSZ())

	decoded := &containers.Validator{}
	require.NoError(t, decoded.UnmarshalSSZ(encoded))
	assert.Equal(t, validator, decoded)

	assert.Error(t, decoded.UnmarshalSSZ(append(encoded, 0x00)))
}
