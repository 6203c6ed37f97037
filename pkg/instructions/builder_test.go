package instructions

import (
	"testing"

	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pk(b byte) codec.PublicKey {
	var p codec.PublicKey
	p[0] = b
	return p
}

// TestInitializeUserGoldenVector reproduces spec.md §8 scenario 1 exactly.
func TestInitializeUserGoldenVector(t *testing.T) {
	data, _, err := Build("InitializeUser", InitializeUserArgs{SubAccountID: 0, Name: [32]byte{}}, map[string]codec.PublicKey{
		"state": pk(1), "user": pk(2), "user_stats": pk(3), "authority": pk(4),
		"payer": pk(5), "rent": pk(6), "system_program": pk(7),
	})
	require.NoError(t, err)
	require.Len(t, data, 42)
	assert.Equal(t, []byte{0xCB, 0x3E, 0xBA, 0xB5, 0x6D, 0xFA, 0xF0, 0xC1}, data[:8])
	assert.Equal(t, []byte{0x00, 0x00}, data[8:10])
	assert.Equal(t, make([]byte, 32), data[10:42])
}

// TestDepositGoldenVector reproduces spec.md §8 scenario 2 exactly, including
// account order and signer/writable flags.
func TestDepositGoldenVector(t *testing.T) {
	accounts := map[string]codec.PublicKey{
		"state": pk(1), "user": pk(2), "user_stats": pk(3), "authority": pk(4),
		"spot_market_vault": pk(5), "user_token_account": pk(6), "token_program": pk(7),
	}
	data, metas, err := Build("Deposit", DepositArgs{MarketIndex: 1, Amount: 1_000_000, ReduceOnly: false}, accounts)
	require.NoError(t, err)

	require.Len(t, data, 8+2+8+1)
	assert.Equal(t, []byte{0x94, 0x92, 0x79, 0x42, 0xCF, 0xAD, 0x15, 0xE3}, data[:8])
	assert.Equal(t, []byte{0x01, 0x00}, data[8:10])
	assert.Equal(t, []byte{0x40, 0x42, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00}, data[10:18])
	assert.Equal(t, byte(0x00), data[18])

	require.Len(t, metas, 7)
	wantFlags := []struct{ signer, writable bool }{
		{false, false}, // state
		{false, true},  // user
		{false, true},  // user_stats
		{true, false},  // authority
		{false, true},  // spot_market_vault
		{false, true},  // user_token_account
		{false, false}, // token_program
	}
	for i, w := range wantFlags {
		assert.Equal(t, w.signer, metas[i].IsSigner, "slot %d signer flag", i)
		assert.Equal(t, w.writable, metas[i].IsWritable, "slot %d writable flag", i)
	}
}

// TestCancelOrderGoldenVector reproduces spec.md §8 scenario 4: Option<u32>
// encodes as a 1-byte present tag plus payload, or a lone 0 byte when absent.
func TestCancelOrderGoldenVector(t *testing.T) {
	accounts := map[string]codec.PublicKey{"state": pk(1), "user": pk(2), "authority": pk(3)}

	orderID := uint32(7)
	data, _, err := Build("CancelOrder", CancelOrderArgs{OrderID: &orderID}, accounts)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x07, 0x00, 0x00, 0x00}, data[8:])

	data, _, err = Build("CancelOrder", CancelOrderArgs{OrderID: nil}, accounts)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, data[8:])
}

func TestBuildUnknownInstruction(t *testing.T) {
	_, _, err := Build("NotReal", nil, nil)
	require.Error(t, err)
	be, ok := AsBuildError(err)
	require.True(t, ok)
	assert.Equal(t, CodeUnknownInstruction, be.Code)
}

func TestBuildArgsTypeMismatch(t *testing.T) {
	_, _, err := Build("Deposit", "wrong type", map[string]codec.PublicKey{})
	require.Error(t, err)
	be, ok := AsBuildError(err)
	require.True(t, ok)
	assert.Equal(t, CodeArgsTypeMismatch, be.Code)
}

func TestBuildMissingAccount(t *testing.T) {
	_, _, err := Build("Deposit", DepositArgs{}, map[string]codec.PublicKey{"state": pk(1)})
	require.Error(t, err)
	be, ok := AsBuildError(err)
	require.True(t, ok)
	assert.Equal(t, CodeMissingAccount, be.Code)
}

func TestInitializeDisambiguationSharedDiscriminator(t *testing.T) {
	data, _, err := Build("Initialize", InitializeArgs{}, map[string]codec.PublicKey{
		"payer": pk(1), "rent": pk(2), "system_program": pk(3),
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}, data[:8])
	assert.Len(t, data, 8)
}

func TestAccountSlotNamesMatchesBuild(t *testing.T) {
	names, ok := AccountSlotNames("Deposit")
	require.True(t, ok)
	assert.Equal(t, []string{"state", "user", "user_stats", "authority", "spot_market_vault", "user_token_account", "token_program"}, names)
}

func TestPlacePerpOrderEncodesOptionalFields(t *testing.T) {
	accounts := map[string]codec.PublicKey{"state": pk(1), "user": pk(2), "authority": pk(3)}
	trigger := uint64(500)
	params := OrderParams{
		OrderType:       OrderTypeTriggerLimit,
		MarketType:      MarketTypePerp,
		Direction:       PositionDirectionShort,
		BaseAssetAmount: 10,
		Price:           200,
		MarketIndex:     2,
		TriggerPrice:    &trigger,
	}
	data, _, err := Build("PlacePerpOrder", PlacePerpOrderArgs{Params: params}, accounts)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
}

func TestPostPythPullOracleUpdateAtomicEncodesOpaqueVec(t *testing.T) {
	accounts := map[string]codec.PublicKey{"keeper": pk(1), "pyth_program": pk(2), "guardian_set": pk(3)}
	vaa := []byte{1, 2, 3, 4, 5}
	data, _, err := Build("PostPythPullOracleUpdateAtomic", PostPythPullOracleUpdateAtomicArgs{VaaData: vaa}, accounts)
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 0, 0, 0}, data[8:12])
	assert.Equal(t, vaa, data[12:])
}
