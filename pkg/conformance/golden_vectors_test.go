// Package conformance loads testdata/golden_vectors.json (produced by
// cmd/genvectors) and checks it against the four wire-format packages
// directly, the way the teacher's own conformance fixtures are consumed by a
// test that sits outside any single package under test.
package conformance

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/drift-labs/drift-go/pkg/events"
	"github.com/drift-labs/drift-go/pkg/idl"
	"github.com/drift-labs/drift-go/pkg/instructions"
)

type vectorFile struct {
	InitializeUser        instructionVector `json:"initialize_user"`
	Deposit               instructionVector `json:"deposit"`
	OracleSourceTag       enumVector        `json:"oracle_source_tag"`
	CancelOrder           cancelOrderVector `json:"cancel_order"`
	ErrorCodes            []errorCodeVector `json:"error_codes"`
	DiscriminatorMismatch mismatchVector    `json:"discriminator_mismatch"`
}

type instructionVector struct {
	DataHex  string `json:"data_hex"`
	Accounts []struct {
		Name       string `json:"name"`
		IsSigner   bool   `json:"is_signer"`
		IsWritable bool   `json:"is_writable"`
	} `json:"accounts"`
}

type enumVector struct {
	InputHex string `json:"input_hex"`
	Variant  int    `json:"variant"`
	Name     string `json:"name"`
}

type cancelOrderVector struct {
	SomeHex string `json:"some_hex"`
	NoneHex string `json:"none_hex"`
}

type errorCodeVector struct {
	Code    uint32 `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type mismatchVector struct {
	AccountDataHex string `json:"account_data_hex"`
	SchemaName     string `json:"schema_name"`
	ExpectCode     string `json:"expect_code"`
}

func loadVectors(t *testing.T) vectorFile {
	t.Helper()
	raw, err := os.ReadFile("../../testdata/golden_vectors.json")
	require.NoError(t, err)
	var v vectorFile
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

// TestInitializeUserGoldenVector reproduces spec.md §8 scenario 1.
func TestInitializeUserGoldenVector(t *testing.T) {
	v := loadVectors(t)

	accountPubkeys := make(map[string]codec.PublicKey, len(v.InitializeUser.Accounts))
	var zeroPK codec.PublicKey
	for _, a := range v.InitializeUser.Accounts {
		accountPubkeys[a.Name] = zeroPK
	}

	data, metas, err := instructions.Build("InitializeUser", instructions.InitializeUserArgs{
		SubAccountID: 0,
		Name:         [32]byte{},
	}, accountPubkeys)
	require.NoError(t, err)

	require.Equal(t, v.InitializeUser.DataHex, hex.EncodeToString(data))
	require.Equal(t, "cb3ebab56dfaf0c1", hex.EncodeToString(data[:8]))
	require.Len(t, data, 42)
	require.Len(t, metas, len(v.InitializeUser.Accounts))
	for i, a := range v.InitializeUser.Accounts {
		require.Equal(t, a.IsSigner, metas[i].IsSigner, "slot %s", a.Name)
		require.Equal(t, a.IsWritable, metas[i].IsWritable, "slot %s", a.Name)
	}
}

// TestDepositGoldenVector reproduces spec.md §8 scenario 2.
func TestDepositGoldenVector(t *testing.T) {
	v := loadVectors(t)

	accountPubkeys := make(map[string]codec.PublicKey, len(v.Deposit.Accounts))
	var zeroPK codec.PublicKey
	for _, a := range v.Deposit.Accounts {
		accountPubkeys[a.Name] = zeroPK
	}

	data, metas, err := instructions.Build("Deposit", instructions.DepositArgs{
		MarketIndex: 1,
		Amount:      1_000_000,
		ReduceOnly:  false,
	}, accountPubkeys)
	require.NoError(t, err)
	require.Equal(t, v.Deposit.DataHex, hex.EncodeToString(data))

	wantOrder := []string{"state", "user", "user_stats", "authority", "spot_market_vault", "user_token_account", "token_program"}
	slotNames, ok := instructions.AccountSlotNames("Deposit")
	require.True(t, ok)
	require.Equal(t, wantOrder, slotNames)

	wantFlags := []struct{ signer, writable bool }{
		{false, false}, {false, true}, {false, true}, {true, false}, {false, true}, {false, true}, {false, false},
	}
	for i, f := range wantFlags {
		require.Equal(t, f.signer, metas[i].IsSigner, "slot %s", slotNames[i])
		require.Equal(t, f.writable, metas[i].IsWritable, "slot %s", slotNames[i])
	}
}

// TestOracleSourceGoldenVector reproduces spec.md §8 scenario 3.
func TestOracleSourceGoldenVector(t *testing.T) {
	v := loadVectors(t)
	raw, err := hex.DecodeString(v.OracleSourceTag.InputHex)
	require.NoError(t, err)

	got, err := idl.DecodeOracleSource(codec.NewDecoder(raw))
	require.NoError(t, err)
	require.Equal(t, v.OracleSourceTag.Variant, int(got))
	require.Equal(t, v.OracleSourceTag.Name, got.String())
}

// TestCancelOrderGoldenVector reproduces spec.md §8 scenario 4.
func TestCancelOrderGoldenVector(t *testing.T) {
	v := loadVectors(t)
	accountPubkeys := map[string]codec.PublicKey{"state": {}, "user": {}, "authority": {}}

	orderID := uint32(7)
	someData, _, err := instructions.Build("CancelOrder", instructions.CancelOrderArgs{OrderID: &orderID}, accountPubkeys)
	require.NoError(t, err)
	require.Equal(t, v.CancelOrder.SomeHex, hex.EncodeToString(someData))

	noneData, _, err := instructions.Build("CancelOrder", instructions.CancelOrderArgs{OrderID: nil}, accountPubkeys)
	require.NoError(t, err)
	require.Equal(t, v.CancelOrder.NoneHex, hex.EncodeToString(noneData))
}

// TestErrorCodeGoldenVectors reproduces spec.md §8 scenario 5.
func TestErrorCodeGoldenVectors(t *testing.T) {
	v := loadVectors(t)
	require.Len(t, v.ErrorCodes, 2)
	for _, want := range v.ErrorCodes {
		name, msg, ok := events.ErrorCodeToName(want.Code)
		require.True(t, ok)
		require.Equal(t, want.Name, name)
		require.Equal(t, want.Message, msg)
	}
}

// TestDiscriminatorMismatchGoldenVector reproduces spec.md §8 scenario 6.
func TestDiscriminatorMismatchGoldenVector(t *testing.T) {
	v := loadVectors(t)
	data, err := hex.DecodeString(v.DiscriminatorMismatch.AccountDataHex)
	require.NoError(t, err)

	_, err = idl.DecodeAccount(v.DiscriminatorMismatch.SchemaName, data)
	require.Error(t, err)
	se, ok := idl.AsSchemaError(err)
	require.True(t, ok)
	require.Equal(t, v.DiscriminatorMismatch.ExpectCode, string(se.Code))
}
