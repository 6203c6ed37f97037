package idl

import (
	"testing"

	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroUserStats() UserStats {
	return UserStats{
		Authority: codec.PublicKey{1},
		Referrer:  codec.PublicKey{2},
	}
}

func TestUserStatsRoundTrip(t *testing.T) {
	want := zeroUserStats()
	want.TakerVolume30D = 123456
	want.NumberOfSubAccounts = 3
	want.IsReferred = true

	data, err := EncodeAccount("UserStats", want)
	require.NoError(t, err)
	require.Len(t, data, 8+UserStatsSize)

	got, err := DecodeAccount("UserStats", data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeAccountDiscriminatorMismatch(t *testing.T) {
	// spec.md §8 scenario 6: a zeroed discriminator against PerpMarket must
	// fail with DiscriminatorMismatch, never panic.
	data := make([]byte, 8+PerpMarketSize)
	_, err := DecodeAccount("PerpMarket", data)
	require.Error(t, err)
	se, ok := AsSchemaError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDiscriminatorMismatch, se.Code)
}

func TestDecodeAccountSizeMismatch(t *testing.T) {
	disc, ok := AccountDiscriminator("UserStats")
	require.True(t, ok)

	data := append(append([]byte{}, disc[:]...), make([]byte, UserStatsSize-1)...)
	_, err := DecodeAccount("UserStats", data)
	require.Error(t, err)
	se, ok := AsSchemaError(err)
	require.True(t, ok)
	assert.Equal(t, CodeSizeMismatch, se.Code)
}

func TestDecodeAccountUnknownSchema(t *testing.T) {
	_, err := DecodeAccount("NotARealAccount", make([]byte, 64))
	require.Error(t, err)
	se, ok := AsSchemaError(err)
	require.True(t, ok)
	assert.Equal(t, CodeUnknownSchema, se.Code)
}

func TestDecodeAccountTooShortForDiscriminator(t *testing.T) {
	_, err := DecodeAccount("State", []byte{1, 2, 3})
	require.Error(t, err)
	se, ok := AsSchemaError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDiscriminatorMismatch, se.Code)
}

func TestInitializeDisambiguation(t *testing.T) {
	// The Initialize instruction and the Initialize account intentionally
	// share one literal discriminator (SPEC_FULL.md §9); the account schema
	// decodes its own distinct body shape regardless.
	marker := InitializeLegacyMarker{Version: 1}
	data, err := EncodeAccount("Initialize", marker)
	require.NoError(t, err)

	instDisc, ok := InstructionDiscriminator("Initialize")
	require.True(t, ok)
	acctDisc, ok := AccountDiscriminator("Initialize")
	require.True(t, ok)
	assert.Equal(t, instDisc, acctDisc)

	got, err := DecodeAccount("Initialize", data)
	require.NoError(t, err)
	assert.Equal(t, marker, got)
}

func TestFulfillmentConfigAccountsAreDistinctSchemas(t *testing.T) {
	body := fulfillmentConfigBody{
		VenueMarket: codec.PublicKey{9},
		ProgramID:   codec.PublicKey{8},
		MarketIndex: 4,
		Type:        FulfillmentTypePhoenixV1,
		Status:      FulfillmentStatusEnabled,
	}

	phoenix := PhoenixV1FulfillmentConfig{body}
	data, err := EncodeAccount("PhoenixV1FulfillmentConfig", phoenix)
	require.NoError(t, err)

	// Decoding the same bytes under a different registered name must fail:
	// the discriminators differ even though the body layout is identical.
	_, err = DecodeAccount("OpenbookV2FulfillmentConfig", data)
	require.Error(t, err)
	se, ok := AsSchemaError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDiscriminatorMismatch, se.Code)

	got, err := DecodeAccount("PhoenixV1FulfillmentConfig", data)
	require.NoError(t, err)
	assert.Equal(t, phoenix, got)
}

func TestUserRoundTripWithNestedArrays(t *testing.T) {
	u := User{
		Authority:    codec.PublicKey{1},
		SubAccountID: 7,
	}
	u.SpotPositions[0].MarketIndex = 1
	u.SpotPositions[0].ScaledBalance = codec.Uint128FromUint64(500)
	u.PerpPositions[3].BaseAssetAmount = -42
	u.Orders[31].OrderID = 99

	data, err := EncodeAccount("User", u)
	require.NoError(t, err)
	require.Len(t, data, 8+UserSize)

	got, err := DecodeAccount("User", data)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestRegisteredAccountNamesIncludesAllSchemas(t *testing.T) {
	names := RegisteredAccountNames()
	assert.Len(t, names, len(accountSchemas))
	for _, n := range names {
		_, ok := accountSchemas[n]
		assert.True(t, ok, "registered name %s missing from accountSchemas", n)
	}
}
