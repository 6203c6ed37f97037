package events

import (
	"testing"

	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/drift-labs/drift-go/pkg/idl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorCodeToNameGoldenVectors reproduces spec.md §8 scenario 5 exactly.
func TestErrorCodeToNameGoldenVectors(t *testing.T) {
	name, msg, ok := ErrorCodeToName(6003)
	require.True(t, ok)
	assert.Equal(t, "InsufficientCollateral", name)
	assert.Equal(t, "Insufficient collateral", msg)

	name, _, ok = ErrorCodeToName(6146)
	require.True(t, ok)
	assert.Equal(t, "MarketActionPaused", name)
}

func TestErrorCodeToNameOutOfRange(t *testing.T) {
	_, _, ok := ErrorCodeToName(5999)
	assert.False(t, ok)

	_, _, ok = ErrorCodeToName(6000 + 1000)
	assert.False(t, ok)
}

func TestErrorNameToCodeRoundTrip(t *testing.T) {
	code, ok := ErrorNameToCode("InsufficientCollateral")
	require.True(t, ok)
	assert.EqualValues(t, 6003, code)

	name, _, ok := ErrorCodeToName(code)
	require.True(t, ok)
	assert.Equal(t, "InsufficientCollateral", name)
}

func TestDecodeEventUnknownDiscriminator(t *testing.T) {
	data := make([]byte, 16)
	ev, err := DecodeEvent(data)
	require.NoError(t, err)
	unk, ok := ev.(UnknownEvent)
	require.True(t, ok)
	assert.Equal(t, "Unknown", unk.EventName())
}

func TestDecodeEventTooShort(t *testing.T) {
	_, err := DecodeEvent([]byte{1, 2, 3})
	require.Error(t, err)
	ce, ok := codec.AsCodecError(err)
	require.True(t, ok)
	assert.Equal(t, codec.CodeTruncated, ce.Code)
}

func TestNewUserRecordRoundTrip(t *testing.T) {
	want := NewUserRecord{
		Ts:            1234,
		UserAuthority: codec.PublicKey{1},
		User:          codec.PublicKey{2},
		SubAccountID:  3,
	}
	data, err := EncodeEvent("NewUserRecord", want)
	require.NoError(t, err)

	disc, ok := idl.EventDiscriminator("NewUserRecord")
	require.True(t, ok)
	assert.Equal(t, disc[:], data[:8])

	got, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOrderActionRecordAndFillRecordShareShapeDistinctDiscriminators(t *testing.T) {
	filler := codec.PublicKey{9}
	reward := uint64(42)
	payload := orderActionPayload{Action: 2, MarketIndex: 1, Filler: &filler, FillerReward: &reward}

	oar := OrderActionRecord{payload}
	fr := FillRecord{payload}

	oarData, err := EncodeEvent("OrderActionRecord", oar)
	require.NoError(t, err)
	frData, err := EncodeEvent("FillRecord", fr)
	require.NoError(t, err)

	assert.NotEqual(t, oarData[:8], frData[:8])
	assert.Equal(t, oarData[8:], frData[8:])

	gotOAR, err := DecodeEvent(oarData)
	require.NoError(t, err)
	assert.Equal(t, oar, gotOAR)

	gotFR, err := DecodeEvent(frData)
	require.NoError(t, err)
	assert.Equal(t, fr, gotFR)
}

func TestOrderRecordReusesIdlOrder(t *testing.T) {
	want := OrderRecord{
		Ts:   99,
		User: codec.PublicKey{5},
		Order: idl.Order{
			Price:       100,
			OrderID:     7,
			MarketIndex: 2,
		},
	}
	data, err := EncodeEvent("OrderRecord", want)
	require.NoError(t, err)
	got, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFundingRateRecordRoundTrip(t *testing.T) {
	want := FundingRateRecord{
		Ts:                        1,
		MarketIndex:               2,
		FundingRate:               -100,
		CumulativeFundingRateLong: codec.Int128FromInt64(-50),
	}
	data, err := EncodeEvent("FundingRateRecord", want)
	require.NoError(t, err)
	got, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeEventUnknownName(t *testing.T) {
	_, err := EncodeEvent("NotARealEvent", NewUserRecord{})
	require.Error(t, err)
	ee, ok := AsEventError(err)
	require.True(t, ok)
	assert.Equal(t, CodeUnknownEvent, ee.Code)
}

func TestEncodeEventTypeMismatch(t *testing.T) {
	_, err := EncodeEvent("NewUserRecord", DepositRecord{})
	require.Error(t, err)
	ee, ok := AsEventError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEventTypeMismatch, ee.Code)
}
