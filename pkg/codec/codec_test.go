package codec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripIntegers(t *testing.T) {
	e := NewEncoder(64)
	e.U8(0xAB)
	e.I8(-5)
	e.U16(0x1234)
	e.I16(-1000)
	e.U32(0xDEADBEEF)
	e.I32(-70000)
	e.U64(0x0102030405060708)
	e.I64(-1)

	d := NewDecoder(e.Bytes())
	u8, err := d.U8()
	require.NoError(t, err)
	require.EqualValues(t, 0xAB, u8)

	i8, err := d.I8()
	require.NoError(t, err)
	require.EqualValues(t, -5, i8)

	u16, err := d.U16()
	require.NoError(t, err)
	require.EqualValues(t, 0x1234, u16)

	i16, err := d.I16()
	require.NoError(t, err)
	require.EqualValues(t, -1000, i16)

	u32, err := d.U32()
	require.NoError(t, err)
	require.EqualValues(t, 0xDEADBEEF, u32)

	i32, err := d.I32()
	require.NoError(t, err)
	require.EqualValues(t, -70000, i32)

	u64, err := d.U64()
	require.NoError(t, err)
	require.EqualValues(t, 0x0102030405060708, u64)

	i64, err := d.I64()
	require.NoError(t, err)
	require.EqualValues(t, -1, i64)

	require.NoError(t, d.FinishOrTrailing())
}

func TestU128RoundTrip(t *testing.T) {
	v := new(big.Int)
	v.SetString("340282366920938463463374607431768211455", 10) // 2^128 - 1
	w := Uint128FromBig(v)

	e := NewEncoder(16)
	e.U128(w)

	d := NewDecoder(e.Bytes())
	got, err := d.U128()
	require.NoError(t, err)
	require.Equal(t, w, got)
	require.Equal(t, 0, got.Big().Cmp(v))
}

func TestI128NegativeRoundTrip(t *testing.T) {
	v := big.NewInt(-123456789)
	w := Int128FromBig(v)

	e := NewEncoder(16)
	e.I128(w)

	d := NewDecoder(e.Bytes())
	got, err := d.I128()
	require.NoError(t, err)
	require.Equal(t, 0, got.Big().Cmp(v))
}

func TestU128UsesLittleEndianFromBytes(t *testing.T) {
	// "128-bit integer wrapping": u128 field encodes as 16 LE bytes;
	// conversion to the semantic integer equals int.from_bytes(bytes, 'little').
	raw := Uint128{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	require.EqualValues(t, 1, raw.Big().Uint64())
	require.EqualValues(t, 1, raw.Uint64())
}

func TestBoolRejectsInvalidByte(t *testing.T) {
	d := NewDecoder([]byte{2})
	_, err := d.Bool()
	ce, ok := AsCodecError(err)
	require.True(t, ok)
	require.Equal(t, CodeInvalidBooleanByte, ce.Code)
}

func TestTruncatedDecode(t *testing.T) {
	d := NewDecoder([]byte{0x01})
	_, err := d.U32()
	ce, ok := AsCodecError(err)
	require.True(t, ok)
	require.Equal(t, CodeTruncated, ce.Code)
}

func TestTrailingBytesRejected(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02})
	_, err := d.U8()
	require.NoError(t, err)
	err = d.FinishOrTrailing()
	ce, ok := AsCodecError(err)
	require.True(t, ok)
	require.Equal(t, CodeTrailingBytes, ce.Code)
}

func TestOptionEncoding(t *testing.T) {
	eNone := NewEncoder(1)
	eNone.OptionTag(false)
	require.Equal(t, []byte{0}, eNone.Bytes())

	eSome := NewEncoder(5)
	eSome.OptionTag(true)
	eSome.U32(7)
	require.Equal(t, []byte{1, 7, 0, 0, 0}, eSome.Bytes())
}

func TestVecEncodingEmptyAndN(t *testing.T) {
	e := NewEncoder(4)
	e.VecLen(0)
	require.Equal(t, []byte{0, 0, 0, 0}, e.Bytes())

	e2 := NewEncoder(4 + 3*2)
	e2.VecLen(3)
	e2.U16(1)
	e2.U16(2)
	e2.U16(3)
	d := NewDecoder(e2.Bytes())
	n, err := d.VecLen(2)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestVecLenExceedsBuffer(t *testing.T) {
	e := NewEncoder(4)
	e.VecLen(1000)
	d := NewDecoder(e.Bytes())
	_, err := d.VecLen(2)
	ce, ok := AsCodecError(err)
	require.True(t, ok)
	require.Equal(t, CodeVectorLengthExceedsBuffer, ce.Code)
}

func TestEnumTagExhaustiveness(t *testing.T) {
	for tag := 0; tag < 5; tag++ {
		d := NewDecoder([]byte{byte(tag)})
		got, err := d.EnumTag(5)
		require.NoError(t, err)
		require.Equal(t, tag, got)
	}
	d := NewDecoder([]byte{5})
	_, err := d.EnumTag(5)
	ce, ok := AsCodecError(err)
	require.True(t, ok)
	require.Equal(t, CodeUnknownEnumTag, ce.Code)
}

func TestPublicKeyBase58RoundTrip(t *testing.T) {
	var pk PublicKey
	for i := range pk {
		pk[i] = byte(i)
	}
	s := pk.String()
	got, err := PublicKeyFromBase58(s)
	require.NoError(t, err)
	require.Equal(t, pk, got)
}

func TestFixedBytesAndPadding(t *testing.T) {
	e := NewEncoder(8)
	e.FixedBytes([]byte{1, 2, 3})
	e.Padding(5)
	require.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0}, e.Bytes())

	d := NewDecoder(e.Bytes())
	b, err := d.FixedBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
}
