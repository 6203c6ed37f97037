package codec

import "encoding/binary"

// Encoder accumulates the byte-exact encoding of a value. All writes are
// append-only; an Encoder is never read back from, only consumed via Bytes.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder with cap pre-sized to size bytes.
func NewEncoder(size int) *Encoder {
	return &Encoder{buf: make([]byte, 0, size)}
}

// Bytes returns the accumulated encoding.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return len(e.buf) }

// U8 appends an unsigned 8-bit integer.
func (e *Encoder) U8(v uint8) { e.buf = append(e.buf, v) }

// I8 appends a signed 8-bit integer.
func (e *Encoder) I8(v int8) { e.U8(uint8(v)) }

// U16 appends a little-endian unsigned 16-bit integer.
func (e *Encoder) U16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// I16 appends a little-endian signed 16-bit integer.
func (e *Encoder) I16(v int16) { e.U16(uint16(v)) }

// U32 appends a little-endian unsigned 32-bit integer.
func (e *Encoder) U32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// I32 appends a little-endian signed 32-bit integer.
func (e *Encoder) I32(v int32) { e.U32(uint32(v)) }

// U64 appends a little-endian unsigned 64-bit integer.
func (e *Encoder) U64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

// I64 appends a little-endian signed 64-bit integer.
func (e *Encoder) I64(v int64) { e.U64(uint64(v)) }

// U128 appends the opaque 16-byte wire form of a 128-bit unsigned integer.
func (e *Encoder) U128(v Uint128) { e.buf = append(e.buf, v[:]...) }

// I128 appends the opaque 16-byte wire form of a 128-bit signed integer.
func (e *Encoder) I128(v Int128) { e.buf = append(e.buf, v[:]...) }

// Bool appends a 1-byte boolean.
func (e *Encoder) Bool(v bool) {
	if v {
		e.U8(1)
	} else {
		e.U8(0)
	}
}

// FixedBytes appends raw bytes verbatim (the caller is responsible for
// ensuring the length matches the schema's declared fixed width).
func (e *Encoder) FixedBytes(b []byte) { e.buf = append(e.buf, b...) }

// PublicKey appends a 32-byte public key.
func (e *Encoder) PublicKey(pk PublicKey) { e.buf = append(e.buf, pk[:]...) }

// OptionTag appends the 1-byte Option<T> present-flag.
func (e *Encoder) OptionTag(present bool) { e.Bool(present) }

// VecLen appends the 4-byte LE Vec<T> length prefix.
func (e *Encoder) VecLen(n int) { e.U32(uint32(n)) }

// EnumTag appends a 1-byte enum discriminant.
func (e *Encoder) EnumTag(tag int) { e.U8(uint8(tag)) }

// Padding appends n zero bytes, matching the encoder's zero-fill policy for
// declared padding fields on fresh (non read-modify-write) encodes.
func (e *Encoder) Padding(n int) {
	for i := 0; i < n; i++ {
		e.buf = append(e.buf, 0)
	}
}
