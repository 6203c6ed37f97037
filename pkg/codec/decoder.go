package codec

import "encoding/binary"

// Decoder reads primitive values from a fixed byte buffer at an advancing
// offset. It never allocates beyond the values it returns and never mutates
// the underlying buffer.
type Decoder struct {
	b   []byte
	pos int
}

// NewDecoder creates a Decoder reading from b starting at offset 0.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{b: b}
}

// Offset returns the current read position.
func (d *Decoder) Offset() int { return d.pos }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	if d.pos >= len(d.b) {
		return 0
	}
	return len(d.b) - d.pos
}

// Finished reports whether every byte of the buffer has been consumed.
// Top-level instruction-args decodes MUST call this and raise TrailingBytes
// if it returns false.
func (d *Decoder) Finished() bool { return d.Remaining() == 0 }

// FinishOrTrailing enforces the top-level "no residual bytes" rule.
func (d *Decoder) FinishOrTrailing() error {
	if !d.Finished() {
		return newErr(CodeTrailingBytes, "residual bytes after top-level decode")
	}
	return nil
}

func (d *Decoder) readExact(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, newErr(CodeTruncated, "buffer ended before declared shape was satisfied")
	}
	start := d.pos
	d.pos += n
	return d.b[start:d.pos], nil
}

// U8 decodes an unsigned 8-bit integer.
func (d *Decoder) U8() (uint8, error) {
	b, err := d.readExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 decodes a signed 8-bit integer.
func (d *Decoder) I8() (int8, error) {
	v, err := d.U8()
	return int8(v), err
}

// U16 decodes a little-endian unsigned 16-bit integer.
func (d *Decoder) U16() (uint16, error) {
	b, err := d.readExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// I16 decodes a little-endian signed 16-bit integer.
func (d *Decoder) I16() (int16, error) {
	v, err := d.U16()
	return int16(v), err
}

// U32 decodes a little-endian unsigned 32-bit integer.
func (d *Decoder) U32() (uint32, error) {
	b, err := d.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I32 decodes a little-endian signed 32-bit integer.
func (d *Decoder) I32() (int32, error) {
	v, err := d.U32()
	return int32(v), err
}

// U64 decodes a little-endian unsigned 64-bit integer.
func (d *Decoder) U64() (uint64, error) {
	b, err := d.readExact(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// I64 decodes a little-endian signed 64-bit integer.
func (d *Decoder) I64() (int64, error) {
	v, err := d.U64()
	return int64(v), err
}

// U128 decodes a 128-bit unsigned integer as its opaque 16-byte wire form.
func (d *Decoder) U128() (Uint128, error) {
	b, err := d.readExact(16)
	if err != nil {
		return Uint128{}, err
	}
	var out Uint128
	copy(out[:], b)
	return out, nil
}

// I128 decodes a 128-bit signed integer as its opaque 16-byte wire form.
func (d *Decoder) I128() (Int128, error) {
	b, err := d.readExact(16)
	if err != nil {
		return Int128{}, err
	}
	var out Int128
	copy(out[:], b)
	return out, nil
}

// Bool decodes a 1-byte boolean; any byte other than 0 or 1 is an error.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.U8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newErr(CodeInvalidBooleanByte, "bool byte not in {0,1}")
	}
}

// FixedBytes decodes exactly n raw bytes, returned as a fresh copy.
func (d *Decoder) FixedBytes(n int) ([]byte, error) {
	b, err := d.readExact(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// PublicKey decodes a 32-byte public key.
func (d *Decoder) PublicKey() (PublicKey, error) {
	b, err := d.readExact(32)
	if err != nil {
		return PublicKey{}, err
	}
	var out PublicKey
	copy(out[:], b)
	return out, nil
}

// OptionTag decodes the 1-byte present-flag of an Option<T> and reports
// whether a payload follows.
func (d *Decoder) OptionTag() (bool, error) {
	v, err := d.U8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newErr(CodeInvalidBooleanByte, "option tag not in {0,1}")
	}
}

// VecLen decodes the 4-byte LE length prefix of a Vec<T>, rejecting a
// declared length that would read past the remaining buffer assuming each
// element is at least minElemSize bytes.
func (d *Decoder) VecLen(minElemSize int) (int, error) {
	n, err := d.U32()
	if err != nil {
		return 0, err
	}
	if minElemSize > 0 {
		need := uint64(n) * uint64(minElemSize)
		if need > uint64(d.Remaining()) {
			return 0, newErr(CodeVectorLengthExceedsBuffer, "declared vector length exceeds remaining buffer")
		}
	}
	return int(n), nil
}

// EnumTag decodes a 1-byte enum discriminant and validates it against
// variantCount.
func (d *Decoder) EnumTag(variantCount int) (int, error) {
	v, err := d.U8()
	if err != nil {
		return 0, err
	}
	if int(v) >= variantCount {
		return 0, newErr(CodeUnknownEnumTag, "enum tag exceeds known variant count")
	}
	return int(v), nil
}
