package codec

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// PublicKey is a raw 32-byte on-chain address. The wire ABI never interprets
// its bytes; base58 text form is a debug/display convenience only, the way
// the Solana ecosystem's own clients render addresses.
type PublicKey [32]byte

// String renders the base58 text form conventionally used for Solana
// addresses.
func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// Hex renders the raw bytes as lowercase hex, useful in log lines and golden
// vectors where base58 ambiguity is undesirable.
func (pk PublicKey) Hex() string {
	return hex.EncodeToString(pk[:])
}

// IsZero reports whether pk is the all-zero default key.
func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

// PublicKeyFromBase58 parses the conventional base58 text form of an address.
func PublicKeyFromBase58(s string) (PublicKey, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return PublicKey{}, newErr(CodeTruncated, "invalid base58 public key: "+err.Error())
	}
	if len(b) != 32 {
		return PublicKey{}, newErr(CodeTruncated, "public key must decode to exactly 32 bytes")
	}
	var out PublicKey
	copy(out[:], b)
	return out, nil
}
