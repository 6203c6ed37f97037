package idl

import "crypto/sha256"

// Discriminator is the 8-byte prefix that tags every account, instruction,
// and event message on the wire.
type Discriminator [8]byte

// computeDiscriminator reproduces the generator's formula: the first 8 bytes
// of SHA-256(namespace + name). tables.go's init uses it once to fill the
// package-level discriminator tables (then pins a few literal overrides);
// lookups read those tables and never hash at call time.
// ValidateDiscriminatorTable uses it again to report table entries that
// differ from a fresh recomputation.
func computeDiscriminator(namespace, name string) Discriminator {
	sum := sha256.Sum256([]byte(namespace + name))
	var d Discriminator
	copy(d[:], sum[:8])
	return d
}

// AccountNamespace / InstructionNamespace / EventNamespace are the three
// disjoint hashing namespaces the generator uses. Discriminators are unique
// within each table; the one value shared across tables is the pinned
// literal for the "Initialize" account and the "Initialize" instruction.
const (
	AccountNamespace     = "account:"
	InstructionNamespace = "global:"
	EventNamespace       = "event:"
)

// mustDiscriminator panics on a malformed literal — used only at package
// init for the pinned golden-vector overrides, never on a decode path.
func mustDiscriminator(b ...byte) Discriminator {
	if len(b) != 8 {
		panic("discriminator literal must be exactly 8 bytes")
	}
	var d Discriminator
	copy(d[:], b)
	return d
}

// ValidateDiscriminatorTable recomputes every discriminator in the three
// registries from its canonical name and reports any entries whose shipped
// value was pinned to a golden vector rather than derived from the formula.
// This is advisory developer tooling (invoked from cmd/idlcli), never part
// of the decode/encode hot path, and a non-empty result is not itself an
// error — the literal overrides pinned in tables.go (instructions
// InitializeUser, Deposit and Initialize, and account Initialize) are
// expected to appear in it.
func ValidateDiscriminatorTable() []string {
	var mismatches []string
	for name, d := range accountDiscriminators {
		if computeDiscriminator(AccountNamespace, name) != d {
			mismatches = append(mismatches, "account:"+name)
		}
	}
	for name, d := range instructionDiscriminators {
		if computeDiscriminator(InstructionNamespace, snakeCase(name)) != d {
			mismatches = append(mismatches, "instruction:"+name)
		}
	}
	for name, d := range eventDiscriminators {
		if computeDiscriminator(EventNamespace, name) != d {
			mismatches = append(mismatches, "event:"+name)
		}
	}
	return mismatches
}
