// Package instructions builds the data blob and account-meta list for every
// instruction in the catalogue: a stateless (args, account pubkeys) -> (bytes,
// metas) function per instruction, dispatched by name through one table, the
// way the teacher's consensus package walks a Tx's declared shape rather than
// hand-rolling one parser per transaction kind.
package instructions

import "github.com/drift-labs/drift-go/pkg/codec"

// AccountMeta is the on-chain-transport-agnostic (pubkey, is_signer,
// is_writable) tuple attached to every account slot an instruction
// references.
type AccountMeta struct {
	Pubkey     codec.PublicKey
	IsSigner   bool
	IsWritable bool
}
