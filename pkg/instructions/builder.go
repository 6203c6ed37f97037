package instructions

import (
	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/drift-labs/drift-go/pkg/idl"
)

// Build encodes an instruction's discriminator-prefixed data blob and
// composes its ordered account-meta list from accountPubkeys, keyed by the
// logical slot names instructionSchemas declares for name.
//
// accountPubkeys need only contain the slots name's schema actually
// references; a missing slot is CodeMissingAccount, an unregistered
// instruction name is CodeUnknownInstruction, and an args value of the wrong
// Go type is CodeArgsTypeMismatch. Any codec-level encode failure (none of
// the fixed-shape args in this catalogue can actually fail to encode, since
// none decodes a caller-supplied length prefix) propagates unchanged.
func Build(name string, args any, accountPubkeys map[string]codec.PublicKey) ([]byte, []AccountMeta, error) {
	schema, ok := instructionSchemas[name]
	if !ok {
		return nil, nil, newErrf(CodeUnknownInstruction, "unregistered instruction: %s", name)
	}
	disc, ok := idl.InstructionDiscriminator(name)
	if !ok {
		return nil, nil, newErrf(CodeUnknownInstruction, "no discriminator registered for instruction: %s", name)
	}

	e := codec.NewEncoder(8 + 64)
	e.FixedBytes(disc[:])
	if err := schema.encodeArgs(args, e); err != nil {
		return nil, nil, err
	}

	metas := make([]AccountMeta, 0, len(schema.slots))
	for _, slot := range schema.slots {
		pk, ok := accountPubkeys[slot.name]
		if !ok {
			return nil, nil, newErrf(CodeMissingAccount, "instruction %s: missing account %q", name, slot.name)
		}
		metas = append(metas, AccountMeta{Pubkey: pk, IsSigner: slot.isSigner, IsWritable: slot.isWritable})
	}

	return e.Bytes(), metas, nil
}

// AccountSlotNames returns the ordered logical account-slot names name's
// schema declares, for callers assembling accountPubkeys without guessing.
func AccountSlotNames(name string) ([]string, bool) {
	schema, ok := instructionSchemas[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(schema.slots))
	for i, s := range schema.slots {
		out[i] = s.name
	}
	return out, true
}

// RegisteredInstructionNames returns every instruction name Build accepts.
func RegisteredInstructionNames() []string {
	out := make([]string, 0, len(instructionSchemas))
	for name := range instructionSchemas {
		out = append(out, name)
	}
	return out
}
