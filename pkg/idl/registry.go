package idl

import "github.com/drift-labs/drift-go/pkg/codec"

// accountSchema binds one registered account type's name to its wire
// discriminator, its declared zero-copy size, and the decode/encode
// functions defined in accounts.go. The registry is the single place that enforces
// §4.2's two-step contract (discriminator check, then size check) uniformly
// across every account type, the way the teacher's consensus package
// dispatches on a transaction's type byte through one table rather than a
// chain of type switches.
type accountSchema struct {
	name string
	size int
	decodeBody func(d *codec.Decoder) (any, error)
	encodeBody func(v any, e *codec.Encoder) bool
}

var accountSchemas = map[string]accountSchema{
	"State": {
		name: "State",
		size: StateSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodeStateBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			s, ok := v.(State)
			if ok {
				s.Encode(e)
			}
			return ok
		},
	},
	"SpotMarket": {
		name: "SpotMarket",
		size: SpotMarketSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodeSpotMarketBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			s, ok := v.(SpotMarket)
			if ok {
				s.Encode(e)
			}
			return ok
		},
	},
	"PerpMarket": {
		name: "PerpMarket",
		size: PerpMarketSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodePerpMarketBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			p, ok := v.(PerpMarket)
			if ok {
				p.Encode(e)
			}
			return ok
		},
	},
	"User": {
		name: "User",
		size: UserSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodeUserBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			u, ok := v.(User)
			if ok {
				u.Encode(e)
			}
			return ok
		},
	},
	"UserStats": {
		name: "UserStats",
		size: UserStatsSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodeUserStatsBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			u, ok := v.(UserStats)
			if ok {
				u.Encode(e)
			}
			return ok
		},
	},
	"InsuranceFundStake": {
		name: "InsuranceFundStake",
		size: InsuranceFundStakeSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodeInsuranceFundStakeBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			s, ok := v.(InsuranceFundStake)
			if ok {
				s.Encode(e)
			}
			return ok
		},
	},
	"PrelaunchOracle": {
		name: "PrelaunchOracle",
		size: PrelaunchOracleSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodePrelaunchOracleBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			p, ok := v.(PrelaunchOracle)
			if ok {
				p.Encode(e)
			}
			return ok
		},
	},
	"PhoenixV1FulfillmentConfig": {
		name: "PhoenixV1FulfillmentConfig",
		size: PhoenixV1FulfillmentConfigSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodePhoenixV1FulfillmentConfigBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			f, ok := v.(PhoenixV1FulfillmentConfig)
			if ok {
				f.Encode(e)
			}
			return ok
		},
	},
	"OpenbookV2FulfillmentConfig": {
		name: "OpenbookV2FulfillmentConfig",
		size: OpenbookV2FulfillmentConfigSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodeOpenbookV2FulfillmentConfigBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			f, ok := v.(OpenbookV2FulfillmentConfig)
			if ok {
				f.Encode(e)
			}
			return ok
		},
	},
	"SerumV3FulfillmentConfig": {
		name: "SerumV3FulfillmentConfig",
		size: SerumV3FulfillmentConfigSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodeSerumV3FulfillmentConfigBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			f, ok := v.(SerumV3FulfillmentConfig)
			if ok {
				f.Encode(e)
			}
			return ok
		},
	},
	"Initialize": {
		name: "Initialize",
		size: InitializeLegacyMarkerSize,
		decodeBody: func(d *codec.Decoder) (any, error) { return decodeInitializeLegacyMarkerBody(d) },
		encodeBody: func(v any, e *codec.Encoder) bool {
			m, ok := v.(InitializeLegacyMarker)
			if ok {
				m.Encode(e)
			}
			return ok
		},
	},
}

// DecodeAccount decodes the account type registered under name from data,
// enforcing discriminator-then-size per §4.2: a mismatched 8-byte prefix is
// CodeDiscriminatorMismatch, a correct prefix followed by a body of the
// wrong length is CodeSizeMismatch, and either is returned before touching
// the account-specific decode body.
func DecodeAccount(name string, data []byte) (any, error) {
	schema, ok := accountSchemas[name]
	if !ok {
		return nil, newErr(CodeUnknownSchema, "unregistered account schema: "+name)
	}

	want, ok := AccountDiscriminator(name)
	if !ok {
		return nil, newErr(CodeUnknownSchema, "no discriminator registered for account: "+name)
	}
	if len(data) < 8 {
		return nil, newErr(CodeDiscriminatorMismatch, "account data shorter than discriminator")
	}
	var got Discriminator
	copy(got[:], data[:8])
	if got != want {
		return nil, newErrf(CodeDiscriminatorMismatch, "account %s: discriminator mismatch", name)
	}

	body := data[8:]
	if len(body) != schema.size {
		return nil, newErrf(CodeSizeMismatch, "account %s: expected body of %d bytes, got %d", name, schema.size, len(body))
	}

	d := codec.NewDecoder(body)
	v, err := schema.decodeBody(d)
	if err != nil {
		return nil, err
	}
	if err := d.FinishOrTrailing(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeAccount encodes a value previously returned by DecodeAccount (or
// constructed directly) back into its discriminator-prefixed wire form. It
// returns CodeUnknownSchema if name is unregistered, or a SchemaError if v's
// dynamic type does not match the registered schema's account type.
func EncodeAccount(name string, v any) ([]byte, error) {
	schema, ok := accountSchemas[name]
	if !ok {
		return nil, newErr(CodeUnknownSchema, "unregistered account schema: "+name)
	}
	disc, ok := AccountDiscriminator(name)
	if !ok {
		return nil, newErr(CodeUnknownSchema, "no discriminator registered for account: "+name)
	}

	e := codec.NewEncoder(8 + schema.size)
	e.FixedBytes(disc[:])
	if !schema.encodeBody(v, e) {
		return nil, newErrf(CodeUnknownSchema, "value does not match account schema %s", name)
	}
	return e.Bytes(), nil
}

// RegisteredAccountNames returns the sorted-by-declaration list of account
// type names the registry knows how to decode and encode.
func RegisteredAccountNames() []string {
	out := make([]string, len(accountNames))
	copy(out, accountNames)
	return out
}
