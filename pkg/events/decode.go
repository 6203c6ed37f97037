package events

import (
	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/drift-labs/drift-go/pkg/idl"
)

// DecodeEvent dispatches on data's 8-byte discriminator prefix and decodes
// the matching borsh payload. An unrecognized discriminator is not an
// error: it returns UnknownEvent carrying the raw discriminator and
// remaining bytes, so a caller streaming program logs can skip event kinds
// it doesn't yet know about instead of aborting the whole stream.
func DecodeEvent(data []byte) (Event, error) {
	if len(data) < 8 {
		return nil, &codec.CodecError{Code: codec.CodeTruncated, Msg: "event data shorter than discriminator"}
	}
	var disc idl.Discriminator
	copy(disc[:], data[:8])
	body := data[8:]

	name, ok := idl.EventNameByDiscriminator(disc)
	if !ok {
		return UnknownEvent{Discriminator: disc, Data: append([]byte(nil), body...)}, nil
	}

	d := codec.NewDecoder(body)
	var (
		ev  Event
		err error
	)
	switch name {
	case "NewUserRecord":
		ev, err = decodeNewUserRecord(d)
	case "DepositRecord":
		ev, err = decodeDepositRecord(d)
	case "OrderRecord":
		ev, err = decodeOrderRecord(d)
	case "OrderActionRecord":
		var p orderActionPayload
		p, err = decodeOrderActionPayload(d)
		ev = OrderActionRecord{p}
	case "FillRecord":
		var p orderActionPayload
		p, err = decodeOrderActionPayload(d)
		ev = FillRecord{p}
	case "LiquidationRecord":
		ev, err = decodeLiquidationRecord(d)
	case "SettlePnlRecord":
		ev, err = decodeSettlePnlRecord(d)
	case "InsuranceFundStakeRecord":
		ev, err = decodeInsuranceFundStakeRecord(d)
	case "FundingRateRecord":
		ev, err = decodeFundingRateRecord(d)
	case "FundingPaymentRecord":
		ev, err = decodeFundingPaymentRecord(d)
	default:
		// The cases above list every name in tables.go's eventNames; this
		// branch is reached only if that list and the switch drift apart.
		return UnknownEvent{Discriminator: disc, Data: append([]byte(nil), body...)}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := d.FinishOrTrailing(); err != nil {
		return nil, err
	}
	return ev, nil
}

// EncodeEvent is DecodeEvent's inverse, used by tests. name must be one of
// the registered event names; ev's dynamic type must match the payload
// DecodeEvent would have produced for that name, otherwise the call fails
// with CodeEventTypeMismatch.
func EncodeEvent(name string, ev any) ([]byte, error) {
	disc, ok := idl.EventDiscriminator(name)
	if !ok {
		return nil, newErr(CodeUnknownEvent, "unregistered event: "+name)
	}
	if named, ok := ev.(Event); !ok || named.EventName() != name {
		return nil, newErr(CodeEventTypeMismatch, "value does not match the payload type registered for "+name)
	}
	e := codec.NewEncoder(8 + 64)
	e.FixedBytes(disc[:])

	switch v := ev.(type) {
	case NewUserRecord:
		v.encode(e)
	case DepositRecord:
		v.encode(e)
	case OrderRecord:
		v.encode(e)
	case OrderActionRecord:
		v.orderActionPayload.encode(e)
	case FillRecord:
		v.orderActionPayload.encode(e)
	case LiquidationRecord:
		v.encode(e)
	case SettlePnlRecord:
		v.encode(e)
	case InsuranceFundStakeRecord:
		v.encode(e)
	case FundingRateRecord:
		v.encode(e)
	case FundingPaymentRecord:
		v.encode(e)
	default:
		return nil, newErr(CodeEventTypeMismatch, "value does not match any registered event payload type")
	}
	return e.Bytes(), nil
}
