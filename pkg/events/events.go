package events

import (
	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/drift-labs/drift-go/pkg/idl"
)

// Event is implemented by every registered event payload and by
// UnknownEvent, the non-fatal sentinel returned for an unmapped
// discriminator.
type Event interface {
	EventName() string
}

// UnknownEvent is returned by DecodeEvent when the 8-byte discriminator
// prefix doesn't match any registered event name — an expected, non-error
// outcome for log data the client doesn't recognize (e.g. a newer program
// version), mirroring the registry's non-panicking stance on unknown input.
type UnknownEvent struct {
	Discriminator idl.Discriminator
	Data          []byte
}

func (UnknownEvent) EventName() string { return "Unknown" }

func readOptionPublicKey(d *codec.Decoder) (*codec.PublicKey, error) {
	present, err := d.OptionTag()
	if err != nil || !present {
		return nil, err
	}
	pk, err := d.PublicKey()
	if err != nil {
		return nil, err
	}
	return &pk, nil
}

func writeOptionPublicKey(e *codec.Encoder, pk *codec.PublicKey) {
	e.OptionTag(pk != nil)
	if pk != nil {
		e.PublicKey(*pk)
	}
}

func readOptionU64(d *codec.Decoder) (*uint64, error) {
	present, err := d.OptionTag()
	if err != nil || !present {
		return nil, err
	}
	v, err := d.U64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeOptionU64(e *codec.Encoder, v *uint64) {
	e.OptionTag(v != nil)
	if v != nil {
		e.U64(*v)
	}
}

func readOptionI64(d *codec.Decoder) (*int64, error) {
	present, err := d.OptionTag()
	if err != nil || !present {
		return nil, err
	}
	v, err := d.I64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeOptionI64(e *codec.Encoder, v *int64) {
	e.OptionTag(v != nil)
	if v != nil {
		e.I64(*v)
	}
}

func readOptionU32(d *codec.Decoder) (*uint32, error) {
	present, err := d.OptionTag()
	if err != nil || !present {
		return nil, err
	}
	v, err := d.U32()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeOptionU32(e *codec.Encoder, v *uint32) {
	e.OptionTag(v != nil)
	if v != nil {
		e.U32(*v)
	}
}

// NewUserRecord logs the creation of a User sub-account.
type NewUserRecord struct {
	Ts            int64
	UserAuthority codec.PublicKey
	User          codec.PublicKey
	SubAccountID  uint16
	Name          [32]byte
	ReferrerStats *codec.PublicKey
}

func (NewUserRecord) EventName() string { return "NewUserRecord" }

func (r NewUserRecord) encode(e *codec.Encoder) {
	e.I64(r.Ts)
	e.PublicKey(r.UserAuthority)
	e.PublicKey(r.User)
	e.U16(r.SubAccountID)
	e.FixedBytes(r.Name[:])
	writeOptionPublicKey(e, r.ReferrerStats)
}

func decodeNewUserRecord(d *codec.Decoder) (NewUserRecord, error) {
	var r NewUserRecord
	var err error
	if r.Ts, err = d.I64(); err != nil {
		return r, err
	}
	if r.UserAuthority, err = d.PublicKey(); err != nil {
		return r, err
	}
	if r.User, err = d.PublicKey(); err != nil {
		return r, err
	}
	if r.SubAccountID, err = d.U16(); err != nil {
		return r, err
	}
	name, err := d.FixedBytes(32)
	if err != nil {
		return r, err
	}
	copy(r.Name[:], name)
	if r.ReferrerStats, err = readOptionPublicKey(d); err != nil {
		return r, err
	}
	return r, nil
}

// DepositRecord logs a Deposit or Withdraw instruction's effect on a spot
// market's balances.
type DepositRecord struct {
	Ts                    int64
	UserAuthority         codec.PublicKey
	Direction             uint8 // 0 Deposit, 1 Withdraw
	MarketIndex           uint16
	Amount                uint64
	OraclePrice           int64
	MarketDepositBalance  codec.Uint128
	MarketWithdrawBalance codec.Uint128
	TransferUser          *codec.PublicKey
}

func (DepositRecord) EventName() string { return "DepositRecord" }

func (r DepositRecord) encode(e *codec.Encoder) {
	e.I64(r.Ts)
	e.PublicKey(r.UserAuthority)
	e.U8(r.Direction)
	e.U16(r.MarketIndex)
	e.U64(r.Amount)
	e.I64(r.OraclePrice)
	e.U128(r.MarketDepositBalance)
	e.U128(r.MarketWithdrawBalance)
	writeOptionPublicKey(e, r.TransferUser)
}

func decodeDepositRecord(d *codec.Decoder) (DepositRecord, error) {
	var r DepositRecord
	var err error
	if r.Ts, err = d.I64(); err != nil {
		return r, err
	}
	if r.UserAuthority, err = d.PublicKey(); err != nil {
		return r, err
	}
	if r.Direction, err = d.U8(); err != nil {
		return r, err
	}
	if r.MarketIndex, err = d.U16(); err != nil {
		return r, err
	}
	if r.Amount, err = d.U64(); err != nil {
		return r, err
	}
	if r.OraclePrice, err = d.I64(); err != nil {
		return r, err
	}
	if r.MarketDepositBalance, err = d.U128(); err != nil {
		return r, err
	}
	if r.MarketWithdrawBalance, err = d.U128(); err != nil {
		return r, err
	}
	if r.TransferUser, err = readOptionPublicKey(d); err != nil {
		return r, err
	}
	return r, nil
}

// OrderRecord logs a resting order's full state at the moment it was placed,
// reusing idl.Order's borsh-args shape verbatim (the order-args encoding has
// no padding, so it is identical whether embedded in a User account or
// logged standalone).
type OrderRecord struct {
	Ts    int64
	User  codec.PublicKey
	Order idl.Order
}

func (OrderRecord) EventName() string { return "OrderRecord" }

func (r OrderRecord) encode(e *codec.Encoder) {
	e.I64(r.Ts)
	e.PublicKey(r.User)
	r.Order.Encode(e)
}

func decodeOrderRecord(d *codec.Decoder) (OrderRecord, error) {
	var r OrderRecord
	var err error
	if r.Ts, err = d.I64(); err != nil {
		return r, err
	}
	if r.User, err = d.PublicKey(); err != nil {
		return r, err
	}
	if r.Order, err = idl.DecodeOrder(d); err != nil {
		return r, err
	}
	return r, nil
}

// orderActionPayload is the shared shape of OrderActionRecord and FillRecord
// (spec.md's "FillRecord is an alias of OrderActionRecord semantics, separate
// discriminator" note) — identical layout, distinct wire identities, the same
// pattern pkg/idl uses for the three fulfillment-config account types.
type orderActionPayload struct {
	Action                 uint8 // 0 Place, 1 Cancel, 2 Fill, 3 Trigger, 4 Expire
	ActionExplanation      uint8
	MarketIndex            uint16
	MarketType             uint8 // 0 Spot, 1 Perp
	Filler                 *codec.PublicKey
	FillerReward           *uint64
	FillRecordID           *uint64
	BaseAssetAmountFilled  *uint64
	QuoteAssetAmountFilled *uint64
	TakerFee               *uint64
	MakerFee               *int64
	Taker                  *codec.PublicKey
	TakerOrderID           *uint32
	Maker                  *codec.PublicKey
	MakerOrderID           *uint32
}

func (p orderActionPayload) encode(e *codec.Encoder) {
	e.EnumTag(int(p.Action))
	e.EnumTag(int(p.ActionExplanation))
	e.U16(p.MarketIndex)
	e.EnumTag(int(p.MarketType))
	writeOptionPublicKey(e, p.Filler)
	writeOptionU64(e, p.FillerReward)
	writeOptionU64(e, p.FillRecordID)
	writeOptionU64(e, p.BaseAssetAmountFilled)
	writeOptionU64(e, p.QuoteAssetAmountFilled)
	writeOptionU64(e, p.TakerFee)
	writeOptionI64(e, p.MakerFee)
	writeOptionPublicKey(e, p.Taker)
	writeOptionU32(e, p.TakerOrderID)
	writeOptionPublicKey(e, p.Maker)
	writeOptionU32(e, p.MakerOrderID)
}

func decodeOrderActionPayload(d *codec.Decoder) (orderActionPayload, error) {
	var p orderActionPayload
	tag, err := d.EnumTag(5)
	if err != nil {
		return p, err
	}
	p.Action = uint8(tag)
	tag, err = d.EnumTag(256)
	if err != nil {
		return p, err
	}
	p.ActionExplanation = uint8(tag)
	if p.MarketIndex, err = d.U16(); err != nil {
		return p, err
	}
	tag, err = d.EnumTag(2)
	if err != nil {
		return p, err
	}
	p.MarketType = uint8(tag)
	if p.Filler, err = readOptionPublicKey(d); err != nil {
		return p, err
	}
	if p.FillerReward, err = readOptionU64(d); err != nil {
		return p, err
	}
	if p.FillRecordID, err = readOptionU64(d); err != nil {
		return p, err
	}
	if p.BaseAssetAmountFilled, err = readOptionU64(d); err != nil {
		return p, err
	}
	if p.QuoteAssetAmountFilled, err = readOptionU64(d); err != nil {
		return p, err
	}
	if p.TakerFee, err = readOptionU64(d); err != nil {
		return p, err
	}
	if p.MakerFee, err = readOptionI64(d); err != nil {
		return p, err
	}
	if p.Taker, err = readOptionPublicKey(d); err != nil {
		return p, err
	}
	if p.TakerOrderID, err = readOptionU32(d); err != nil {
		return p, err
	}
	if p.Maker, err = readOptionPublicKey(d); err != nil {
		return p, err
	}
	if p.MakerOrderID, err = readOptionU32(d); err != nil {
		return p, err
	}
	return p, nil
}

// OrderActionRecord logs a single state transition (place/cancel/fill/
// trigger/expire) applied to an order.
type OrderActionRecord struct{ orderActionPayload }

func (OrderActionRecord) EventName() string { return "OrderActionRecord" }

// FillRecord shares OrderActionRecord's payload shape under its own
// discriminator; see orderActionPayload's doc comment.
type FillRecord struct{ orderActionPayload }

func (FillRecord) EventName() string { return "FillRecord" }

// LiquidationRecord logs one liquidation action taken against a User.
type LiquidationRecord struct {
	Ts                int64
	User              codec.PublicKey
	Liquidator        codec.PublicKey
	LiquidationType   uint8 // 0 LiquidatePerp, 1 LiquidateSpot, 2 LiquidateBorrowForPerpPnl, 3 ResolvePerpPnlDeficit, 4 ResolvePerpBankruptcy, 5 ResolveSpotBankruptcy
	MarginRequirement codec.Uint128
	TotalCollateral   codec.Int128
	LiquidationID     uint16
}

func (LiquidationRecord) EventName() string { return "LiquidationRecord" }

func (r LiquidationRecord) encode(e *codec.Encoder) {
	e.I64(r.Ts)
	e.PublicKey(r.User)
	e.PublicKey(r.Liquidator)
	e.EnumTag(int(r.LiquidationType))
	e.U128(r.MarginRequirement)
	e.I128(r.TotalCollateral)
	e.U16(r.LiquidationID)
}

func decodeLiquidationRecord(d *codec.Decoder) (LiquidationRecord, error) {
	var r LiquidationRecord
	var err error
	if r.Ts, err = d.I64(); err != nil {
		return r, err
	}
	if r.User, err = d.PublicKey(); err != nil {
		return r, err
	}
	if r.Liquidator, err = d.PublicKey(); err != nil {
		return r, err
	}
	tag, err := d.EnumTag(6)
	if err != nil {
		return r, err
	}
	r.LiquidationType = uint8(tag)
	if r.MarginRequirement, err = d.U128(); err != nil {
		return r, err
	}
	if r.TotalCollateral, err = d.I128(); err != nil {
		return r, err
	}
	if r.LiquidationID, err = d.U16(); err != nil {
		return r, err
	}
	return r, nil
}

// SettlePnlRecord logs realized PnL settlement for a perp position.
type SettlePnlRecord struct {
	Ts                    int64
	User                  codec.PublicKey
	MarketIndex           uint16
	Pnl                   codec.Int128
	QuoteAssetAmountAfter codec.Uint128
	QuoteEntryAmount      codec.Int128
	SettlePrice           int64
}

func (SettlePnlRecord) EventName() string { return "SettlePnlRecord" }

func (r SettlePnlRecord) encode(e *codec.Encoder) {
	e.I64(r.Ts)
	e.PublicKey(r.User)
	e.U16(r.MarketIndex)
	e.I128(r.Pnl)
	e.U128(r.QuoteAssetAmountAfter)
	e.I128(r.QuoteEntryAmount)
	e.I64(r.SettlePrice)
}

func decodeSettlePnlRecord(d *codec.Decoder) (SettlePnlRecord, error) {
	var r SettlePnlRecord
	var err error
	if r.Ts, err = d.I64(); err != nil {
		return r, err
	}
	if r.User, err = d.PublicKey(); err != nil {
		return r, err
	}
	if r.MarketIndex, err = d.U16(); err != nil {
		return r, err
	}
	if r.Pnl, err = d.I128(); err != nil {
		return r, err
	}
	if r.QuoteAssetAmountAfter, err = d.U128(); err != nil {
		return r, err
	}
	if r.QuoteEntryAmount, err = d.I128(); err != nil {
		return r, err
	}
	if r.SettlePrice, err = d.I64(); err != nil {
		return r, err
	}
	return r, nil
}

// InsuranceFundStakeRecord logs a staker's stake/unstake action against one
// spot market's insurance fund.
type InsuranceFundStakeRecord struct {
	Ts                        int64
	UserAuthority             codec.PublicKey
	Action                    uint8 // 0 Stake, 1 UnstakeRequest, 2 UnstakeCancelRequest, 3 Unstake
	MarketIndex               uint16
	Amount                    uint64
	InsuranceVaultAmountBefore uint64
	IfSharesBefore            codec.Uint128
	UserIfSharesBefore        codec.Uint128
	TotalIfSharesBefore       codec.Uint128
	IfSharesAfter             codec.Uint128
	UserIfSharesAfter         codec.Uint128
	TotalIfSharesAfter        codec.Uint128
}

func (InsuranceFundStakeRecord) EventName() string { return "InsuranceFundStakeRecord" }

func (r InsuranceFundStakeRecord) encode(e *codec.Encoder) {
	e.I64(r.Ts)
	e.PublicKey(r.UserAuthority)
	e.EnumTag(int(r.Action))
	e.U16(r.MarketIndex)
	e.U64(r.Amount)
	e.U64(r.InsuranceVaultAmountBefore)
	e.U128(r.IfSharesBefore)
	e.U128(r.UserIfSharesBefore)
	e.U128(r.TotalIfSharesBefore)
	e.U128(r.IfSharesAfter)
	e.U128(r.UserIfSharesAfter)
	e.U128(r.TotalIfSharesAfter)
}

func decodeInsuranceFundStakeRecord(d *codec.Decoder) (InsuranceFundStakeRecord, error) {
	var r InsuranceFundStakeRecord
	var err error
	if r.Ts, err = d.I64(); err != nil {
		return r, err
	}
	if r.UserAuthority, err = d.PublicKey(); err != nil {
		return r, err
	}
	tag, err := d.EnumTag(4)
	if err != nil {
		return r, err
	}
	r.Action = uint8(tag)
	if r.MarketIndex, err = d.U16(); err != nil {
		return r, err
	}
	if r.Amount, err = d.U64(); err != nil {
		return r, err
	}
	if r.InsuranceVaultAmountBefore, err = d.U64(); err != nil {
		return r, err
	}
	if r.IfSharesBefore, err = d.U128(); err != nil {
		return r, err
	}
	if r.UserIfSharesBefore, err = d.U128(); err != nil {
		return r, err
	}
	if r.TotalIfSharesBefore, err = d.U128(); err != nil {
		return r, err
	}
	if r.IfSharesAfter, err = d.U128(); err != nil {
		return r, err
	}
	if r.UserIfSharesAfter, err = d.U128(); err != nil {
		return r, err
	}
	if r.TotalIfSharesAfter, err = d.U128(); err != nil {
		return r, err
	}
	return r, nil
}

// FundingRateRecord logs one funding-rate update computed for a perp market.
type FundingRateRecord struct {
	Ts                          int64
	MarketIndex                 uint16
	FundingRate                 int64
	FundingRateLong             int64
	FundingRateShort            int64
	CumulativeFundingRateLong   codec.Int128
	CumulativeFundingRateShort  codec.Int128
	OraclePriceTwap             int64
	MarkPriceTwap               uint64
	PeriodRevenue               int64
	BaseAssetAmountWithAmm      int64
	BaseAssetAmountWithUnsettledLp int64
}

func (FundingRateRecord) EventName() string { return "FundingRateRecord" }

func (r FundingRateRecord) encode(e *codec.Encoder) {
	e.I64(r.Ts)
	e.U16(r.MarketIndex)
	e.I64(r.FundingRate)
	e.I64(r.FundingRateLong)
	e.I64(r.FundingRateShort)
	e.I128(r.CumulativeFundingRateLong)
	e.I128(r.CumulativeFundingRateShort)
	e.I64(r.OraclePriceTwap)
	e.U64(r.MarkPriceTwap)
	e.I64(r.PeriodRevenue)
	e.I64(r.BaseAssetAmountWithAmm)
	e.I64(r.BaseAssetAmountWithUnsettledLp)
}

func decodeFundingRateRecord(d *codec.Decoder) (FundingRateRecord, error) {
	var r FundingRateRecord
	var err error
	if r.Ts, err = d.I64(); err != nil {
		return r, err
	}
	if r.MarketIndex, err = d.U16(); err != nil {
		return r, err
	}
	if r.FundingRate, err = d.I64(); err != nil {
		return r, err
	}
	if r.FundingRateLong, err = d.I64(); err != nil {
		return r, err
	}
	if r.FundingRateShort, err = d.I64(); err != nil {
		return r, err
	}
	if r.CumulativeFundingRateLong, err = d.I128(); err != nil {
		return r, err
	}
	if r.CumulativeFundingRateShort, err = d.I128(); err != nil {
		return r, err
	}
	if r.OraclePriceTwap, err = d.I64(); err != nil {
		return r, err
	}
	if r.MarkPriceTwap, err = d.U64(); err != nil {
		return r, err
	}
	if r.PeriodRevenue, err = d.I64(); err != nil {
		return r, err
	}
	if r.BaseAssetAmountWithAmm, err = d.I64(); err != nil {
		return r, err
	}
	if r.BaseAssetAmountWithUnsettledLp, err = d.I64(); err != nil {
		return r, err
	}
	return r, nil
}

// FundingPaymentRecord logs one funding payment settled against a User's
// perp position.
type FundingPaymentRecord struct {
	Ts                        int64
	UserAuthority             codec.PublicKey
	User                      codec.PublicKey
	MarketIndex               uint16
	FundingPayment            int64
	UserLastCumulativeFunding codec.Int128
	Amount                    int64
}

func (FundingPaymentRecord) EventName() string { return "FundingPaymentRecord" }

func (r FundingPaymentRecord) encode(e *codec.Encoder) {
	e.I64(r.Ts)
	e.PublicKey(r.UserAuthority)
	e.PublicKey(r.User)
	e.U16(r.MarketIndex)
	e.I64(r.FundingPayment)
	e.I128(r.UserLastCumulativeFunding)
	e.I64(r.Amount)
}

func decodeFundingPaymentRecord(d *codec.Decoder) (FundingPaymentRecord, error) {
	var r FundingPaymentRecord
	var err error
	if r.Ts, err = d.I64(); err != nil {
		return r, err
	}
	if r.UserAuthority, err = d.PublicKey(); err != nil {
		return r, err
	}
	if r.User, err = d.PublicKey(); err != nil {
		return r, err
	}
	if r.MarketIndex, err = d.U16(); err != nil {
		return r, err
	}
	if r.FundingPayment, err = d.I64(); err != nil {
		return r, err
	}
	if r.UserLastCumulativeFunding, err = d.I128(); err != nil {
		return r, err
	}
	if r.Amount, err = d.I64(); err != nil {
		return r, err
	}
	return r, nil
}
