package idl

import "github.com/drift-labs/drift-go/pkg/codec"

// The composite types in this file are embedded by value inside account
// schemas; none carries its own discriminator. Every type exposes Encode and
// a package-level Decode function, mirroring the primitive codec's shape so
// account decode/encode can simply delegate field-by-field, the way the
// teacher's consensus.Tx{Parse,Marshal} pair walks a transaction's nested
// structures.

// FeeStructure bundles the maker/taker fee-tier basis points charged by the
// exchange's fee schedule.
type FeeStructure struct {
	FeeNumerator           uint32
	FeeDenominator         uint32
	MakerRebateNumerator   uint32
	MakerRebateDenominator uint32
	FlatFillerFee          uint64
}

const FeeStructureSize = 4 + 4 + 4 + 4 + 8

func (f FeeStructure) Encode(e *codec.Encoder) {
	e.U32(f.FeeNumerator)
	e.U32(f.FeeDenominator)
	e.U32(f.MakerRebateNumerator)
	e.U32(f.MakerRebateDenominator)
	e.U64(f.FlatFillerFee)
}

func DecodeFeeStructure(d *codec.Decoder) (FeeStructure, error) {
	var f FeeStructure
	var err error
	if f.FeeNumerator, err = d.U32(); err != nil {
		return f, err
	}
	if f.FeeDenominator, err = d.U32(); err != nil {
		return f, err
	}
	if f.MakerRebateNumerator, err = d.U32(); err != nil {
		return f, err
	}
	if f.MakerRebateDenominator, err = d.U32(); err != nil {
		return f, err
	}
	if f.FlatFillerFee, err = d.U64(); err != nil {
		return f, err
	}
	return f, nil
}

// PoolBalance is a scaled-balance accounting record for one side of a spot
// market's vault.
type PoolBalance struct {
	ScaledBalance codec.Uint128
	MarketIndex   uint16
	Padding       []byte // declared width 6
}

const PoolBalanceSize = 16 + 2 + 6

func (p PoolBalance) Encode(e *codec.Encoder) {
	e.U128(p.ScaledBalance)
	e.U16(p.MarketIndex)
	writePadding(e, p.Padding, 6)
}

func DecodePoolBalance(d *codec.Decoder) (PoolBalance, error) {
	var p PoolBalance
	var err error
	if p.ScaledBalance, err = d.U128(); err != nil {
		return p, err
	}
	if p.MarketIndex, err = d.U16(); err != nil {
		return p, err
	}
	if p.Padding, err = d.FixedBytes(6); err != nil {
		return p, err
	}
	return p, nil
}

// HistoricalOracleData tracks a rolling window of oracle price observations
// used to smooth a market's funding calculation.
type HistoricalOracleData struct {
	LastOraclePrice         int64
	LastOracleConf          uint64
	LastOracleDelay         int64
	LastOraclePriceTwap     int64
	LastOraclePriceTwap5Min int64
	LastOraclePriceTwapTs   int64
}

const HistoricalOracleDataSize = 8 * 6

func (h HistoricalOracleData) Encode(e *codec.Encoder) {
	e.I64(h.LastOraclePrice)
	e.U64(h.LastOracleConf)
	e.I64(h.LastOracleDelay)
	e.I64(h.LastOraclePriceTwap)
	e.I64(h.LastOraclePriceTwap5Min)
	e.I64(h.LastOraclePriceTwapTs)
}

func DecodeHistoricalOracleData(d *codec.Decoder) (HistoricalOracleData, error) {
	var h HistoricalOracleData
	var err error
	if h.LastOraclePrice, err = d.I64(); err != nil {
		return h, err
	}
	if h.LastOracleConf, err = d.U64(); err != nil {
		return h, err
	}
	if h.LastOracleDelay, err = d.I64(); err != nil {
		return h, err
	}
	if h.LastOraclePriceTwap, err = d.I64(); err != nil {
		return h, err
	}
	if h.LastOraclePriceTwap5Min, err = d.I64(); err != nil {
		return h, err
	}
	if h.LastOraclePriceTwapTs, err = d.I64(); err != nil {
		return h, err
	}
	return h, nil
}

// HistoricalIndexData is HistoricalOracleData's analogue for the underlying
// index (spot) price rather than the derivatives oracle.
type HistoricalIndexData struct {
	LastIndexBidPrice      uint64
	LastIndexAskPrice      uint64
	LastIndexPriceTwap     uint64
	LastIndexPriceTwap5Min uint64
	LastIndexPriceTwapTs   int64
}

const HistoricalIndexDataSize = 8 * 5

func (h HistoricalIndexData) Encode(e *codec.Encoder) {
	e.U64(h.LastIndexBidPrice)
	e.U64(h.LastIndexAskPrice)
	e.U64(h.LastIndexPriceTwap)
	e.U64(h.LastIndexPriceTwap5Min)
	e.I64(h.LastIndexPriceTwapTs)
}

func DecodeHistoricalIndexData(d *codec.Decoder) (HistoricalIndexData, error) {
	var h HistoricalIndexData
	var err error
	if h.LastIndexBidPrice, err = d.U64(); err != nil {
		return h, err
	}
	if h.LastIndexAskPrice, err = d.U64(); err != nil {
		return h, err
	}
	if h.LastIndexPriceTwap, err = d.U64(); err != nil {
		return h, err
	}
	if h.LastIndexPriceTwap5Min, err = d.U64(); err != nil {
		return h, err
	}
	if h.LastIndexPriceTwapTs, err = d.I64(); err != nil {
		return h, err
	}
	return h, nil
}

// Amm is a perp market's automated-market-maker substructure. Only the
// byte-layout-relevant fields are modeled; swap/funding math is an
// out-of-scope collaborator (spec.md §1).
type Amm struct {
	BaseAssetReserve            codec.Uint128
	QuoteAssetReserve           codec.Uint128
	SqrtK                       codec.Uint128
	PegMultiplier               codec.Uint128
	HistoricalOracleData        HistoricalOracleData
	HistoricalIndexData         HistoricalIndexData
	LastFundingRate             int64
	LastFundingRateTs           int64
	FundingPeriod               int64
	CumulativeFundingRateLong   codec.Int128
	CumulativeFundingRateShort  codec.Int128
	OracleSource                OracleSource
	Padding                     []byte // declared width 7
}

const AmmSize = 16*4 + HistoricalOracleDataSize + HistoricalIndexDataSize + 8*3 + 16*2 + 1 + 7

func (a Amm) Encode(e *codec.Encoder) {
	e.U128(a.BaseAssetReserve)
	e.U128(a.QuoteAssetReserve)
	e.U128(a.SqrtK)
	e.U128(a.PegMultiplier)
	a.HistoricalOracleData.Encode(e)
	a.HistoricalIndexData.Encode(e)
	e.I64(a.LastFundingRate)
	e.I64(a.LastFundingRateTs)
	e.I64(a.FundingPeriod)
	e.I128(a.CumulativeFundingRateLong)
	e.I128(a.CumulativeFundingRateShort)
	a.OracleSource.Encode(e)
	writePadding(e, a.Padding, 7)
}

func DecodeAmm(d *codec.Decoder) (Amm, error) {
	var a Amm
	var err error
	if a.BaseAssetReserve, err = d.U128(); err != nil {
		return a, err
	}
	if a.QuoteAssetReserve, err = d.U128(); err != nil {
		return a, err
	}
	if a.SqrtK, err = d.U128(); err != nil {
		return a, err
	}
	if a.PegMultiplier, err = d.U128(); err != nil {
		return a, err
	}
	if a.HistoricalOracleData, err = DecodeHistoricalOracleData(d); err != nil {
		return a, err
	}
	if a.HistoricalIndexData, err = DecodeHistoricalIndexData(d); err != nil {
		return a, err
	}
	if a.LastFundingRate, err = d.I64(); err != nil {
		return a, err
	}
	if a.LastFundingRateTs, err = d.I64(); err != nil {
		return a, err
	}
	if a.FundingPeriod, err = d.I64(); err != nil {
		return a, err
	}
	if a.CumulativeFundingRateLong, err = d.I128(); err != nil {
		return a, err
	}
	if a.CumulativeFundingRateShort, err = d.I128(); err != nil {
		return a, err
	}
	if a.OracleSource, err = DecodeOracleSource(d); err != nil {
		return a, err
	}
	if a.Padding, err = d.FixedBytes(7); err != nil {
		return a, err
	}
	return a, nil
}

// SpotPosition is one of a User's up to 8 spot-collateral slots.
type SpotPosition struct {
	ScaledBalance      codec.Uint128
	OpenBids           int64
	OpenAsks           int64
	CumulativeDeposits int64
	MarketIndex        uint16
	BalanceType        uint8 // 0 = Deposit, 1 = Borrow
	OpenOrders         uint8
	Padding            []byte // declared width 4
}

const SpotPositionSize = 16 + 8 + 8 + 8 + 2 + 1 + 1 + 4

func (p SpotPosition) Encode(e *codec.Encoder) {
	e.U128(p.ScaledBalance)
	e.I64(p.OpenBids)
	e.I64(p.OpenAsks)
	e.I64(p.CumulativeDeposits)
	e.U16(p.MarketIndex)
	e.U8(p.BalanceType)
	e.U8(p.OpenOrders)
	writePadding(e, p.Padding, 4)
}

func DecodeSpotPosition(d *codec.Decoder) (SpotPosition, error) {
	var p SpotPosition
	var err error
	if p.ScaledBalance, err = d.U128(); err != nil {
		return p, err
	}
	if p.OpenBids, err = d.I64(); err != nil {
		return p, err
	}
	if p.OpenAsks, err = d.I64(); err != nil {
		return p, err
	}
	if p.CumulativeDeposits, err = d.I64(); err != nil {
		return p, err
	}
	if p.MarketIndex, err = d.U16(); err != nil {
		return p, err
	}
	if p.BalanceType, err = d.U8(); err != nil {
		return p, err
	}
	if p.OpenOrders, err = d.U8(); err != nil {
		return p, err
	}
	if p.Padding, err = d.FixedBytes(4); err != nil {
		return p, err
	}
	return p, nil
}

// PerpPosition is one of a User's up to 8 perpetual-futures exposure slots.
type PerpPosition struct {
	BaseAssetAmount           int64
	QuoteAssetAmount          int64
	QuoteEntryAmount          int64
	QuoteBreakEvenAmount      int64
	LastCumulativeFundingRate codec.Int128
	OpenBids                  int64
	OpenAsks                  int64
	SettledPnl                int64
	MarketIndex               uint16
	OpenOrders                uint8
	PerLpBase                 int8
	Padding                   []byte // declared width 4
}

const PerpPositionSize = 8*4 + 16 + 8*3 + 2 + 1 + 1 + 4

func (p PerpPosition) Encode(e *codec.Encoder) {
	e.I64(p.BaseAssetAmount)
	e.I64(p.QuoteAssetAmount)
	e.I64(p.QuoteEntryAmount)
	e.I64(p.QuoteBreakEvenAmount)
	e.I128(p.LastCumulativeFundingRate)
	e.I64(p.OpenBids)
	e.I64(p.OpenAsks)
	e.I64(p.SettledPnl)
	e.U16(p.MarketIndex)
	e.U8(p.OpenOrders)
	e.I8(p.PerLpBase)
	writePadding(e, p.Padding, 4)
}

func DecodePerpPosition(d *codec.Decoder) (PerpPosition, error) {
	var p PerpPosition
	var err error
	if p.BaseAssetAmount, err = d.I64(); err != nil {
		return p, err
	}
	if p.QuoteAssetAmount, err = d.I64(); err != nil {
		return p, err
	}
	if p.QuoteEntryAmount, err = d.I64(); err != nil {
		return p, err
	}
	if p.QuoteBreakEvenAmount, err = d.I64(); err != nil {
		return p, err
	}
	if p.LastCumulativeFundingRate, err = d.I128(); err != nil {
		return p, err
	}
	if p.OpenBids, err = d.I64(); err != nil {
		return p, err
	}
	if p.OpenAsks, err = d.I64(); err != nil {
		return p, err
	}
	if p.SettledPnl, err = d.I64(); err != nil {
		return p, err
	}
	if p.MarketIndex, err = d.U16(); err != nil {
		return p, err
	}
	if p.OpenOrders, err = d.U8(); err != nil {
		return p, err
	}
	if p.PerLpBase, err = d.I8(); err != nil {
		return p, err
	}
	if p.Padding, err = d.FixedBytes(4); err != nil {
		return p, err
	}
	return p, nil
}

// Order is one of a User's up to 32 resting order slots.
type Order struct {
	Price                  uint64
	BaseAssetAmount        uint64
	BaseAssetAmountFilled  uint64
	QuoteAssetAmountFilled uint64
	TriggerPrice           uint64
	AuctionStartPrice      int64
	AuctionEndPrice        int64
	MaxTs                  int64
	OrderID                uint32
	MarketIndex            uint16
	Status                 uint8 // 0 Init, 1 Open, 2 Filled, 3 Canceled
	OrderType              uint8 // 0 Market, 1 Limit, 2 TriggerMarket, 3 TriggerLimit, 4 Oracle
	MarketType             uint8 // 0 Spot, 1 Perp
	UserOrderID            uint8
	Direction              uint8 // 0 Long, 1 Short
	ReduceOnly             bool
	PostOnly               bool
	ImmediateOrCancel      bool
	TriggerCondition       uint8 // 0 Above, 1 Below
	AuctionDuration        uint8
}

const OrderSize = 8*8 + 4 + 2 + 10

func (o Order) Encode(e *codec.Encoder) {
	e.U64(o.Price)
	e.U64(o.BaseAssetAmount)
	e.U64(o.BaseAssetAmountFilled)
	e.U64(o.QuoteAssetAmountFilled)
	e.U64(o.TriggerPrice)
	e.I64(o.AuctionStartPrice)
	e.I64(o.AuctionEndPrice)
	e.I64(o.MaxTs)
	e.U32(o.OrderID)
	e.U16(o.MarketIndex)
	e.U8(o.Status)
	e.U8(o.OrderType)
	e.U8(o.MarketType)
	e.U8(o.UserOrderID)
	e.U8(o.Direction)
	e.Bool(o.ReduceOnly)
	e.Bool(o.PostOnly)
	e.Bool(o.ImmediateOrCancel)
	e.U8(o.TriggerCondition)
	e.U8(o.AuctionDuration)
}

func DecodeOrder(d *codec.Decoder) (Order, error) {
	var o Order
	var err error
	if o.Price, err = d.U64(); err != nil {
		return o, err
	}
	if o.BaseAssetAmount, err = d.U64(); err != nil {
		return o, err
	}
	if o.BaseAssetAmountFilled, err = d.U64(); err != nil {
		return o, err
	}
	if o.QuoteAssetAmountFilled, err = d.U64(); err != nil {
		return o, err
	}
	if o.TriggerPrice, err = d.U64(); err != nil {
		return o, err
	}
	if o.AuctionStartPrice, err = d.I64(); err != nil {
		return o, err
	}
	if o.AuctionEndPrice, err = d.I64(); err != nil {
		return o, err
	}
	if o.MaxTs, err = d.I64(); err != nil {
		return o, err
	}
	if o.OrderID, err = d.U32(); err != nil {
		return o, err
	}
	if o.MarketIndex, err = d.U16(); err != nil {
		return o, err
	}
	if o.Status, err = d.U8(); err != nil {
		return o, err
	}
	if o.OrderType, err = d.U8(); err != nil {
		return o, err
	}
	if o.MarketType, err = d.U8(); err != nil {
		return o, err
	}
	if o.UserOrderID, err = d.U8(); err != nil {
		return o, err
	}
	if o.Direction, err = d.U8(); err != nil {
		return o, err
	}
	if o.ReduceOnly, err = d.Bool(); err != nil {
		return o, err
	}
	if o.PostOnly, err = d.Bool(); err != nil {
		return o, err
	}
	if o.ImmediateOrCancel, err = d.Bool(); err != nil {
		return o, err
	}
	if o.TriggerCondition, err = d.U8(); err != nil {
		return o, err
	}
	if o.AuctionDuration, err = d.U8(); err != nil {
		return o, err
	}
	return o, nil
}

// writePadding writes raw (preserved-on-read-modify-write) padding bytes if
// present, otherwise n zero bytes — the documented default for a fresh
// encode of a zero-copy account.
func writePadding(e *codec.Encoder, raw []byte, n int) {
	if raw != nil {
		e.FixedBytes(raw)
		return
	}
	e.Padding(n)
}
