package instructions

import "github.com/drift-labs/drift-go/pkg/codec"

// OrderType is the order-args enum consumed by PlacePerpOrder/PlaceSpotOrder.
type OrderType uint8

const (
	OrderTypeMarket OrderType = iota
	OrderTypeLimit
	OrderTypeTriggerMarket
	OrderTypeTriggerLimit
	OrderTypeOracle
	orderTypeVariantCount
)

// MarketType selects whether an order/cancel targets the spot or perp book.
type MarketType uint8

const (
	MarketTypeSpot MarketType = iota
	MarketTypePerp
	marketTypeVariantCount
)

// PositionDirection is Long/Short.
type PositionDirection uint8

const (
	PositionDirectionLong PositionDirection = iota
	PositionDirectionShort
	positionDirectionVariantCount
)

// OrderParams is the shared order-args payload for PlacePerpOrder and
// PlaceSpotOrder, exercising every primitive shape §3.1 names: enums, fixed
// ints of several widths, bool, and Option<T> (here as pointers, the idiomatic
// Go rendering of borsh's tag-then-payload Option).
type OrderParams struct {
	OrderType         OrderType
	MarketType        MarketType
	Direction         PositionDirection
	UserOrderID       uint8
	BaseAssetAmount   uint64
	Price             uint64
	MarketIndex       uint16
	ReduceOnly        bool
	PostOnly          bool
	ImmediateOrCancel bool
	TriggerPrice      *uint64
	TriggerCondition  uint8
	OraclePriceOffset *int32
	AuctionDuration   *uint8
	MaxTs             *int64
}

func encodeOrderParams(p OrderParams, e *codec.Encoder) {
	e.EnumTag(int(p.OrderType))
	e.EnumTag(int(p.MarketType))
	e.EnumTag(int(p.Direction))
	e.U8(p.UserOrderID)
	e.U64(p.BaseAssetAmount)
	e.U64(p.Price)
	e.U16(p.MarketIndex)
	e.Bool(p.ReduceOnly)
	e.Bool(p.PostOnly)
	e.Bool(p.ImmediateOrCancel)
	e.OptionTag(p.TriggerPrice != nil)
	if p.TriggerPrice != nil {
		e.U64(*p.TriggerPrice)
	}
	e.U8(p.TriggerCondition)
	e.OptionTag(p.OraclePriceOffset != nil)
	if p.OraclePriceOffset != nil {
		e.I32(*p.OraclePriceOffset)
	}
	e.OptionTag(p.AuctionDuration != nil)
	if p.AuctionDuration != nil {
		e.U8(*p.AuctionDuration)
	}
	e.OptionTag(p.MaxTs != nil)
	if p.MaxTs != nil {
		e.I64(*p.MaxTs)
	}
}

// Args structs below, one per instruction name in table.go. Field names
// mirror the on-chain IDL's snake_case arguments in PascalCase Go form.

type InitializeUserArgs struct {
	SubAccountID uint16
	Name         [32]byte
}

type UpdateUserNameArgs struct {
	SubAccountID uint16
	Name         [32]byte
}

type DeleteUserArgs struct {
	SubAccountID uint16
}

type DepositArgs struct {
	MarketIndex uint16
	Amount      uint64
	ReduceOnly  bool
}

type WithdrawArgs struct {
	MarketIndex uint16
	Amount      uint64
	ReduceOnly  bool
}

type TransferDepositArgs struct {
	MarketIndex uint16
	Amount      uint64
}

type PlacePerpOrderArgs struct {
	Params OrderParams
}

type PlaceSpotOrderArgs struct {
	Params OrderParams
}

type CancelOrderArgs struct {
	OrderID *uint32
}

type CancelOrderByUserOrderIDArgs struct {
	UserOrderID uint8
}

type CancelOrdersArgs struct {
	MarketType  *MarketType
	MarketIndex *uint16
	Direction   *PositionDirection
}

type FillPerpOrderArgs struct {
	OrderID *uint32
}

type FillSpotOrderArgs struct {
	OrderID         *uint32
	FulfillmentType *uint8
}

type SettlePnlArgs struct {
	MarketIndex uint16
}

type BeginSwapArgs struct {
	InMarketIndex  uint16
	OutMarketIndex uint16
}

type EndSwapArgs struct {
	InMarketIndex  uint16
	OutMarketIndex uint16
	LimitPrice     *uint64
	ReduceOnly     *bool
}

type LiquidatePerpArgs struct {
	MarketIndex                  uint16
	LiquidatorMaxBaseAssetAmount uint64
	LimitPrice                   *uint64
}

type LiquidateSpotArgs struct {
	AssetMarketIndex               uint16
	LiabilityMarketIndex           uint16
	LiquidatorMaxLiabilityTransfer codec.Uint128
	LimitPrice                     *uint64
}

type LiquidateBorrowForPerpPnlArgs struct {
	PerpMarketIndex                uint16
	SpotMarketIndex                uint16
	LiquidatorMaxLiabilityTransfer codec.Uint128
}

type ResolvePerpPnlDeficitArgs struct {
	SpotMarketIndex uint16
	PerpMarketIndex uint16
}

type InitializeInsuranceFundStakeArgs struct {
	MarketIndex uint16
}

type AddInsuranceFundStakeArgs struct {
	MarketIndex uint16
	Amount      uint64
}

type RemoveInsuranceFundStakeArgs struct {
	MarketIndex uint16
}

type InitializeStateArgs struct{}

type InitializeSpotMarketArgs struct {
	MarketIndex        uint16
	OptimalUtilization uint32
	OptimalBorrowRate  uint32
	MaxBorrowRate      uint32
	OracleSource       uint8 // idl.OracleSource tag
	Name               [32]byte
}

type InitializePerpMarketArgs struct {
	MarketIndex       uint16
	AmmBaseAssetReserve codec.Uint128
	AmmQuoteAssetReserve codec.Uint128
	AmmPeriodicity    int64
	AmmPegMultiplier  codec.Uint128
	OracleSource      uint8 // idl.OracleSource tag
	ContractTier      uint8 // idl.ContractTier tag
	Name              [32]byte
}

type InitializePrelaunchOracleArgs struct {
	PerpMarketIndex uint16
	Price           codec.Int128
}

type PostPythPullOracleUpdateAtomicArgs struct {
	VaaData []byte // opaque Vec<u8>
}

type OpenbookV2FulfillmentConfigStatusArgs struct {
	MarketIndex uint16
	Status      uint8 // idl.FulfillmentStatus tag
}

type PhoenixFulfillmentConfigStatusArgs struct {
	MarketIndex uint16
	Status      uint8 // idl.FulfillmentStatus tag
}

type UpdatePerpMarketExpiryArgs struct {
	MarketIndex uint16
	ExpiryTs    int64
}

// InitializeArgs is the legacy bootstrap instruction's (empty) args payload —
// see the Initialize disambiguation note in table.go.
type InitializeArgs struct{}
