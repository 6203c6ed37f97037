package idl

import "github.com/drift-labs/drift-go/pkg/codec"

// OracleSource identifies which oracle program and feed format backs a
// market or a PrelaunchOracle. Variant order is part of the wire contract —
// reordering changes every on-chain-compatible encoding.
type OracleSource uint8

const (
	OracleSourcePyth OracleSource = iota
	OracleSourceSwitchboard
	OracleSourceQuoteAsset
	OracleSourcePyth1K
	OracleSourcePyth1M
	OracleSourcePythStableCoin
	OracleSourcePrelaunch
	OracleSourcePythPull
	OracleSourcePyth1KPull
	OracleSourcePyth1MPull
	OracleSourcePythStableCoinPull
	OracleSourcePrelaunchPull
	OracleSourceSwitchboardOnDemand
	OracleSourceSwitchboardOnDemandPull
	oracleSourceVariantCount
)

var oracleSourceNames = [...]string{
	"Pyth", "Switchboard", "QuoteAsset", "Pyth1K", "Pyth1M", "PythStableCoin",
	"Prelaunch", "PythPull", "Pyth1KPull", "Pyth1MPull", "PythStableCoinPull",
	"PrelaunchPull", "SwitchboardOnDemand", "SwitchboardOnDemandPull",
}

func (o OracleSource) String() string {
	if int(o) < len(oracleSourceNames) {
		return oracleSourceNames[o]
	}
	return "Unknown"
}

// DecodeOracleSource decodes a 1-byte OracleSource tag, rejecting any tag at
// or beyond the known variant count (spec.md §8 scenario 3: tag 5 decodes to
// PythStableCoin).
func DecodeOracleSource(d *codec.Decoder) (OracleSource, error) {
	tag, err := d.EnumTag(int(oracleSourceVariantCount))
	if err != nil {
		return 0, err
	}
	return OracleSource(tag), nil
}

// Encode appends the 1-byte OracleSource tag.
func (o OracleSource) Encode(e *codec.Encoder) { e.EnumTag(int(o)) }

// MarketStatus is the lifecycle state of a SpotMarket or PerpMarket.
type MarketStatus uint8

const (
	MarketStatusActive MarketStatus = iota
	MarketStatusFundingPaused
	MarketStatusAmmPaused
	MarketStatusFillPaused
	MarketStatusWithdrawPaused
	MarketStatusReduceOnly
	MarketStatusSettlement
	MarketStatusDelisted
	marketStatusVariantCount
)

func DecodeMarketStatus(d *codec.Decoder) (MarketStatus, error) {
	tag, err := d.EnumTag(int(marketStatusVariantCount))
	if err != nil {
		return 0, err
	}
	return MarketStatus(tag), nil
}

func (m MarketStatus) Encode(e *codec.Encoder) { e.EnumTag(int(m)) }

// ContractType distinguishes perpetual markets from expiring futures.
type ContractType uint8

const (
	ContractTypePerpetual ContractType = iota
	ContractTypeFuture
	ContractTypePrediction
	contractTypeVariantCount
)

func DecodeContractType(d *codec.Decoder) (ContractType, error) {
	tag, err := d.EnumTag(int(contractTypeVariantCount))
	if err != nil {
		return 0, err
	}
	return ContractType(tag), nil
}

func (c ContractType) Encode(e *codec.Encoder) { e.EnumTag(int(c)) }

// ContractTier classifies a perp market's risk tier for margin purposes.
type ContractTier uint8

const (
	ContractTierA ContractTier = iota
	ContractTierB
	ContractTierC
	ContractTierSpeculative
	ContractTierHighlySpeculative
	ContractTierIsolated
	contractTierVariantCount
)

func DecodeContractTier(d *codec.Decoder) (ContractTier, error) {
	tag, err := d.EnumTag(int(contractTierVariantCount))
	if err != nil {
		return 0, err
	}
	return ContractTier(tag), nil
}

func (c ContractTier) Encode(e *codec.Encoder) { e.EnumTag(int(c)) }

// FulfillmentType names the external venue a fulfillment config routes to.
type FulfillmentType uint8

const (
	FulfillmentTypeSerumV3 FulfillmentType = iota
	FulfillmentTypePhoenixV1
	FulfillmentTypeOpenbookV2
	fulfillmentTypeVariantCount
)

func DecodeFulfillmentType(d *codec.Decoder) (FulfillmentType, error) {
	tag, err := d.EnumTag(int(fulfillmentTypeVariantCount))
	if err != nil {
		return 0, err
	}
	return FulfillmentType(tag), nil
}

func (f FulfillmentType) Encode(e *codec.Encoder) { e.EnumTag(int(f)) }

// FulfillmentStatus is the admin enable/disable bit for a fulfillment config,
// modeled as an enum (rather than a bare bool) so additional statuses can be
// appended without a wire-format break.
type FulfillmentStatus uint8

const (
	FulfillmentStatusEnabled FulfillmentStatus = iota
	FulfillmentStatusDisabled
	fulfillmentStatusVariantCount
)

func DecodeFulfillmentStatus(d *codec.Decoder) (FulfillmentStatus, error) {
	tag, err := d.EnumTag(int(fulfillmentStatusVariantCount))
	if err != nil {
		return 0, err
	}
	return FulfillmentStatus(tag), nil
}

func (f FulfillmentStatus) Encode(e *codec.Encoder) { e.EnumTag(int(f)) }

// MarginCalculationModeTag selects which payload variant a
// MarginCalculationMode carries.
type MarginCalculationModeTag uint8

const (
	MarginCalculationModeStandard MarginCalculationModeTag = iota
	MarginCalculationModeLiquidation
	marginCalculationModeVariantCount
)

// MarginCalculationMode is the worked example of §9's "sum types with
// payload variants" design note: a tagged union represented as an explicit
// tag plus the payload subtype selected by that tag. Standard carries no
// payload; Liquidation carries the two fields below.
type MarginCalculationMode struct {
	Tag                         MarginCalculationModeTag
	MarginBuffer                uint32 // Liquidation payload
	TrackMarketMarginRequirement bool   // Liquidation payload
}

// Encode writes the 1-byte tag followed by the Liquidation payload, if
// present; Standard writes only the tag.
func (m MarginCalculationMode) Encode(e *codec.Encoder) {
	e.EnumTag(int(m.Tag))
	if m.Tag == MarginCalculationModeLiquidation {
		e.U32(m.MarginBuffer)
		e.Bool(m.TrackMarketMarginRequirement)
	}
}

// DecodeMarginCalculationMode decodes the tag and, for Liquidation, its
// payload.
func DecodeMarginCalculationMode(d *codec.Decoder) (MarginCalculationMode, error) {
	tag, err := d.EnumTag(int(marginCalculationModeVariantCount))
	if err != nil {
		return MarginCalculationMode{}, err
	}
	m := MarginCalculationMode{Tag: MarginCalculationModeTag(tag)}
	if m.Tag == MarginCalculationModeLiquidation {
		buf, err := d.U32()
		if err != nil {
			return MarginCalculationMode{}, err
		}
		track, err := d.Bool()
		if err != nil {
			return MarginCalculationMode{}, err
		}
		m.MarginBuffer = buf
		m.TrackMarketMarginRequirement = track
	}
	return m, nil
}
