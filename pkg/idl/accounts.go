package idl

import "github.com/drift-labs/drift-go/pkg/codec"

// State is the singleton exchange configuration account, created once at
// genesis and thereafter mutated only by admin instructions.
type State struct {
	Admin                        codec.PublicKey
	WhitelistMint                codec.PublicKey
	DiscountMint                 codec.PublicKey
	SignerPubkey                 codec.PublicKey
	SrmVault                     codec.PublicKey
	Fee                          FeeStructure
	OracleGuardRailsPriceDivMax  uint64
	OracleGuardRailsConfidence   uint64
	NumberOfAuthorities          uint64
	NumberOfSubAccounts          uint64
	NumberOfMarkets              uint16
	NumberOfSpotMarkets          uint16
	SignerNonce                  uint8
	ExchangeStatus               uint8
	LiquidationMarginBufferRatio uint32
	Padding                      []byte // declared width 6
}

const StateSize = 32*5 + FeeStructureSize + 8*4 + 2*2 + 1*2 + 4 + 6

func (s State) Encode(e *codec.Encoder) {
	e.PublicKey(s.Admin)
	e.PublicKey(s.WhitelistMint)
	e.PublicKey(s.DiscountMint)
	e.PublicKey(s.SignerPubkey)
	e.PublicKey(s.SrmVault)
	s.Fee.Encode(e)
	e.U64(s.OracleGuardRailsPriceDivMax)
	e.U64(s.OracleGuardRailsConfidence)
	e.U64(s.NumberOfAuthorities)
	e.U64(s.NumberOfSubAccounts)
	e.U16(s.NumberOfMarkets)
	e.U16(s.NumberOfSpotMarkets)
	e.U8(s.SignerNonce)
	e.U8(s.ExchangeStatus)
	e.U32(s.LiquidationMarginBufferRatio)
	writePadding(e, s.Padding, 6)
}

func decodeStateBody(d *codec.Decoder) (State, error) {
	var s State
	var err error
	if s.Admin, err = d.PublicKey(); err != nil {
		return s, err
	}
	if s.WhitelistMint, err = d.PublicKey(); err != nil {
		return s, err
	}
	if s.DiscountMint, err = d.PublicKey(); err != nil {
		return s, err
	}
	if s.SignerPubkey, err = d.PublicKey(); err != nil {
		return s, err
	}
	if s.SrmVault, err = d.PublicKey(); err != nil {
		return s, err
	}
	if s.Fee, err = DecodeFeeStructure(d); err != nil {
		return s, err
	}
	if s.OracleGuardRailsPriceDivMax, err = d.U64(); err != nil {
		return s, err
	}
	if s.OracleGuardRailsConfidence, err = d.U64(); err != nil {
		return s, err
	}
	if s.NumberOfAuthorities, err = d.U64(); err != nil {
		return s, err
	}
	if s.NumberOfSubAccounts, err = d.U64(); err != nil {
		return s, err
	}
	if s.NumberOfMarkets, err = d.U16(); err != nil {
		return s, err
	}
	if s.NumberOfSpotMarkets, err = d.U16(); err != nil {
		return s, err
	}
	if s.SignerNonce, err = d.U8(); err != nil {
		return s, err
	}
	if s.ExchangeStatus, err = d.U8(); err != nil {
		return s, err
	}
	if s.LiquidationMarginBufferRatio, err = d.U32(); err != nil {
		return s, err
	}
	if s.Padding, err = d.FixedBytes(6); err != nil {
		return s, err
	}
	return s, nil
}

// SpotMarket is a per-asset lending/collateral market.
type SpotMarket struct {
	Oracle                     codec.PublicKey
	Mint                       codec.PublicKey
	Vault                      codec.PublicKey
	Name                       [32]byte
	OracleSource               OracleSource
	Status                     MarketStatus
	Padding0                   []byte // declared width 6
	CumulativeDepositInterest  codec.Uint128
	CumulativeBorrowInterest   codec.Uint128
	DepositBalance             PoolBalance
	OptimalUtilization         uint32
	OptimalBorrowRate          uint32
	MaxBorrowRate              uint32
	InitialAssetWeight         uint32
	MaintenanceAssetWeight     uint32
	InitialLiabilityWeight     uint32
	MaintenanceLiabilityWeight uint32
	MarketIndex                uint16
	DecimalsExponent           uint8
	Padding                    []byte // declared width 1
}

const SpotMarketSize = 32*3 + 32 + 1 + 1 + 6 + 16*2 + PoolBalanceSize + 4*7 + 2 + 1 + 1

func (s SpotMarket) Encode(e *codec.Encoder) {
	e.PublicKey(s.Oracle)
	e.PublicKey(s.Mint)
	e.PublicKey(s.Vault)
	e.FixedBytes(s.Name[:])
	s.OracleSource.Encode(e)
	s.Status.Encode(e)
	writePadding(e, s.Padding0, 6)
	e.U128(s.CumulativeDepositInterest)
	e.U128(s.CumulativeBorrowInterest)
	s.DepositBalance.Encode(e)
	e.U32(s.OptimalUtilization)
	e.U32(s.OptimalBorrowRate)
	e.U32(s.MaxBorrowRate)
	e.U32(s.InitialAssetWeight)
	e.U32(s.MaintenanceAssetWeight)
	e.U32(s.InitialLiabilityWeight)
	e.U32(s.MaintenanceLiabilityWeight)
	e.U16(s.MarketIndex)
	e.U8(s.DecimalsExponent)
	writePadding(e, s.Padding, 1)
}

func decodeSpotMarketBody(d *codec.Decoder) (SpotMarket, error) {
	var s SpotMarket
	var err error
	if s.Oracle, err = d.PublicKey(); err != nil {
		return s, err
	}
	if s.Mint, err = d.PublicKey(); err != nil {
		return s, err
	}
	if s.Vault, err = d.PublicKey(); err != nil {
		return s, err
	}
	name, err := d.FixedBytes(32)
	if err != nil {
		return s, err
	}
	copy(s.Name[:], name)
	if s.OracleSource, err = DecodeOracleSource(d); err != nil {
		return s, err
	}
	if s.Status, err = DecodeMarketStatus(d); err != nil {
		return s, err
	}
	if s.Padding0, err = d.FixedBytes(6); err != nil {
		return s, err
	}
	if s.CumulativeDepositInterest, err = d.U128(); err != nil {
		return s, err
	}
	if s.CumulativeBorrowInterest, err = d.U128(); err != nil {
		return s, err
	}
	if s.DepositBalance, err = DecodePoolBalance(d); err != nil {
		return s, err
	}
	if s.OptimalUtilization, err = d.U32(); err != nil {
		return s, err
	}
	if s.OptimalBorrowRate, err = d.U32(); err != nil {
		return s, err
	}
	if s.MaxBorrowRate, err = d.U32(); err != nil {
		return s, err
	}
	if s.InitialAssetWeight, err = d.U32(); err != nil {
		return s, err
	}
	if s.MaintenanceAssetWeight, err = d.U32(); err != nil {
		return s, err
	}
	if s.InitialLiabilityWeight, err = d.U32(); err != nil {
		return s, err
	}
	if s.MaintenanceLiabilityWeight, err = d.U32(); err != nil {
		return s, err
	}
	if s.MarketIndex, err = d.U16(); err != nil {
		return s, err
	}
	if s.DecimalsExponent, err = d.U8(); err != nil {
		return s, err
	}
	if s.Padding, err = d.FixedBytes(1); err != nil {
		return s, err
	}
	return s, nil
}

// PerpMarket is a per-asset perpetual-futures market including its AMM.
type PerpMarket struct {
	Amm                     Amm
	Oracle                  codec.PublicKey
	Name                    [32]byte
	ContractType            ContractType
	ContractTier            ContractTier
	Status                  MarketStatus
	MarketIndex             uint16
	NumberOfUsers           uint32
	ImfFactor               uint32
	UnrealizedPnlImfFactor  uint32
	LiquidatorFee           uint32
	IfLiquidationFee        uint32
	ExpiryTs                int64
	Padding                 []byte // declared width 7
}

const PerpMarketSize = AmmSize + 32 + 32 + 1 + 1 + 1 + 2 + 4*5 + 8 + 7

func (p PerpMarket) Encode(e *codec.Encoder) {
	p.Amm.Encode(e)
	e.PublicKey(p.Oracle)
	e.FixedBytes(p.Name[:])
	p.ContractType.Encode(e)
	p.ContractTier.Encode(e)
	p.Status.Encode(e)
	e.U16(p.MarketIndex)
	e.U32(p.NumberOfUsers)
	e.U32(p.ImfFactor)
	e.U32(p.UnrealizedPnlImfFactor)
	e.U32(p.LiquidatorFee)
	e.U32(p.IfLiquidationFee)
	e.I64(p.ExpiryTs)
	writePadding(e, p.Padding, 7)
}

func decodePerpMarketBody(d *codec.Decoder) (PerpMarket, error) {
	var p PerpMarket
	var err error
	if p.Amm, err = DecodeAmm(d); err != nil {
		return p, err
	}
	if p.Oracle, err = d.PublicKey(); err != nil {
		return p, err
	}
	name, err := d.FixedBytes(32)
	if err != nil {
		return p, err
	}
	copy(p.Name[:], name)
	if p.ContractType, err = DecodeContractType(d); err != nil {
		return p, err
	}
	if p.ContractTier, err = DecodeContractTier(d); err != nil {
		return p, err
	}
	if p.Status, err = DecodeMarketStatus(d); err != nil {
		return p, err
	}
	if p.MarketIndex, err = d.U16(); err != nil {
		return p, err
	}
	if p.NumberOfUsers, err = d.U32(); err != nil {
		return p, err
	}
	if p.ImfFactor, err = d.U32(); err != nil {
		return p, err
	}
	if p.UnrealizedPnlImfFactor, err = d.U32(); err != nil {
		return p, err
	}
	if p.LiquidatorFee, err = d.U32(); err != nil {
		return p, err
	}
	if p.IfLiquidationFee, err = d.U32(); err != nil {
		return p, err
	}
	if p.ExpiryTs, err = d.I64(); err != nil {
		return p, err
	}
	if p.Padding, err = d.FixedBytes(7); err != nil {
		return p, err
	}
	return p, nil
}

// User is a sub-account holding up to 8 spot positions, 8 perp positions,
// and 32 orders.
type User struct {
	Authority              codec.PublicKey
	Delegate               codec.PublicKey
	Name                   [32]byte
	SpotPositions          [8]SpotPosition
	PerpPositions          [8]PerpPosition
	Orders                 [32]Order
	LastAddPerpLpSharesTs  int64
	TotalDeposits          uint64
	TotalWithdraws         uint64
	TotalSocialLoss        uint64
	SubAccountID           uint16
	Status                 uint8 // bitflag: bit0 BeingLiquidated, bit1 Bankrupt
	IsMarginTradingEnabled bool
	Padding                []byte // declared width 4
}

const UserSize = 32*2 + 32 + SpotPositionSize*8 + PerpPositionSize*8 + OrderSize*32 + 8*4 + 2 + 1 + 1 + 4

func (u User) Encode(e *codec.Encoder) {
	e.PublicKey(u.Authority)
	e.PublicKey(u.Delegate)
	e.FixedBytes(u.Name[:])
	for i := range u.SpotPositions {
		u.SpotPositions[i].Encode(e)
	}
	for i := range u.PerpPositions {
		u.PerpPositions[i].Encode(e)
	}
	for i := range u.Orders {
		u.Orders[i].Encode(e)
	}
	e.I64(u.LastAddPerpLpSharesTs)
	e.U64(u.TotalDeposits)
	e.U64(u.TotalWithdraws)
	e.U64(u.TotalSocialLoss)
	e.U16(u.SubAccountID)
	e.U8(u.Status)
	e.Bool(u.IsMarginTradingEnabled)
	writePadding(e, u.Padding, 4)
}

func decodeUserBody(d *codec.Decoder) (User, error) {
	var u User
	var err error
	if u.Authority, err = d.PublicKey(); err != nil {
		return u, err
	}
	if u.Delegate, err = d.PublicKey(); err != nil {
		return u, err
	}
	name, err := d.FixedBytes(32)
	if err != nil {
		return u, err
	}
	copy(u.Name[:], name)
	for i := range u.SpotPositions {
		if u.SpotPositions[i], err = DecodeSpotPosition(d); err != nil {
			return u, err
		}
	}
	for i := range u.PerpPositions {
		if u.PerpPositions[i], err = DecodePerpPosition(d); err != nil {
			return u, err
		}
	}
	for i := range u.Orders {
		if u.Orders[i], err = DecodeOrder(d); err != nil {
			return u, err
		}
	}
	if u.LastAddPerpLpSharesTs, err = d.I64(); err != nil {
		return u, err
	}
	if u.TotalDeposits, err = d.U64(); err != nil {
		return u, err
	}
	if u.TotalWithdraws, err = d.U64(); err != nil {
		return u, err
	}
	if u.TotalSocialLoss, err = d.U64(); err != nil {
		return u, err
	}
	if u.SubAccountID, err = d.U16(); err != nil {
		return u, err
	}
	if u.Status, err = d.U8(); err != nil {
		return u, err
	}
	if u.IsMarginTradingEnabled, err = d.Bool(); err != nil {
		return u, err
	}
	if u.Padding, err = d.FixedBytes(4); err != nil {
		return u, err
	}
	return u, nil
}

// UserStats is a per-authority rollup independent of any one sub-account.
type UserStats struct {
	Authority                codec.PublicKey
	Referrer                 codec.PublicKey
	TakerVolume30D           uint64
	MakerVolume30D           uint64
	IfStakedQuoteAssetAmount codec.Uint128
	FuelTaker                uint32
	FuelMaker                uint32
	FuelDeposit              uint32
	NumberOfSubAccounts      uint16
	IsReferred               bool
	Padding                  []byte // declared width 1
}

const UserStatsSize = 32*2 + 8*2 + 16 + 4*3 + 2 + 1 + 1

func (u UserStats) Encode(e *codec.Encoder) {
	e.PublicKey(u.Authority)
	e.PublicKey(u.Referrer)
	e.U64(u.TakerVolume30D)
	e.U64(u.MakerVolume30D)
	e.U128(u.IfStakedQuoteAssetAmount)
	e.U32(u.FuelTaker)
	e.U32(u.FuelMaker)
	e.U32(u.FuelDeposit)
	e.U16(u.NumberOfSubAccounts)
	e.Bool(u.IsReferred)
	writePadding(e, u.Padding, 1)
}

func decodeUserStatsBody(d *codec.Decoder) (UserStats, error) {
	var u UserStats
	var err error
	if u.Authority, err = d.PublicKey(); err != nil {
		return u, err
	}
	if u.Referrer, err = d.PublicKey(); err != nil {
		return u, err
	}
	if u.TakerVolume30D, err = d.U64(); err != nil {
		return u, err
	}
	if u.MakerVolume30D, err = d.U64(); err != nil {
		return u, err
	}
	if u.IfStakedQuoteAssetAmount, err = d.U128(); err != nil {
		return u, err
	}
	if u.FuelTaker, err = d.U32(); err != nil {
		return u, err
	}
	if u.FuelMaker, err = d.U32(); err != nil {
		return u, err
	}
	if u.FuelDeposit, err = d.U32(); err != nil {
		return u, err
	}
	if u.NumberOfSubAccounts, err = d.U16(); err != nil {
		return u, err
	}
	if u.IsReferred, err = d.Bool(); err != nil {
		return u, err
	}
	if u.Padding, err = d.FixedBytes(1); err != nil {
		return u, err
	}
	return u, nil
}

// InsuranceFundStake is a staker's share of one spot market's insurance fund.
type InsuranceFundStake struct {
	Authority                 codec.PublicKey
	MarketIndex               uint16
	Padding0                  []byte // declared width 6
	IfShares                  codec.Uint128
	LastWithdrawRequestShares codec.Uint128
	LastWithdrawRequestValue  uint64
	LastWithdrawRequestTs     int64
	CostBasis                 int64
	Padding                   []byte // declared width 8
}

const InsuranceFundStakeSize = 32 + 2 + 6 + 16*2 + 8 + 8 + 8 + 8

func (s InsuranceFundStake) Encode(e *codec.Encoder) {
	e.PublicKey(s.Authority)
	e.U16(s.MarketIndex)
	writePadding(e, s.Padding0, 6)
	e.U128(s.IfShares)
	e.U128(s.LastWithdrawRequestShares)
	e.U64(s.LastWithdrawRequestValue)
	e.I64(s.LastWithdrawRequestTs)
	e.I64(s.CostBasis)
	writePadding(e, s.Padding, 8)
}

func decodeInsuranceFundStakeBody(d *codec.Decoder) (InsuranceFundStake, error) {
	var s InsuranceFundStake
	var err error
	if s.Authority, err = d.PublicKey(); err != nil {
		return s, err
	}
	if s.MarketIndex, err = d.U16(); err != nil {
		return s, err
	}
	if s.Padding0, err = d.FixedBytes(6); err != nil {
		return s, err
	}
	if s.IfShares, err = d.U128(); err != nil {
		return s, err
	}
	if s.LastWithdrawRequestShares, err = d.U128(); err != nil {
		return s, err
	}
	if s.LastWithdrawRequestValue, err = d.U64(); err != nil {
		return s, err
	}
	if s.LastWithdrawRequestTs, err = d.I64(); err != nil {
		return s, err
	}
	if s.CostBasis, err = d.I64(); err != nil {
		return s, err
	}
	if s.Padding, err = d.FixedBytes(8); err != nil {
		return s, err
	}
	return s, nil
}

// PrelaunchOracle is an admin-set synthetic oracle for not-yet-live markets.
type PrelaunchOracle struct {
	PerpMarketIndex uint16
	Padding0        []byte // declared width 6
	Price           codec.Int128
	MaxPrice        codec.Int128
	Confidence      codec.Uint128
	LastUpdateSlot  uint64
	AmmLastUpdateSlot uint64
	Padding         []byte // declared width 8
}

const PrelaunchOracleSize = 2 + 6 + 16*3 + 8 + 8 + 8

func (p PrelaunchOracle) Encode(e *codec.Encoder) {
	e.U16(p.PerpMarketIndex)
	writePadding(e, p.Padding0, 6)
	e.I128(p.Price)
	e.I128(p.MaxPrice)
	e.U128(p.Confidence)
	e.U64(p.LastUpdateSlot)
	e.U64(p.AmmLastUpdateSlot)
	writePadding(e, p.Padding, 8)
}

func decodePrelaunchOracleBody(d *codec.Decoder) (PrelaunchOracle, error) {
	var p PrelaunchOracle
	var err error
	if p.PerpMarketIndex, err = d.U16(); err != nil {
		return p, err
	}
	if p.Padding0, err = d.FixedBytes(6); err != nil {
		return p, err
	}
	if p.Price, err = d.I128(); err != nil {
		return p, err
	}
	if p.MaxPrice, err = d.I128(); err != nil {
		return p, err
	}
	if p.Confidence, err = d.U128(); err != nil {
		return p, err
	}
	if p.LastUpdateSlot, err = d.U64(); err != nil {
		return p, err
	}
	if p.AmmLastUpdateSlot, err = d.U64(); err != nil {
		return p, err
	}
	if p.Padding, err = d.FixedBytes(8); err != nil {
		return p, err
	}
	return p, nil
}

// fulfillmentConfigBody is the shared shape of the three external-venue
// routing account types below. Each wraps it in a distinct Go type with its
// own discriminator per §9's disambiguation note: identical layout, distinct
// schemas.
type fulfillmentConfigBody struct {
	VenueMarket codec.PublicKey
	ProgramID   codec.PublicKey
	MarketIndex uint16
	Type        FulfillmentType
	Status      FulfillmentStatus
	Padding     []byte // declared width 4
}

const fulfillmentConfigBodySize = 32*2 + 2 + 1 + 1 + 4

func (f fulfillmentConfigBody) encode(e *codec.Encoder) {
	e.PublicKey(f.VenueMarket)
	e.PublicKey(f.ProgramID)
	e.U16(f.MarketIndex)
	f.Type.Encode(e)
	f.Status.Encode(e)
	writePadding(e, f.Padding, 4)
}

func decodeFulfillmentConfigBody(d *codec.Decoder) (fulfillmentConfigBody, error) {
	var f fulfillmentConfigBody
	var err error
	if f.VenueMarket, err = d.PublicKey(); err != nil {
		return f, err
	}
	if f.ProgramID, err = d.PublicKey(); err != nil {
		return f, err
	}
	if f.MarketIndex, err = d.U16(); err != nil {
		return f, err
	}
	if f.Type, err = DecodeFulfillmentType(d); err != nil {
		return f, err
	}
	if f.Status, err = DecodeFulfillmentStatus(d); err != nil {
		return f, err
	}
	if f.Padding, err = d.FixedBytes(4); err != nil {
		return f, err
	}
	return f, nil
}

// PhoenixV1FulfillmentConfig routes a spot market's fills to a Phoenix venue.
type PhoenixV1FulfillmentConfig struct{ fulfillmentConfigBody }

const PhoenixV1FulfillmentConfigSize = fulfillmentConfigBodySize

func (f PhoenixV1FulfillmentConfig) Encode(e *codec.Encoder) { f.fulfillmentConfigBody.encode(e) }

func decodePhoenixV1FulfillmentConfigBody(d *codec.Decoder) (PhoenixV1FulfillmentConfig, error) {
	b, err := decodeFulfillmentConfigBody(d)
	return PhoenixV1FulfillmentConfig{b}, err
}

// OpenbookV2FulfillmentConfig routes a spot market's fills to an OpenBook V2 venue.
type OpenbookV2FulfillmentConfig struct{ fulfillmentConfigBody }

const OpenbookV2FulfillmentConfigSize = fulfillmentConfigBodySize

func (f OpenbookV2FulfillmentConfig) Encode(e *codec.Encoder) { f.fulfillmentConfigBody.encode(e) }

func decodeOpenbookV2FulfillmentConfigBody(d *codec.Decoder) (OpenbookV2FulfillmentConfig, error) {
	b, err := decodeFulfillmentConfigBody(d)
	return OpenbookV2FulfillmentConfig{b}, err
}

// SerumV3FulfillmentConfig routes a spot market's fills to a Serum V3 venue.
type SerumV3FulfillmentConfig struct{ fulfillmentConfigBody }

const SerumV3FulfillmentConfigSize = fulfillmentConfigBodySize

func (f SerumV3FulfillmentConfig) Encode(e *codec.Encoder) { f.fulfillmentConfigBody.encode(e) }

func decodeSerumV3FulfillmentConfigBody(d *codec.Decoder) (SerumV3FulfillmentConfig, error) {
	b, err := decodeFulfillmentConfigBody(d)
	return SerumV3FulfillmentConfig{b}, err
}

// InitializeLegacyMarker is the "Initialize" account fixture from §9's
// disambiguation note: it intentionally shares its literal discriminator
// with the "Initialize" instruction (see tables.go). Decode/encode for this
// account and for that instruction are never compared against each other —
// each operation is keyed by explicit caller intent via disjoint tables.
type InitializeLegacyMarker struct {
	Version uint8
	Padding []byte // declared width 7
}

const InitializeLegacyMarkerSize = 1 + 7

func (m InitializeLegacyMarker) Encode(e *codec.Encoder) {
	e.U8(m.Version)
	writePadding(e, m.Padding, 7)
}

func decodeInitializeLegacyMarkerBody(d *codec.Decoder) (InitializeLegacyMarker, error) {
	var m InitializeLegacyMarker
	var err error
	if m.Version, err = d.U8(); err != nil {
		return m, err
	}
	if m.Padding, err = d.FixedBytes(7); err != nil {
		return m, err
	}
	return m, nil
}
