package instructions

import "github.com/drift-labs/drift-go/pkg/codec"

// slotSpec is one row of an instruction's account-metadata table: pure data,
// per §9's design note ("encode them as pure data... rather than hand-written
// constructors"), keyed by the logical account name the caller supplies via
// Build's accountPubkeys map.
type slotSpec struct {
	name       string
	isSigner   bool
	isWritable bool
}

func ro(name string) slotSpec  { return slotSpec{name: name} }
func wr(name string) slotSpec  { return slotSpec{name: name, isWritable: true} }
func sig(name string) slotSpec { return slotSpec{name: name, isSigner: true} }
func sw(name string) slotSpec  { return slotSpec{name: name, isSigner: true, isWritable: true} }

// instructionSchema binds one instruction name to its args encoder and its
// ordered account-slot table.
type instructionSchema struct {
	encodeArgs func(args any, e *codec.Encoder) error
	slots      []slotSpec
}

func typeMismatch(name string) error {
	return newErrf(CodeArgsTypeMismatch, "instruction %s: args value has the wrong type", name)
}

var instructionSchemas = map[string]instructionSchema{
	"InitializeUser": {
		slots: []slotSpec{ro("state"), wr("user"), wr("user_stats"), sig("authority"), sw("payer"), ro("rent"), ro("system_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(InitializeUserArgs)
			if !ok {
				return typeMismatch("InitializeUser")
			}
			e.U16(a.SubAccountID)
			e.FixedBytes(a.Name[:])
			return nil
		},
	},
	"InitializeUserStats": {
		// Carries no args; the instruction's data blob is the discriminator
		// alone, so encodeArgs is a no-op regardless of what args holds.
		slots: []slotSpec{ro("state"), wr("user_stats"), sw("authority"), sw("payer"), ro("rent"), ro("system_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			return nil
		},
	},
	"UpdateUserName": {
		slots: []slotSpec{wr("user"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(UpdateUserNameArgs)
			if !ok {
				return typeMismatch("UpdateUserName")
			}
			e.U16(a.SubAccountID)
			e.FixedBytes(a.Name[:])
			return nil
		},
	},
	"DeleteUser": {
		slots: []slotSpec{wr("user"), wr("user_stats"), sw("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(DeleteUserArgs)
			if !ok {
				return typeMismatch("DeleteUser")
			}
			e.U16(a.SubAccountID)
			return nil
		},
	},
	"Deposit": {
		// Account order and flags reproduce spec.md §8 scenario 2 exactly.
		slots: []slotSpec{ro("state"), wr("user"), wr("user_stats"), sig("authority"), wr("spot_market_vault"), wr("user_token_account"), ro("token_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(DepositArgs)
			if !ok {
				return typeMismatch("Deposit")
			}
			e.U16(a.MarketIndex)
			e.U64(a.Amount)
			e.Bool(a.ReduceOnly)
			return nil
		},
	},
	"Withdraw": {
		slots: []slotSpec{ro("state"), wr("user"), wr("user_stats"), sig("authority"), wr("spot_market_vault"), wr("drift_signer"), wr("user_token_account"), ro("token_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(WithdrawArgs)
			if !ok {
				return typeMismatch("Withdraw")
			}
			e.U16(a.MarketIndex)
			e.U64(a.Amount)
			e.Bool(a.ReduceOnly)
			return nil
		},
	},
	"TransferDeposit": {
		slots: []slotSpec{ro("state"), wr("from_user"), wr("to_user"), ro("user_stats"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(TransferDepositArgs)
			if !ok {
				return typeMismatch("TransferDeposit")
			}
			e.U16(a.MarketIndex)
			e.U64(a.Amount)
			return nil
		},
	},
	"PlacePerpOrder": {
		slots: []slotSpec{ro("state"), wr("user"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(PlacePerpOrderArgs)
			if !ok {
				return typeMismatch("PlacePerpOrder")
			}
			encodeOrderParams(a.Params, e)
			return nil
		},
	},
	"PlaceSpotOrder": {
		slots: []slotSpec{ro("state"), wr("user"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(PlaceSpotOrderArgs)
			if !ok {
				return typeMismatch("PlaceSpotOrder")
			}
			encodeOrderParams(a.Params, e)
			return nil
		},
	},
	"CancelOrder": {
		slots: []slotSpec{ro("state"), wr("user"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(CancelOrderArgs)
			if !ok {
				return typeMismatch("CancelOrder")
			}
			e.OptionTag(a.OrderID != nil)
			if a.OrderID != nil {
				e.U32(*a.OrderID)
			}
			return nil
		},
	},
	"CancelOrderByUserOrderId": {
		slots: []slotSpec{ro("state"), wr("user"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(CancelOrderByUserOrderIDArgs)
			if !ok {
				return typeMismatch("CancelOrderByUserOrderId")
			}
			e.U8(a.UserOrderID)
			return nil
		},
	},
	"CancelOrders": {
		slots: []slotSpec{ro("state"), wr("user"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(CancelOrdersArgs)
			if !ok {
				return typeMismatch("CancelOrders")
			}
			e.OptionTag(a.MarketType != nil)
			if a.MarketType != nil {
				e.EnumTag(int(*a.MarketType))
			}
			e.OptionTag(a.MarketIndex != nil)
			if a.MarketIndex != nil {
				e.U16(*a.MarketIndex)
			}
			e.OptionTag(a.Direction != nil)
			if a.Direction != nil {
				e.EnumTag(int(*a.Direction))
			}
			return nil
		},
	},
	"FillPerpOrder": {
		slots: []slotSpec{ro("state"), wr("user"), wr("user_stats"), sig("authority"), wr("filler"), wr("filler_stats")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(FillPerpOrderArgs)
			if !ok {
				return typeMismatch("FillPerpOrder")
			}
			e.OptionTag(a.OrderID != nil)
			if a.OrderID != nil {
				e.U32(*a.OrderID)
			}
			return nil
		},
	},
	"FillSpotOrder": {
		slots: []slotSpec{ro("state"), wr("user"), wr("user_stats"), sig("authority"), wr("filler"), wr("filler_stats")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(FillSpotOrderArgs)
			if !ok {
				return typeMismatch("FillSpotOrder")
			}
			e.OptionTag(a.OrderID != nil)
			if a.OrderID != nil {
				e.U32(*a.OrderID)
			}
			e.OptionTag(a.FulfillmentType != nil)
			if a.FulfillmentType != nil {
				e.EnumTag(int(*a.FulfillmentType))
			}
			return nil
		},
	},
	"SettlePnl": {
		slots: []slotSpec{ro("state"), wr("user"), sig("authority"), wr("spot_market_vault")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(SettlePnlArgs)
			if !ok {
				return typeMismatch("SettlePnl")
			}
			e.U16(a.MarketIndex)
			return nil
		},
	},
	"BeginSwap": {
		slots: []slotSpec{ro("state"), wr("user"), sig("authority"), wr("in_spot_market_vault"), wr("out_spot_market_vault"), ro("token_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(BeginSwapArgs)
			if !ok {
				return typeMismatch("BeginSwap")
			}
			e.U16(a.InMarketIndex)
			e.U16(a.OutMarketIndex)
			return nil
		},
	},
	"EndSwap": {
		slots: []slotSpec{ro("state"), wr("user"), sig("authority"), wr("in_spot_market_vault"), wr("out_spot_market_vault"), ro("token_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(EndSwapArgs)
			if !ok {
				return typeMismatch("EndSwap")
			}
			e.U16(a.InMarketIndex)
			e.U16(a.OutMarketIndex)
			e.OptionTag(a.LimitPrice != nil)
			if a.LimitPrice != nil {
				e.U64(*a.LimitPrice)
			}
			e.OptionTag(a.ReduceOnly != nil)
			if a.ReduceOnly != nil {
				e.Bool(*a.ReduceOnly)
			}
			return nil
		},
	},
	"LiquidatePerp": {
		slots: []slotSpec{ro("state"), wr("user"), wr("user_stats"), wr("liquidator"), wr("liquidator_stats"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(LiquidatePerpArgs)
			if !ok {
				return typeMismatch("LiquidatePerp")
			}
			e.U16(a.MarketIndex)
			e.U64(a.LiquidatorMaxBaseAssetAmount)
			e.OptionTag(a.LimitPrice != nil)
			if a.LimitPrice != nil {
				e.U64(*a.LimitPrice)
			}
			return nil
		},
	},
	"LiquidateSpot": {
		slots: []slotSpec{ro("state"), wr("user"), wr("user_stats"), wr("liquidator"), wr("liquidator_stats"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(LiquidateSpotArgs)
			if !ok {
				return typeMismatch("LiquidateSpot")
			}
			e.U16(a.AssetMarketIndex)
			e.U16(a.LiabilityMarketIndex)
			e.U128(a.LiquidatorMaxLiabilityTransfer)
			e.OptionTag(a.LimitPrice != nil)
			if a.LimitPrice != nil {
				e.U64(*a.LimitPrice)
			}
			return nil
		},
	},
	"LiquidateBorrowForPerpPnl": {
		slots: []slotSpec{ro("state"), wr("user"), wr("user_stats"), wr("liquidator"), wr("liquidator_stats"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(LiquidateBorrowForPerpPnlArgs)
			if !ok {
				return typeMismatch("LiquidateBorrowForPerpPnl")
			}
			e.U16(a.PerpMarketIndex)
			e.U16(a.SpotMarketIndex)
			e.U128(a.LiquidatorMaxLiabilityTransfer)
			return nil
		},
	},
	"ResolvePerpPnlDeficit": {
		slots: []slotSpec{ro("state"), wr("spot_market_vault"), wr("insurance_fund_vault"), sig("authority")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(ResolvePerpPnlDeficitArgs)
			if !ok {
				return typeMismatch("ResolvePerpPnlDeficit")
			}
			e.U16(a.SpotMarketIndex)
			e.U16(a.PerpMarketIndex)
			return nil
		},
	},
	"InitializeInsuranceFundStake": {
		slots: []slotSpec{ro("state"), wr("spot_market"), wr("insurance_fund_stake"), wr("user_stats"), sig("authority"), sw("payer")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(InitializeInsuranceFundStakeArgs)
			if !ok {
				return typeMismatch("InitializeInsuranceFundStake")
			}
			e.U16(a.MarketIndex)
			return nil
		},
	},
	"AddInsuranceFundStake": {
		slots: []slotSpec{ro("state"), wr("spot_market"), wr("insurance_fund_stake"), wr("user_stats"), sig("authority"), wr("insurance_fund_vault"), wr("user_token_account"), ro("token_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(AddInsuranceFundStakeArgs)
			if !ok {
				return typeMismatch("AddInsuranceFundStake")
			}
			e.U16(a.MarketIndex)
			e.U64(a.Amount)
			return nil
		},
	},
	"RemoveInsuranceFundStake": {
		slots: []slotSpec{ro("state"), wr("spot_market"), wr("insurance_fund_stake"), wr("user_stats"), sig("authority"), wr("insurance_fund_vault"), wr("user_token_account"), ro("token_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(RemoveInsuranceFundStakeArgs)
			if !ok {
				return typeMismatch("RemoveInsuranceFundStake")
			}
			e.U16(a.MarketIndex)
			return nil
		},
	},
	"InitializeState": {
		slots: []slotSpec{sw("admin"), wr("state"), ro("quote_asset_mint"), ro("rent"), ro("system_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			if _, ok := args.(InitializeStateArgs); !ok {
				return typeMismatch("InitializeState")
			}
			return nil
		},
	},
	"InitializeSpotMarket": {
		slots: []slotSpec{sig("admin"), wr("state"), wr("spot_market"), ro("oracle"), ro("spot_market_mint"), wr("spot_market_vault"), ro("rent"), ro("system_program"), ro("token_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(InitializeSpotMarketArgs)
			if !ok {
				return typeMismatch("InitializeSpotMarket")
			}
			e.U16(a.MarketIndex)
			e.U32(a.OptimalUtilization)
			e.U32(a.OptimalBorrowRate)
			e.U32(a.MaxBorrowRate)
			e.EnumTag(int(a.OracleSource))
			e.FixedBytes(a.Name[:])
			return nil
		},
	},
	"InitializePerpMarket": {
		slots: []slotSpec{sig("admin"), wr("state"), wr("perp_market"), ro("oracle"), ro("rent"), ro("system_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(InitializePerpMarketArgs)
			if !ok {
				return typeMismatch("InitializePerpMarket")
			}
			e.U16(a.MarketIndex)
			e.U128(a.AmmBaseAssetReserve)
			e.U128(a.AmmQuoteAssetReserve)
			e.I64(a.AmmPeriodicity)
			e.U128(a.AmmPegMultiplier)
			e.EnumTag(int(a.OracleSource))
			e.EnumTag(int(a.ContractTier))
			e.FixedBytes(a.Name[:])
			return nil
		},
	},
	"InitializePrelaunchOracle": {
		slots: []slotSpec{sig("admin"), ro("state"), wr("prelaunch_oracle"), ro("rent"), ro("system_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(InitializePrelaunchOracleArgs)
			if !ok {
				return typeMismatch("InitializePrelaunchOracle")
			}
			e.U16(a.PerpMarketIndex)
			e.I128(a.Price)
			return nil
		},
	},
	"PostPythPullOracleUpdateAtomic": {
		slots: []slotSpec{sig("keeper"), ro("pyth_program"), ro("guardian_set")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(PostPythPullOracleUpdateAtomicArgs)
			if !ok {
				return typeMismatch("PostPythPullOracleUpdateAtomic")
			}
			e.VecLen(len(a.VaaData))
			e.FixedBytes(a.VaaData)
			return nil
		},
	},
	"OpenbookV2FulfillmentConfigStatus": {
		slots: []slotSpec{sig("admin"), ro("state"), wr("openbook_v2_fulfillment_config")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(OpenbookV2FulfillmentConfigStatusArgs)
			if !ok {
				return typeMismatch("OpenbookV2FulfillmentConfigStatus")
			}
			e.U16(a.MarketIndex)
			e.EnumTag(int(a.Status))
			return nil
		},
	},
	"PhoenixFulfillmentConfigStatus": {
		slots: []slotSpec{sig("admin"), ro("state"), wr("phoenix_v1_fulfillment_config")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(PhoenixFulfillmentConfigStatusArgs)
			if !ok {
				return typeMismatch("PhoenixFulfillmentConfigStatus")
			}
			e.U16(a.MarketIndex)
			e.EnumTag(int(a.Status))
			return nil
		},
	},
	"UpdatePerpMarketExpiry": {
		slots: []slotSpec{sig("admin"), ro("state"), wr("perp_market")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			a, ok := args.(UpdatePerpMarketExpiryArgs)
			if !ok {
				return typeMismatch("UpdatePerpMarketExpiry")
			}
			e.U16(a.MarketIndex)
			e.I64(a.ExpiryTs)
			return nil
		},
	},
	// Initialize is the legacy bootstrap instruction sharing its literal
	// discriminator with the Initialize account type (SPEC_FULL.md §9): the
	// two live in disjoint tables (this map vs idl's accountSchemas) and are
	// never compared against each other on the wire.
	"Initialize": {
		slots: []slotSpec{sw("payer"), ro("rent"), ro("system_program")},
		encodeArgs: func(args any, e *codec.Encoder) error {
			if _, ok := args.(InitializeArgs); !ok {
				return typeMismatch("Initialize")
			}
			return nil
		},
	},
}
