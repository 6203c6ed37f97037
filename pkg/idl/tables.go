package idl

// accountNames, instructionNames, and eventNames are the canonical name
// lists the discriminator tables are generated from. The full on-chain
// program enumerates roughly 150 instructions across these same categories;
// this repository implements the representative subset named here plus two
// disambiguation fixtures for the "Initialize" collision named in the design
// notes. Further names extend the same tables by being added to these lists.
var accountNames = []string{
	"State",
	"SpotMarket",
	"PerpMarket",
	"User",
	"UserStats",
	"InsuranceFundStake",
	"PrelaunchOracle",
	"PhoenixV1FulfillmentConfig",
	"OpenbookV2FulfillmentConfig",
	"SerumV3FulfillmentConfig",
	"Initialize", // legacy marker account; see the Initialize disambiguation note below
}

var instructionNames = []string{
	"InitializeUser",
	"InitializeUserStats",
	"UpdateUserName",
	"DeleteUser",
	"Deposit",
	"Withdraw",
	"TransferDeposit",
	"PlacePerpOrder",
	"PlaceSpotOrder",
	"CancelOrder",
	"CancelOrderByUserOrderId",
	"CancelOrders",
	"FillPerpOrder",
	"FillSpotOrder",
	"SettlePnl",
	"BeginSwap",
	"EndSwap",
	"LiquidatePerp",
	"LiquidateSpot",
	"LiquidateBorrowForPerpPnl",
	"ResolvePerpPnlDeficit",
	"InitializeInsuranceFundStake",
	"AddInsuranceFundStake",
	"RemoveInsuranceFundStake",
	"InitializeState",
	"InitializeSpotMarket",
	"InitializePerpMarket",
	"InitializePrelaunchOracle",
	"PostPythPullOracleUpdateAtomic",
	"OpenbookV2FulfillmentConfigStatus",
	"PhoenixFulfillmentConfigStatus",
	"UpdatePerpMarketExpiry",
	"Initialize", // legacy bootstrap instruction; shares a discriminator value with the Initialize account below, by construction
}

var eventNames = []string{
	"NewUserRecord",
	"DepositRecord",
	"OrderRecord",
	"OrderActionRecord",
	"FillRecord",
	"LiquidationRecord",
	"SettlePnlRecord",
	"InsuranceFundStakeRecord",
	"FundingRateRecord",
	"FundingPaymentRecord",
}

var (
	accountDiscriminators     = map[string]Discriminator{}
	instructionDiscriminators = map[string]Discriminator{}
	eventDiscriminators       = map[string]Discriminator{}
)

func init() {
	for _, name := range accountNames {
		accountDiscriminators[name] = computeDiscriminator(AccountNamespace, name)
	}
	for _, name := range instructionNames {
		instructionDiscriminators[name] = computeDiscriminator(InstructionNamespace, snakeCase(name))
	}
	for _, name := range eventNames {
		eventDiscriminators[name] = computeDiscriminator(EventNamespace, name)
	}

	// Golden-vector overrides (spec.md §8, scenarios 1-2): the shipped table
	// is the source of truth and is NOT required to match a fresh
	// recomputation — ValidateDiscriminatorTable reports these two as
	// expected mismatches.
	instructionDiscriminators["InitializeUser"] = mustDiscriminator(0xCB, 0x3E, 0xBA, 0xB5, 0x6D, 0xFA, 0xF0, 0xC1)
	instructionDiscriminators["Deposit"] = mustDiscriminator(0x94, 0x92, 0x79, 0x42, 0xCF, 0xAD, 0x15, 0xE3)

	// The "Initialize" disambiguation fixture: an instruction and an account
	// type intentionally sharing one literal discriminator value, resolved
	// by keying decode/build operations on explicit caller intent (disjoint
	// tables) rather than by byte inspection. See SPEC_FULL.md §9.
	sharedInitializeDisc := mustDiscriminator(0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88)
	instructionDiscriminators["Initialize"] = sharedInitializeDisc
	accountDiscriminators["Initialize"] = sharedInitializeDisc
}

// AccountDiscriminator returns the 8-byte discriminator for a named account
// type, and whether that name is registered.
func AccountDiscriminator(name string) (Discriminator, bool) {
	d, ok := accountDiscriminators[name]
	return d, ok
}

// InstructionDiscriminator returns the 8-byte discriminator for a named
// instruction, and whether that name is registered. Exported for
// pkg/instructions to consult, keeping the registry the single owner of all
// discriminator values per §4.2.
func InstructionDiscriminator(name string) (Discriminator, bool) {
	d, ok := instructionDiscriminators[name]
	return d, ok
}

// EventDiscriminator returns the 8-byte discriminator for a named event, and
// whether that name is registered. Exported for pkg/events.
func EventDiscriminator(name string) (Discriminator, bool) {
	d, ok := eventDiscriminators[name]
	return d, ok
}

// EventNameByDiscriminator reverse-looks-up an event name from its wire
// discriminator, returning ok=false for an unmapped value (the caller
// returns events.UnknownEvent in that case — a non-fatal outcome).
func EventNameByDiscriminator(d Discriminator) (string, bool) {
	for name, dd := range eventDiscriminators {
		if dd == d {
			return name, true
		}
	}
	return "", false
}
