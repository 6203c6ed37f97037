package instructions

// argsConstructors returns a fresh *Xxx for each registered instruction,
// keyed the same way instructionSchemas is. It exists so callers that only
// have a generic payload (JSON from a CLI flag, a stored fixture) can obtain
// a concretely-typed value to populate before handing it to Build, instead of
// every caller hand-writing its own switch over all instruction names.
var argsConstructors = map[string]func() any{
	"InitializeUser":                    func() any { return &InitializeUserArgs{} },
	"InitializeUserStats":               func() any { return &struct{}{} },
	"UpdateUserName":                    func() any { return &UpdateUserNameArgs{} },
	"DeleteUser":                        func() any { return &DeleteUserArgs{} },
	"Deposit":                           func() any { return &DepositArgs{} },
	"Withdraw":                          func() any { return &WithdrawArgs{} },
	"TransferDeposit":                   func() any { return &TransferDepositArgs{} },
	"PlacePerpOrder":                    func() any { return &PlacePerpOrderArgs{} },
	"PlaceSpotOrder":                    func() any { return &PlaceSpotOrderArgs{} },
	"CancelOrder":                       func() any { return &CancelOrderArgs{} },
	"CancelOrderByUserOrderId":          func() any { return &CancelOrderByUserOrderIDArgs{} },
	"CancelOrders":                      func() any { return &CancelOrdersArgs{} },
	"FillPerpOrder":                     func() any { return &FillPerpOrderArgs{} },
	"FillSpotOrder":                     func() any { return &FillSpotOrderArgs{} },
	"SettlePnl":                         func() any { return &SettlePnlArgs{} },
	"BeginSwap":                         func() any { return &BeginSwapArgs{} },
	"EndSwap":                           func() any { return &EndSwapArgs{} },
	"LiquidatePerp":                     func() any { return &LiquidatePerpArgs{} },
	"LiquidateSpot":                     func() any { return &LiquidateSpotArgs{} },
	"LiquidateBorrowForPerpPnl":         func() any { return &LiquidateBorrowForPerpPnlArgs{} },
	"ResolvePerpPnlDeficit":             func() any { return &ResolvePerpPnlDeficitArgs{} },
	"InitializeInsuranceFundStake":      func() any { return &InitializeInsuranceFundStakeArgs{} },
	"AddInsuranceFundStake":             func() any { return &AddInsuranceFundStakeArgs{} },
	"RemoveInsuranceFundStake":          func() any { return &RemoveInsuranceFundStakeArgs{} },
	"InitializeState":                  func() any { return &InitializeStateArgs{} },
	"InitializeSpotMarket":              func() any { return &InitializeSpotMarketArgs{} },
	"InitializePerpMarket":              func() any { return &InitializePerpMarketArgs{} },
	"InitializePrelaunchOracle":         func() any { return &InitializePrelaunchOracleArgs{} },
	"PostPythPullOracleUpdateAtomic":    func() any { return &PostPythPullOracleUpdateAtomicArgs{} },
	"OpenbookV2FulfillmentConfigStatus": func() any { return &OpenbookV2FulfillmentConfigStatusArgs{} },
	"PhoenixFulfillmentConfigStatus":    func() any { return &PhoenixFulfillmentConfigStatusArgs{} },
	"UpdatePerpMarketExpiry":            func() any { return &UpdatePerpMarketExpiryArgs{} },
	"Initialize":                        func() any { return &InitializeArgs{} },
}

// NewArgs returns a fresh pointer to the args struct registered for name, so
// a caller can json.Unmarshal into it before dereferencing to the value Build
// expects. ok is false for an unregistered name.
func NewArgs(name string) (any, bool) {
	ctor, ok := argsConstructors[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}
