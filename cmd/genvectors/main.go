// Command genvectors regenerates testdata/golden_vectors.json from the
// literal scenarios the wire-format spec pins: discriminator bytes,
// instruction encodings, and the two error-code mappings. pkg/conformance's
// golden-vector tests load the file this command writes and assert against
// it, the same split the fixture generator and its consumer have in the
// conformance suite this is modeled on.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/drift-labs/drift-go/pkg/events"
	"github.com/drift-labs/drift-go/pkg/idl"
	"github.com/drift-labs/drift-go/pkg/instructions"
)

// vectorFile is the on-disk shape; each field is one of the spec's six
// end-to-end scenarios.
type vectorFile struct {
	InitializeUser        instructionVector `json:"initialize_user"`
	Deposit               instructionVector `json:"deposit"`
	OracleSourceTag       enumVector        `json:"oracle_source_tag"`
	CancelOrder           cancelOrderVector `json:"cancel_order"`
	ErrorCodes            []errorCodeVector `json:"error_codes"`
	DiscriminatorMismatch mismatchVector    `json:"discriminator_mismatch"`
}

type instructionVector struct {
	DataHex  string       `json:"data_hex"`
	Accounts []metaVector `json:"accounts"`
}

type metaVector struct {
	Name       string `json:"name"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type enumVector struct {
	InputHex string `json:"input_hex"`
	Variant  int    `json:"variant"`
	Name     string `json:"name"`
}

type cancelOrderVector struct {
	SomeHex string `json:"some_hex"`
	NoneHex string `json:"none_hex"`
}

type errorCodeVector struct {
	Code    uint32 `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

type mismatchVector struct {
	AccountDataHex string `json:"account_data_hex"`
	SchemaName     string `json:"schema_name"`
	ExpectCode     string `json:"expect_code"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	repoRoot, err := repoRootFromGoModule()
	if err != nil {
		return fmt.Errorf("repo root: %w", err)
	}

	f, err := buildVectorFile()
	if err != nil {
		return fmt.Errorf("build vectors: %w", err)
	}

	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	raw = append(raw, '\n')

	outPath := filepath.Join(repoRoot, "testdata", "golden_vectors.json")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("mkdir testdata: %w", err)
	}
	if err := os.WriteFile(outPath, raw, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Println("wrote", outPath)
	return nil
}

// buildVectorFile exercises the library's own public API to produce each
// vector, rather than hand-writing the expected bytes a second time: the
// literal values in the spec (e.g. scenario 1's "CB 3E BA B5 ...") are
// asserted against these in pkg/conformance's golden-vector tests, not
// reproduced here.
func buildVectorFile() (*vectorFile, error) {
	var zeroPK codec.PublicKey

	data, metas, err := instructions.Build("InitializeUser", instructions.InitializeUserArgs{
		SubAccountID: 0,
		Name:         [32]byte{},
	}, map[string]codec.PublicKey{
		"state":          zeroPK,
		"user":           zeroPK,
		"user_stats":     zeroPK,
		"authority":      zeroPK,
		"payer":          zeroPK,
		"rent":           zeroPK,
		"system_program": zeroPK,
	})
	if err != nil {
		return nil, fmt.Errorf("InitializeUser: %w", err)
	}
	initUserSlotNames, _ := instructions.AccountSlotNames("InitializeUser")
	initUser := instructionVector{DataHex: hex.EncodeToString(data), Accounts: toMetaVectors(initUserSlotNames, metas)}

	depositData, depositMetas, err := instructions.Build("Deposit", instructions.DepositArgs{
		MarketIndex: 1,
		Amount:      1_000_000,
		ReduceOnly:  false,
	}, map[string]codec.PublicKey{
		"state":              zeroPK,
		"user":               zeroPK,
		"user_stats":         zeroPK,
		"authority":          zeroPK,
		"spot_market_vault":  zeroPK,
		"user_token_account": zeroPK,
		"token_program":      zeroPK,
	})
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}
	depositSlotNames, _ := instructions.AccountSlotNames("Deposit")
	deposit := instructionVector{DataHex: hex.EncodeToString(depositData), Accounts: toMetaVectors(depositSlotNames, depositMetas)}

	oracleSource, err := idl.DecodeOracleSource(codec.NewDecoder([]byte{5}))
	if err != nil {
		return nil, fmt.Errorf("OracleSource: %w", err)
	}
	oracleVector := enumVector{InputHex: "05", Variant: int(oracleSource), Name: oracleSource.String()}

	cancelOrderAccounts := map[string]codec.PublicKey{"state": zeroPK, "user": zeroPK, "authority": zeroPK}
	orderID := uint32(7)
	someData, _, err := instructions.Build("CancelOrder", instructions.CancelOrderArgs{OrderID: &orderID}, cancelOrderAccounts)
	if err != nil {
		return nil, fmt.Errorf("CancelOrder(Some): %w", err)
	}
	noneData, _, err := instructions.Build("CancelOrder", instructions.CancelOrderArgs{OrderID: nil}, cancelOrderAccounts)
	if err != nil {
		return nil, fmt.Errorf("CancelOrder(None): %w", err)
	}
	cancelOrder := cancelOrderVector{SomeHex: hex.EncodeToString(someData), NoneHex: hex.EncodeToString(noneData)}

	var errCodes []errorCodeVector
	for _, code := range []uint32{6003, 6146} {
		name, msg, ok := events.ErrorCodeToName(code)
		if !ok {
			return nil, fmt.Errorf("error code %d: not registered", code)
		}
		errCodes = append(errCodes, errorCodeVector{Code: code, Name: name, Message: msg})
	}

	mismatch := mismatchVector{
		AccountDataHex: hex.EncodeToString(make([]byte, 8+idl.PerpMarketSize)),
		SchemaName:     "PerpMarket",
		ExpectCode:     string(idl.CodeDiscriminatorMismatch),
	}

	return &vectorFile{
		InitializeUser:        initUser,
		Deposit:               deposit,
		OracleSourceTag:       oracleVector,
		CancelOrder:           cancelOrder,
		ErrorCodes:            errCodes,
		DiscriminatorMismatch: mismatch,
	}, nil
}

func toMetaVectors(names []string, metas []instructions.AccountMeta) []metaVector {
	out := make([]metaVector, len(metas))
	for i, m := range metas {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		out[i] = metaVector{Name: name, IsSigner: m.IsSigner, IsWritable: m.IsWritable}
	}
	return out
}

// repoRootFromGoModule walks up from the working directory until it finds
// go.mod, mirroring the fixture generator's own repo-root discovery so this
// command can be run from any subdirectory.
func repoRootFromGoModule() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}
