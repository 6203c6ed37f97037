package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/drift-labs/drift-go/pkg/instructions"
)

func TestDecodeArgsForInstructionDeposit(t *testing.T) {
	raw := map[string]any{"MarketIndex": float64(1), "Amount": float64(1_000_000), "ReduceOnly": false}
	got, err := decodeArgsForInstruction("Deposit", raw)
	if err != nil {
		t.Fatalf("decodeArgsForInstruction: %v", err)
	}
	args, ok := got.(instructions.DepositArgs)
	if !ok {
		t.Fatalf("expected instructions.DepositArgs, got %T", got)
	}
	if args.MarketIndex != 1 || args.Amount != 1_000_000 || args.ReduceOnly {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDecodeArgsForInstructionUnknownName(t *testing.T) {
	if _, err := decodeArgsForInstruction("NotAnInstruction", nil); err == nil {
		t.Fatal("expected an error for an unregistered instruction name")
	}
}

func TestBuildInstructionCommandRoundTrip(t *testing.T) {
	pk := codec.PublicKey{1, 2, 3}
	accountsJSON, err := json.Marshal(map[string]string{
		"state":             pk.String(),
		"user":              pk.String(),
		"user_stats":        pk.String(),
		"authority":         pk.String(),
		"spot_market_vault": pk.String(),
		"user_token_account": pk.String(),
		"token_program":     pk.String(),
	})
	if err != nil {
		t.Fatalf("marshal accounts: %v", err)
	}
	argsJSON := `{"MarketIndex":1,"Amount":500,"ReduceOnly":false}`

	var out bytes.Buffer
	app := &cli.App{
		Commands: []*cli.Command{buildInstructionCommand()},
		Writer:   &out,
	}
	if err := app.Run([]string{"idlcli", "build-instruction", "Deposit", argsJSON, string(accountsJSON)}); err != nil {
		t.Fatalf("app.Run: %v", err)
	}

	var resp struct {
		DataHex  string `json:"data_hex"`
		Accounts []struct {
			Pubkey     string `json:"pubkey"`
			IsSigner   bool   `json:"is_signer"`
			IsWritable bool   `json:"is_writable"`
		} `json:"accounts"`
	}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal cli output: %v\noutput: %s", err, out.String())
	}
	if len(resp.Accounts) != 7 {
		t.Fatalf("expected 7 accounts, got %d", len(resp.Accounts))
	}
	data, err := hex.DecodeString(resp.DataHex)
	if err != nil {
		t.Fatalf("bad data_hex: %v", err)
	}
	if len(data) != 8+2+8+1 {
		t.Fatalf("unexpected data length %d", len(data))
	}
}
