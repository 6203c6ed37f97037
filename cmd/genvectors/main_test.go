package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGenVectors_WritesExpectedScenarios(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module temp\n\ngo 1.24\n"), 0o600); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(tmp, "testdata", "golden_vectors.json"))
	if err != nil {
		t.Fatalf("read golden_vectors.json: %v", err)
	}
	var got vectorFile
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got.InitializeUser.DataHex) != 84 {
		t.Fatalf("InitializeUser.DataHex length = %d, want 84 (42 bytes hex-encoded)", len(got.InitializeUser.DataHex))
	}
	if got.InitializeUser.DataHex[:16] != "cb3ebab56dfaf0c1" {
		t.Fatalf("InitializeUser.DataHex discriminator = %q, want cb3ebab56dfaf0c1", got.InitializeUser.DataHex[:16])
	}
	if len(got.Deposit.Accounts) != 7 {
		t.Fatalf("Deposit.Accounts length = %d, want 7", len(got.Deposit.Accounts))
	}
	if got.OracleSourceTag.Name != "PythStableCoin" {
		t.Fatalf("OracleSourceTag.Name = %q, want PythStableCoin", got.OracleSourceTag.Name)
	}
	if len(got.ErrorCodes) != 2 || got.ErrorCodes[0].Name != "InsufficientCollateral" {
		t.Fatalf("unexpected ErrorCodes: %+v", got.ErrorCodes)
	}
	if got.DiscriminatorMismatch.SchemaName != "PerpMarket" {
		t.Fatalf("DiscriminatorMismatch.SchemaName = %q", got.DiscriminatorMismatch.SchemaName)
	}
}
