package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func TestPutGetAccountRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idlcli.bolt")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	want := Entry{Name: "User", Data: []byte{1, 2, 3, 4}, DecodedAt: time.Unix(1700000000, 123)}
	if err := c.PutAccount("acct-key", want); err != nil {
		t.Fatalf("PutAccount: %v", err)
	}

	got, ok, err := c.GetAccount("acct-key")
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if !ok {
		t.Fatal("expected entry to be present")
	}
	if got.Name != want.Name {
		t.Fatalf("Name = %q, want %q", got.Name, want.Name)
	}
	if string(got.Data) != string(want.Data) {
		t.Fatalf("Data = %v, want %v", got.Data, want.Data)
	}
	if !got.DecodedAt.Equal(want.DecodedAt) {
		t.Fatalf("DecodedAt = %v, want %v", got.DecodedAt, want.DecodedAt)
	}
}

func TestGetAccountMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idlcli.bolt")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	_, ok, err := c.GetAccount("does-not-exist")
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for a missing key")
	}
}

func TestEventsAndAccountsAreSeparateBuckets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idlcli.bolt")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	if err := c.PutAccount("k", Entry{Name: "User"}); err != nil {
		t.Fatalf("PutAccount: %v", err)
	}
	_, ok, err := c.GetEvent("k")
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if ok {
		t.Fatal("expected the events bucket to be unaffected by a write to the accounts bucket")
	}
}

func TestReopenPersistsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idlcli.bolt")
	c, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := c.PutEvent("ev-1", Entry{Name: "DepositRecord", Data: []byte{9, 9}}); err != nil {
		t.Fatalf("PutEvent: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	c2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c2.Close()

	got, ok, err := c2.GetEvent("ev-1")
	if err != nil {
		t.Fatalf("GetEvent after reopen: %v", err)
	}
	if !ok || got.Name != "DepositRecord" {
		t.Fatalf("expected persisted entry, got %+v ok=%v", got, ok)
	}
}

func TestKeyFromHexRejectsInvalidHex(t *testing.T) {
	if _, err := KeyFromHex("not-hex!!"); err == nil {
		t.Fatal("expected an error for invalid hex input")
	}
	if _, err := KeyFromHex("deadbeef"); err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}
}
