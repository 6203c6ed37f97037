// Command idlcli is a developer-inspection tool for the on-chain program's
// wire format: hex-decode an account/event, hex-encode an instruction, and
// check the shipped discriminator table for drift. It is explicitly scoped
// as test/dev tooling, never a trading or transaction-submission CLI.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/drift-labs/drift-go/internal/cache"
	"github.com/drift-labs/drift-go/pkg/codec"
	"github.com/drift-labs/drift-go/pkg/events"
	"github.com/drift-labs/drift-go/pkg/idl"
	"github.com/drift-labs/drift-go/pkg/instructions"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl := zap.InfoLevel
	if verbose {
		lvl = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func openCache(c *cli.Context) (*cache.Cache, error) {
	path := c.String("cache-path")
	if path == "" {
		return nil, nil
	}
	return cache.Open(path)
}

func main() {
	app := &cli.App{
		Name:  "idlcli",
		Usage: "inspect and round-trip the program's binary ABI (accounts, instructions, events)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
			&cli.StringFlag{Name: "cache-path", Usage: "optional bbolt file to record decode history in"},
		},
		Commands: []*cli.Command{
			decodeAccountCommand(),
			decodeEventCommand(),
			buildInstructionCommand(),
			validateDiscriminatorsCommand(),
			listCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func decodeAccountCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode-account",
		Usage:     "decode a hex-encoded account blob against a named schema",
		ArgsUsage: "<schema-name> <hex>",
		Action: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool("verbose"))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if c.Args().Len() != 2 {
				return cli.Exit("usage: idlcli decode-account <schema-name> <hex>", 1)
			}
			name, hexStr := c.Args().Get(0), c.Args().Get(1)
			data, err := hex.DecodeString(hexStr)
			if err != nil {
				return cli.Exit(fmt.Errorf("bad hex: %w", err), 1)
			}

			logger.Debug("decoding account", zap.String("schema", name), zap.Int("bytes", len(data)))
			v, err := idl.DecodeAccount(name, data)
			if err != nil {
				logger.Error("decode failed", zap.Error(err))
				return cli.Exit(err, 1)
			}

			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return cli.Exit(err, 1)
			}
			fmt.Fprintln(c.App.Writer, string(out))

			if ch, err := openCache(c); err == nil && ch != nil {
				defer ch.Close()
				_ = ch.PutAccount(name+":"+hexStr[:min(16, len(hexStr))], cache.Entry{
					Name: name, Data: data, DecodedAt: time.Now(),
				})
			}
			return nil
		},
	}
}

func decodeEventCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode-event",
		Usage:     "decode a hex-encoded log event, dispatching on its 8-byte discriminator",
		ArgsUsage: "<hex>",
		Action: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool("verbose"))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if c.Args().Len() != 1 {
				return cli.Exit("usage: idlcli decode-event <hex>", 1)
			}
			data, err := hex.DecodeString(c.Args().Get(0))
			if err != nil {
				return cli.Exit(fmt.Errorf("bad hex: %w", err), 1)
			}

			ev, err := events.DecodeEvent(data)
			if err != nil {
				logger.Error("decode failed", zap.Error(err))
				return cli.Exit(err, 1)
			}

			if unk, ok := ev.(events.UnknownEvent); ok {
				logger.Warn("unrecognized discriminator", zap.Binary("discriminator", unk.Discriminator[:]))
			}

			out, err := json.MarshalIndent(ev, "", "  ")
			if err != nil {
				return cli.Exit(err, 1)
			}
			fmt.Fprintln(c.App.Writer, string(out))

			if ch, err := openCache(c); err == nil && ch != nil {
				defer ch.Close()
				_ = ch.PutEvent(c.Args().Get(0)[:min(16, len(c.Args().Get(0)))], cache.Entry{
					Name: ev.EventName(), Data: data, DecodedAt: time.Now(),
				})
			}
			return nil
		},
	}
}

// buildInstructionCommand builds an instruction's discriminator-prefixed data
// blob from a JSON args object and a JSON {slot-name: base58-pubkey} map,
// printing the resulting hex data and the ordered account-meta table.
func buildInstructionCommand() *cli.Command {
	return &cli.Command{
		Name:      "build-instruction",
		Usage:     "encode an instruction's data blob and account-meta table",
		ArgsUsage: "<instruction-name> <args-json> <accounts-json>",
		Action: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool("verbose"))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if c.Args().Len() != 3 {
				return cli.Exit("usage: idlcli build-instruction <name> <args-json> <accounts-json>", 1)
			}
			name := c.Args().Get(0)

			var rawArgs map[string]any
			if err := json.Unmarshal([]byte(c.Args().Get(1)), &rawArgs); err != nil {
				return cli.Exit(fmt.Errorf("bad args json: %w", err), 1)
			}
			var rawAccounts map[string]string
			if err := json.Unmarshal([]byte(c.Args().Get(2)), &rawAccounts); err != nil {
				return cli.Exit(fmt.Errorf("bad accounts json: %w", err), 1)
			}

			accountPubkeys := make(map[string]codec.PublicKey, len(rawAccounts))
			for slot, b58 := range rawAccounts {
				pk, err := codec.PublicKeyFromBase58(b58)
				if err != nil {
					return cli.Exit(fmt.Errorf("account %s: %w", slot, err), 1)
				}
				accountPubkeys[slot] = pk
			}

			args, err := decodeArgsForInstruction(name, rawArgs)
			if err != nil {
				return cli.Exit(err, 1)
			}

			data, metas, err := instructions.Build(name, args, accountPubkeys)
			if err != nil {
				logger.Error("build failed", zap.Error(err))
				return cli.Exit(err, 1)
			}

			type metaJSON struct {
				Pubkey     string `json:"pubkey"`
				IsSigner   bool   `json:"is_signer"`
				IsWritable bool   `json:"is_writable"`
			}
			metaOut := make([]metaJSON, len(metas))
			for i, m := range metas {
				metaOut[i] = metaJSON{Pubkey: m.Pubkey.String(), IsSigner: m.IsSigner, IsWritable: m.IsWritable}
			}

			out, err := json.MarshalIndent(struct {
				DataHex  string     `json:"data_hex"`
				Accounts []metaJSON `json:"accounts"`
			}{hex.EncodeToString(data), metaOut}, "", "  ")
			if err != nil {
				return cli.Exit(err, 1)
			}
			fmt.Fprintln(c.App.Writer, string(out))
			return nil
		},
	}
}

// decodeArgsForInstruction is intentionally minimal: it round-trips the
// generic JSON object through the instruction's concrete args struct so
// instructions.Build gets a value of the exact type its schema expects,
// rather than a bare map[string]any.
func decodeArgsForInstruction(name string, raw map[string]any) (any, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	target, ok := instructions.NewArgs(name)
	if !ok {
		return nil, fmt.Errorf("unknown instruction: %s", name)
	}
	if err := json.Unmarshal(buf, target); err != nil {
		return nil, fmt.Errorf("args for %s: %w", name, err)
	}
	return reflect.ValueOf(target).Elem().Interface(), nil
}

func validateDiscriminatorsCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate-discriminators",
		Usage: "recompute every discriminator from its name and flag pinned overrides",
		Action: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool("verbose"))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			mismatches := idl.ValidateDiscriminatorTable()
			if len(mismatches) == 0 {
				fmt.Fprintln(c.App.Writer, "all discriminators match their canonical formula")
				return nil
			}
			sort.Strings(mismatches)
			fmt.Fprintln(c.App.Writer, "pinned / non-canonical discriminators (expected for documented overrides):")
			for _, m := range mismatches {
				fmt.Fprintln(c.App.Writer, "  "+m)
			}
			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list registered schema names",
		Subcommands: []*cli.Command{
			{
				Name: "accounts",
				Action: func(c *cli.Context) error {
					names := idl.RegisteredAccountNames()
					sort.Strings(names)
					for _, n := range names {
						fmt.Fprintln(c.App.Writer, n)
					}
					return nil
				},
			},
			{
				Name: "instructions",
				Action: func(c *cli.Context) error {
					names := instructions.RegisteredInstructionNames()
					sort.Strings(names)
					for _, n := range names {
						fmt.Fprintln(c.App.Writer, n)
					}
					return nil
				},
			},
		},
	}
}
