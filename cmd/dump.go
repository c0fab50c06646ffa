package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"redactsync/internal/claim"
	"redactsync/internal/config"
	"redactsync/internal/core"
	"redactsync/internal/decrypt"
	"redactsync/internal/storage"
	"redactsync/internal/token"

	"github.com/urfave/cli/v2"
)

var Dump = cli.Command{
	Action: dump,
	Name:   "dump",
	Usage:  "prints the persisted state as JSON",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "backend",
			Value:   config.BackendLevelDB,
			EnvVars: []string{"STORAGE_BACKEND"},
		},
		&cli.StringFlag{
			Name:    "path",
			Value:   "data/redactsync",
			EnvVars: []string{"LEVELDB_PATH"},
		},
		&cli.StringFlag{
			Name:    "dsn",
			EnvVars: []string{"DB_CONNECTION_URL"},
		},
	},
}

type dumpOutput struct {
	Claims      *claim.State     `json:"claims,omitempty"`
	Decryptions []decrypt.Result `json:"decryptions,omitempty"`
	Tokens      *token.State     `json:"tokens,omitempty"`
}

func dump(c *cli.Context) error {
	kv, err := openKV(c.String("backend"), c.String("path"), c.String("dsn"))
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	snapshots := storage.NewSnapshots(kv)

	out, err := readSnapshots(c.Context, snapshots)
	if err != nil {
		return errors.Join(err, snapshots.Close())
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return errors.Join(encoder.Encode(out), snapshots.Close())
}

func readSnapshots(ctx context.Context, snapshots *storage.Snapshots) (dumpOutput, error) {
	var out dumpOutput

	var claims claim.State
	found, err := snapshots.Load(ctx, core.KeyClaims, &claims)
	if err != nil {
		return out, fmt.Errorf("load claims: %w", err)
	}
	if found {
		out.Claims = &claims
	}

	found, err = snapshots.Load(ctx, core.KeyDecryptions, &out.Decryptions)
	if err != nil {
		return out, fmt.Errorf("load decryptions: %w", err)
	}
	if !found {
		out.Decryptions = nil
	}

	var tokens token.State
	found, err = snapshots.Load(ctx, core.KeyTokens, &tokens)
	if err != nil {
		return out, fmt.Errorf("load tokens: %w", err)
	}
	if found {
		out.Tokens = &tokens
	}

	return out, nil
}
