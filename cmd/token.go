package cmd

import (
	"errors"
	"fmt"
	"redactsync/pkg/jwt"
	"time"

	"github.com/urfave/cli/v2"
)

// Token mints the bearer token a wallet host uses to read snapshots and to
// push transaction notices and session changes.
var Token = cli.Command{
	Action: mintToken,
	Name:   "token",
	Usage:  "prints a signed API token",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "subject",
			Value: "wallet-host",
		},
		&cli.StringSliceFlag{
			Name:  "scope",
			Value: cli.NewStringSlice(jwt.ScopeRead, jwt.ScopeWrite),
		},
		&cli.DurationFlag{
			Name:  "ttl",
			Value: 30 * 24 * time.Hour,
		},
		&cli.StringFlag{
			Name:    "secret",
			EnvVars: []string{"JWT_SECRET"},
		},
	},
}

func mintToken(c *cli.Context) error {
	secret := c.String("secret")
	if secret == "" {
		return errors.New("missing JWT secret")
	}

	signed, err := jwt.NewJWTService([]byte(secret)).Issue(jwt.TokenInfo{
		Subject:    c.String("subject"),
		Scopes:     c.StringSlice("scope"),
		Expiration: c.Duration("ttl"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, signed)
	return nil
}
