package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
)

func NewApp() *cli.App {
	return &cli.App{
		Name:  "redactsync",
		Usage: "keeps confidential token balances and claims in sync with chain state",
		Commands: []*cli.Command{
			&Serve,
			&Dump,
			&Token,
		},
	}
}

func Start() error {
	return NewApp().Run(os.Args)
}
