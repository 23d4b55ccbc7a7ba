package main

import (
	"github.com/urfave/cli/v2"
)

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "socialharmony"
	s.app.Usage = "Browse and join fundraising games on Harmony"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path of the TOML config file",
			EnvVars: []string{"CONFIG_FILE"},
		},
		&cli.StringFlag{
			Name:  "env",
			Value: ".env",
			Usage: "Path of an optional env file",
		},
	}
	s.app.Before = s.before
	s.app.After = s.after

	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Server",
			Description: `Serves organisations, games, reporting and stored snapshots as a JSON api.`,
		},
		{
			Action:      s.startSubscriber,
			Name:        "subscriber",
			Usage:       "Start the game activity subscriber",
			Category:    "Server",
			Description: `Consumes join and endorse events and refreshes the stored game views.`,
		},
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Apply database migrations",
			Category: "Server",
		},
		{
			Action:   s.listGames,
			Name:     "games",
			Usage:    "List games",
			Category: "Query",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "status", Usage: "Only games with this status"},
				&cli.StringFlag{Name: "organisation", Usage: "Only games owned by this address"},
			},
		},
		{
			Action:    s.getGame,
			Name:      "game",
			Usage:     "Show a game",
			ArgsUsage: "<gameAddress>",
			Category:  "Query",
		},
		{
			Action:    s.listCharities,
			Name:      "charities",
			Usage:     "List charities, or show one with its games",
			ArgsUsage: "[organisationID]",
			Category:  "Query",
		},
		{
			Action:   s.getReport,
			Name:     "report",
			Usage:    "Show the overall report",
			Category: "Query",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "history", Usage: "Show recorded reports instead of the live one"},
				&cli.IntFlag{Name: "limit", Value: 10, Usage: "Number of recorded reports"},
			},
		},
		{
			Action:    s.getSnapshot,
			Name:      "snapshot",
			Usage:     "Show the last stored view of a kind",
			ArgsUsage: "<kind> [key]",
			Category:  "Query",
		},
		{
			Action:   s.getBalance,
			Name:     "balance",
			Usage:    "Sign in and show the wallet balance",
			Category: "Wallet",
		},
		{
			Action:    s.joinGame,
			Name:      "join",
			Usage:     "Buy a ticket of a game",
			ArgsUsage: "<gameAddress>",
			Category:  "Wallet",
		},
		{
			Action:    s.endorseGame,
			Name:      "endorse",
			Usage:     "Endorse a game",
			ArgsUsage: "<gameAddress>",
			Category:  "Wallet",
		},
	}
}
