// Package main provides CLI flag definitions for stay.
package main

import (
	urfavecli "github.com/urfave/cli/v2"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "content",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML listing file (default: the built-in listing)",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.BoolFlag{
			Name:  "no-watch",
			Usage: "Do not reload the page when the listing file changes",
		},
		&urfavecli.BoolFlag{
			Name:  "reduced-motion",
			Usage: "Jump between cards instead of animating",
		},
		&urfavecli.BoolFlag{
			Name:    "print",
			Aliases: []string{"p"},
			Usage:   "Print the listing to stdout and exit",
		},
		&urfavecli.BoolFlag{
			Name:  "list-themes",
			Usage: "List available UI themes",
		},
	}
}
