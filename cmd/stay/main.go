// Package main is the entry point for the stay application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"

	"github.com/Dhruv5290/stay/internal/app"
	"github.com/Dhruv5290/stay/internal/buildinfo"
	"github.com/Dhruv5290/stay/internal/config"
	"github.com/Dhruv5290/stay/internal/log"
	"github.com/Dhruv5290/stay/internal/theme"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date)
	buildinfo.Enrich()

	cliApp := &urfavecli.App{
		Name:                 "stay",
		Usage:                "A homestay listing page for the terminal",
		Version:              buildinfo.Version(),
		EnableBashCompletion: true,

		Flags: globalFlags(),

		Before: func(c *urfavecli.Context) error {
			if c.Bool("list-themes") {
				printThemes()
				os.Exit(0)
			}
			return nil
		},

		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(c *urfavecli.Context) error {
	// Set up debug logging before loading config so early messages are
	// kept.
	if debugLog := c.String("debug-log"); debugLog != "" {
		path := debugLog
		if expanded, err := config.ExpandPath(debugLog); err == nil {
			path = expanded
		}
		if err := log.SetFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
		}
	}

	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// If the flag did not set a debug log, the config may still name one.
	if c.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			path := cfg.DebugLog
			if expanded, err := config.ExpandPath(cfg.DebugLog); err == nil {
				path = expanded
			}
			if err := log.SetFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", path, err)
			}
		} else {
			_ = log.SetFile("")
		}
	}

	if err := applyThemeConfig(cfg, c.String("theme")); err != nil {
		_ = log.Close()
		return err
	}
	if err := applyContentConfig(cfg, c.String("content")); err != nil {
		_ = log.Close()
		return err
	}

	if c.Bool("no-watch") {
		cfg.WatchContent = false
	}
	if c.Bool("reduced-motion") {
		cfg.ReducedMotion = true
	}

	if c.Bool("print") {
		err := runPrint(cfg)
		_ = log.Close()
		return err
	}

	log.Printf("stay %s starting", buildinfo.Version())

	model := app.NewModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, err = p.Run()
	model.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		_ = log.Close()
		return err
	}

	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
	}
	return nil
}

// applyThemeConfig validates the theme from the flag or the config file.
// The flag wins.
func applyThemeConfig(cfg *config.AppConfig, themeFlag string) error {
	name := cfg.Theme
	if themeFlag != "" {
		name = themeFlag
	}
	if name == "" {
		cfg.Theme = theme.DefaultDark()
		return nil
	}

	normalized := theme.Normalize(name)
	if normalized == "" {
		return fmt.Errorf("unknown theme %q (available: %v)", name, theme.AvailableThemes())
	}
	cfg.Theme = normalized
	return nil
}

// applyContentConfig resolves the listing file from the flag or the
// config file. The flag wins; empty means the built-in listing.
func applyContentConfig(cfg *config.AppConfig, contentFlag string) error {
	path := cfg.ContentFile
	if contentFlag != "" {
		path = contentFlag
	}
	if path == "" {
		cfg.ContentFile = ""
		return nil
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("error expanding content path: %w", err)
	}
	if _, err := os.Stat(expanded); err != nil {
		return fmt.Errorf("listing file %q: %w", expanded, err)
	}
	cfg.ContentFile = expanded
	return nil
}

func printThemes() {
	fmt.Println("Available themes:")
	for _, name := range theme.AvailableThemes() {
		kind := "dark"
		if theme.IsLight(name) {
			kind = "light"
		}
		fmt.Printf("  %-10s (%s)\n", name, kind)
	}
}
