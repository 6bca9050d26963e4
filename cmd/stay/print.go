package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/Dhruv5290/stay/internal/config"
	"github.com/Dhruv5290/stay/internal/content"
)

// runPrint writes the listing to stdout without starting the TUI, for
// piping and quick checks.
func runPrint(cfg *config.AppConfig) error {
	var listing *content.Listing
	if cfg.ContentFile == "" {
		listing = content.Default()
	} else {
		var err error
		listing, err = content.Load(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("load listing: %w", err)
		}
	}

	width := printWidth()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", listing.Name, listing.Tagline)
	fmt.Fprintf(&b, "%s\n", wordwrap.String(listing.About, width))

	if len(listing.Rooms) > 0 {
		fmt.Fprintf(&b, "\nRooms\n")
		for _, room := range listing.Rooms {
			fmt.Fprintf(&b, "  %-20s %-14s sleeps %d\n", room.Name, room.Price, room.Capacity)
			if len(room.Amenities) > 0 {
				fmt.Fprintf(&b, "  %20s %s\n", "", strings.Join(room.Amenities, ", "))
			}
		}
	}

	if len(listing.Testimonials) > 0 {
		fmt.Fprintf(&b, "\nGuests\n")
		for _, t := range listing.Testimonials {
			quote := wordwrap.String(t.Quote, width-2)
			for _, line := range strings.Split(quote, "\n") {
				fmt.Fprintf(&b, "  %s\n", line)
			}
			fmt.Fprintf(&b, "    -- %s, %s (%d/5)\n", t.Author, t.Location, t.Rating)
		}
	}

	c := listing.Contact
	fmt.Fprintf(&b, "\nContact\n  %s\n  %s\n  %s\n", c.Phone, c.Email, c.Address)

	_, err := fmt.Print(b.String())
	return err
}

// printWidth is the wrap width for --print: the terminal width when
// stdout is a terminal, otherwise a fixed 80 columns for pipes.
func printWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 20 {
		return 80
	}
	if w > 100 {
		return 100
	}
	return w
}
