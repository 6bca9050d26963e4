// Package content loads the listing content shown on the page, either
// from a YAML file or from the built-in defaults.
package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/Dhruv5290/stay/internal/models"
	"gopkg.in/yaml.v3"
)

// Listing is everything the page renders: the property, its rooms, the
// gallery, and guest testimonials.
type Listing struct {
	Name         string               `yaml:"name"`
	Tagline      string               `yaml:"tagline"`
	About        string               `yaml:"about"`
	Rooms        []models.Room        `yaml:"rooms"`
	Gallery      []models.Photo       `yaml:"gallery"`
	Testimonials []models.Testimonial `yaml:"testimonials"`
	Contact      models.Contact       `yaml:"contact"`
}

// Load reads a listing from a YAML file. Fields missing from the file
// fall back to the defaults; malformed entries are dropped rather than
// reported, the page renders whatever survives.
func Load(path string) (*Listing, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own config
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	listing := &Listing{}
	if err := yaml.Unmarshal(data, listing); err != nil {
		return nil, fmt.Errorf("parse content file: %w", err)
	}

	listing.normalize()
	return listing, nil
}

// normalize trims fields, drops entries without the bits the page needs,
// and fills gaps from the defaults.
func (l *Listing) normalize() {
	def := Default()

	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		l.Name = def.Name
	}
	l.Tagline = strings.TrimSpace(l.Tagline)
	if l.Tagline == "" {
		l.Tagline = def.Tagline
	}
	l.About = strings.TrimSpace(l.About)
	if l.About == "" {
		l.About = def.About
	}

	rooms := l.Rooms[:0]
	for _, r := range l.Rooms {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" {
			continue
		}
		if r.Capacity < 1 {
			r.Capacity = 1
		}
		rooms = append(rooms, r)
	}
	l.Rooms = rooms

	gallery := l.Gallery[:0]
	for _, p := range l.Gallery {
		p.Title = strings.TrimSpace(p.Title)
		if p.Title == "" {
			continue
		}
		gallery = append(gallery, p)
	}
	l.Gallery = gallery

	testimonials := l.Testimonials[:0]
	for _, t := range l.Testimonials {
		t.Quote = strings.TrimSpace(t.Quote)
		if t.Quote == "" {
			continue
		}
		if t.Author == "" {
			t.Author = "A guest"
		}
		if t.Rating < 1 {
			t.Rating = 1
		}
		if t.Rating > 5 {
			t.Rating = 5
		}
		testimonials = append(testimonials, t)
	}
	l.Testimonials = testimonials
}
