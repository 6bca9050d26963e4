// Package models defines the domain types shared across the application.
package models

// Room is one bookable room on the listing.
type Room struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       string   `yaml:"price"`
	Capacity    int      `yaml:"capacity"`
	Amenities   []string `yaml:"amenities"`
}

// Photo is one gallery entry. Art holds the glyph-art lines rendered in
// the card and, enlarged, in the lightbox.
type Photo struct {
	Title   string   `yaml:"title"`
	Caption string   `yaml:"caption"`
	Art     []string `yaml:"art"`
}

// Testimonial is a guest quote shown on the page.
type Testimonial struct {
	Author   string `yaml:"author"`
	Location string `yaml:"location"`
	Quote    string `yaml:"quote"`
	Rating   int    `yaml:"rating"`
}

// Contact holds the host's contact details.
type Contact struct {
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
}

// Inquiry is a booking inquiry composed in the contact form. It is never
// sent anywhere or persisted; submission only drives the page feedback.
type Inquiry struct {
	Name    string
	Email   string
	Dates   string
	Message string
}

// Valid reports whether the inquiry has the required fields.
func (i Inquiry) Valid() bool {
	return i.Name != "" && i.Email != ""
}
