package app

import "github.com/Dhruv5290/stay/internal/content"

// Message types for the Bubble Tea app.
type (
	contentLoadedMsg struct {
		listing *content.Listing
		err     error
	}
	contentReloadedMsg struct {
		listing *content.Listing
		err     error
	}
	watchEventMsg    struct{}
	splashMinMsg     struct{}
	resizeSettledMsg struct {
		seq    int
		width  int
		height int
	}
	settleMsg struct {
		strip stripID
		seq   int
	}
	animTickMsg   struct{}
	flashClearMsg struct{ seq int }
)

// stripID names the two carousel strips on the page.
type stripID int

const (
	stripRooms stripID = iota
	stripGallery
)

// section identifies one block of the page, in display order.
type section int

const (
	sectionHome section = iota
	sectionRooms
	sectionGallery
	sectionGuests
	sectionContact
	sectionCount
)

func (s section) title() string {
	switch s {
	case sectionHome:
		return "Home"
	case sectionRooms:
		return "Rooms"
	case sectionGallery:
		return "Gallery"
	case sectionGuests:
		return "Guests"
	case sectionContact:
		return "Contact"
	default:
		return ""
	}
}
