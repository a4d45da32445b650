package models

import (
	"time"

	"bling/slots"
)

// Booking statuses. Pending is the creation state; approved and declined are
// terminal for the owner-driven flow. Only approved bookings block dates.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// Booking sources.
const (
	SourceWebRequest = "web_request"
	SourceManual     = "manual"
)

// Event types. The type selects which detail struct must be present.
const (
	EventTypeGig     = "live_gig"
	EventTypePrivate = "private_event"
)

type Booking struct {
	ID          string     `json:"id" bson:"id"`
	VenueID     string     `json:"venueId" bson:"venueId"`
	VenueName   string     `json:"venueName,omitempty" bson:"venueName,omitempty"`
	OwnerID     string     `json:"ownerId" bson:"ownerId"`
	BookerID    string     `json:"bookerId" bson:"bookerId"`
	BookerName  string     `json:"bookerName" bson:"bookerName"`
	BookerEmail string     `json:"bookerEmail" bson:"bookerEmail"`
	BookerPhone string     `json:"bookerPhone,omitempty" bson:"bookerPhone,omitempty"`
	Date        time.Time  `json:"date" bson:"date"`
	Slot        slots.Slot `json:"slot" bson:"slot"`
	Status      string     `json:"status" bson:"status"`
	EventType   string     `json:"eventType" bson:"eventType"`
	Message     string     `json:"message,omitempty" bson:"message,omitempty"`
	Source      string     `json:"source" bson:"source"`

	// Exactly one of these is set, matching EventType.
	Gig     *GigDetails          `json:"gig,omitempty" bson:"gig,omitempty"`
	Private *PrivateEventDetails `json:"private,omitempty" bson:"private,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type GigDetails struct {
	ApplicantRole string   `json:"applicantRole" bson:"applicantRole"`
	TicketSales   string   `json:"ticketSales" bson:"ticketSales"`
	SoundEngineer string   `json:"soundEngineer" bson:"soundEngineer"`
	RiderDetails  string   `json:"riderDetails,omitempty" bson:"riderDetails,omitempty"`
	Lineup        []Artist `json:"lineup,omitempty" bson:"lineup,omitempty"`
}

type Artist struct {
	Name          string `json:"name" bson:"name"`
	SocialLink    string `json:"socialLink,omitempty" bson:"socialLink,omitempty"`
	StreamingLink string `json:"streamingLink,omitempty" bson:"streamingLink,omitempty"`
}

type PrivateEventDetails struct {
	ExpectedGuests int    `json:"expectedGuests,omitempty" bson:"expectedGuests,omitempty"`
	Organization   string `json:"organization,omitempty" bson:"organization,omitempty"`
}

// ValidEventType checks the discriminant against the detail structs: a gig
// booking must carry gig details and no private details, and vice versa.
func (b *Booking) ValidEventType() bool {
	switch b.EventType {
	case EventTypeGig:
		return b.Gig != nil && b.Private == nil
	case EventTypePrivate:
		return b.Private != nil && b.Gig == nil
	}
	return false
}

// CanTransition reports whether a booking may move from one status to another.
// Owners may only resolve pending requests; an admin override may flip a
// booking between the two terminal states.
func CanTransition(from, to string, adminOverride bool) bool {
	if from == StatusPending {
		return to == StatusApproved || to == StatusDeclined
	}
	if adminOverride {
		return (from == StatusApproved && to == StatusDeclined) ||
			(from == StatusDeclined && to == StatusApproved)
	}
	return false
}
