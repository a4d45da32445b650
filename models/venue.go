package models

import "time"

type Venue struct {
	VenueID       string    `json:"venueid" bson:"venueid"`
	Name          string    `json:"name" bson:"name"`
	Slug          string    `json:"slug" bson:"slug"`
	OwnerID       string    `json:"ownerId" bson:"ownerId"`
	Status        string    `json:"status" bson:"status"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	City          string    `json:"city,omitempty" bson:"city,omitempty"`
	Capacity      int       `json:"capacity,omitempty" bson:"capacity,omitempty"`
	VenueType     string    `json:"venueType,omitempty" bson:"venueType,omitempty"`
	VenueSubTypes []string  `json:"venueSubTypes,omitempty" bson:"venueSubTypes,omitempty"`
	Amenities     []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
	AddOns        []AddOn   `json:"addOns,omitempty" bson:"addOns,omitempty"`
	Currency      string    `json:"currency,omitempty" bson:"currency,omitempty"`
	BookingFee    int       `json:"bookingFee,omitempty" bson:"bookingFee,omitempty"`
	Banner        string    `json:"banner,omitempty" bson:"banner,omitempty"`
	BannerThumb   string    `json:"bannerThumb,omitempty" bson:"bannerThumb,omitempty"`
	ContactEmail  string    `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	ContactPhone  string    `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

type AddOn struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label" bson:"label"`
}

const (
	VenueStatusPending  = "pending"
	VenueStatusApproved = "approved"
	VenueStatusRejected = "rejected"
)
