package models

import "time"

// Room represents a bookable hotel room offered on the marketplace.
type Room struct {
	ID          string    `bson:"id" json:"id"`
	HotelID     string    `bson:"hotelId" json:"hotelId"`
	Number      string    `bson:"number" json:"number"`
	Type        string    `bson:"type" json:"type"` // e.g. "standard", "deluxe", "suite"
	NightlyRate float64   `bson:"nightlyRate" json:"nightlyRate"`
	Capacity    int       `bson:"capacity" json:"capacity"`
	Amenities   []string  `bson:"amenities" json:"amenities"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Available   bool      `bson:"available" json:"available"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RoomSearchCriteria narrows a catalog search. Zero values mean "any".
type RoomSearchCriteria struct {
	Type        string  `json:"type,omitempty"`
	MinCapacity int     `json:"minCapacity,omitempty"`
	MaxRate     float64 `json:"maxRate,omitempty"`
}
