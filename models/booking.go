package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID                 string    `bson:"id" json:"id"`                                 // Unique booking identifier (UUID)
	ConfirmationNumber string    `bson:"confirmationNumber" json:"confirmationNumber"` // Short human-readable reference
	RoomID             string    `bson:"roomId" json:"roomId"`
	RoomType           string    `bson:"roomType" json:"roomType"`
	UserID             string    `bson:"userId" json:"userId"`
	GuestName          string    `bson:"guestName" json:"guestName"`
	GuestEmail         string    `bson:"guestEmail" json:"guestEmail"`
	GuestPhone         string    `bson:"guestPhone" json:"guestPhone"`
	CheckIn            string    `bson:"checkIn" json:"checkIn"`   // "YYYY-MM-DD"
	CheckOut           string    `bson:"checkOut" json:"checkOut"` // "YYYY-MM-DD"
	Adults             int       `bson:"adults" json:"adults"`
	Children           int       `bson:"children" json:"children"`
	SpecialRequests    string    `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	TotalAmount        float64   `bson:"totalAmount" json:"totalAmount"`
	Currency           string    `bson:"currency" json:"currency"`
	PaymentStatus      string    `bson:"paymentStatus" json:"paymentStatus"` // e.g. "paid", "pending"
	InvoiceID          string    `bson:"invoiceId,omitempty" json:"invoiceId,omitempty"`
	Status             string    `bson:"status" json:"status"` // e.g. "Confirmed", "Cancelled"
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}
