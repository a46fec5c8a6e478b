package models

import "time"

// BookingConfirmation is returned to the client after a successful submission.
type BookingConfirmation struct {
	BookingID          string    `bson:"bookingId" json:"bookingId"`
	ConfirmationNumber string    `bson:"confirmationNumber" json:"confirmationNumber"`
	TotalAmount        float64   `bson:"totalAmount" json:"totalAmount"`
	Currency           string    `bson:"currency" json:"currency"`
	PaymentStatus      string    `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}
