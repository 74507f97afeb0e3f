package models

import "go.mongodb.org/mongo-driver/bson"

// Booking is a customer's booking of a service. Bookings are looked up by
// email; all other fields are opaque.
type Booking bson.M

// Email field on booking documents.
const BookingEmailField = "email"

// DeleteResult mirrors the acknowledgement the bookings delete route returns.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
