package domain

import "time"

type BookingStatus string

const (
	BookingStatusReserved  BookingStatus = "RESERVED"
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is another party's reservation of an item for a date window.
// Start and end dates are inclusive calendar days.
type Booking struct {
	ID           int32         `json:"id"`
	ItemID       int32         `json:"item_id"`
	RentalID     int32         `json:"rental_id"`
	CustomerID   int32         `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	Quantity     int32         `json:"quantity"`
	StartDate    time.Time     `json:"start_date"`
	EndDate      time.Time     `json:"end_date"`
	Status       BookingStatus `json:"status"`
}
