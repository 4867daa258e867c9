package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ReservationRequest carries the raw form values of a table booking.
// Guests is a string because "10+" is a valid selection alongside "1".."10".
type ReservationRequest struct {
	CustomerName  string
	CustomerPhone string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM, from the slot grid
	Guests        string
}

// Reservation is the persisted booking record. It is immutable once stored;
// status transitions are driven elsewhere, a new record always starts pending.
type Reservation struct {
	ID            int64
	OutletID      string
	OutletName    string
	CustomerName  string
	CustomerPhone string
	Date          string
	Time          string
	Guests        string
	Status        ReservationStatus
	CreatedAt     time.Time

	// ConfirmationCode is the receipt token shown to the customer.
	ConfirmationCode string
}
