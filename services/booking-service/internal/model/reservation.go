package model

import "time"

// Reservation is a slot (or unit) booking for a date range. It starts
// pending when a deposit is due and flips to confirmed when billing reports
// the deposit paid.
type Reservation struct {
	ID            string
	PropertyID    string
	UserID        string
	GuestName     string
	GuestPhone    string
	SlotIDs       []int
	Units         map[string]int
	FromDate      time.Time
	ToDate        time.Time
	DepositAmount float64
	Currency      string
	Status        string
	CancelReason  string
	CancelledAt   *time.Time
	CreatedAt     time.Time
}

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Tour is a property visit booked at one of the enumerated half-hour times.
type Tour struct {
	ID         string
	PropertyID string
	UserID     string
	GuestName  string
	GuestPhone string
	Date       time.Time
	TimeLabel  string
	CreatedAt  time.Time
}
