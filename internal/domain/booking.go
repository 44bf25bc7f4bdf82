package domain

import "time"

// Booking is a customer booking reachable by its public tracking ID.
type Booking struct {
	ID           int64
	Service      string
	CustomerName string
	Email        string
	Phone        string
	TrackingID   string
	CreatedAt    time.Time
}

// TimelineEvent is one step of the tracking timeline shown to customers.
// The timeline beyond the first event is canned; there is no real-time
// carrier feed behind it.
type TimelineEvent struct {
	Status    string
	Date      string
	Completed bool
}
