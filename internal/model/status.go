package model

// Status is the qualitative booking level of a day against the daily time
// budget.
type Status string

// Booking statuses, least to most booked.
const (
	StatusUnderbooked Status = "underbooked"
	StatusApproaching Status = "approaching"
	StatusFull        Status = "full"
	StatusOverbooked  Status = "overbooked"
)
