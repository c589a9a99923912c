package model

import "time"

// Booking is a reservation record supplied by the booking collaborator. The
// prediction engine only cares whether any bookings exist for a station;
// richer history would feed a learned model later.
type Booking struct {
	ID        string    `json:"id"`
	StationID string    `json:"station_id"`
	StartTime time.Time `json:"start_time"`
}
