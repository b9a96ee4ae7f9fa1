package models

// Flight is a single bookable flight in the catalog. Departure and arrival
// are display strings in HH:MM form; they are never parsed as clock times.
type Flight struct {
	ID          int    `json:"id"`
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Duration    string `json:"duration"`
	Price       int    `json:"price"`
}
