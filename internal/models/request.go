package models

// SearchRequest carries the search form fields as submitted. All values are
// raw strings; trimming and semantic checks happen in the validate package.
type SearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    string `json:"passengers"`
	TravelClass   string `json:"travel_class"`
}

// Credentials carries a login or registration submission. The password is
// validated and then discarded; it is never stored or checked against
// anything on later logins.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm,omitempty"`
}

// BookingRequest references a flight from the currently displayed results.
type BookingRequest struct {
	FlightID int `json:"flight_id"`
}
