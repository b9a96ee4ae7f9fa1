package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/skybook/skybook/internal/models"
)

const dateLayout = "2006-01-02"

var passengerOptions = map[string]bool{
	"1": true, "2": true, "3": true, "4": true, "5+": true,
}

var travelClasses = map[string]bool{
	"economy": true, "business": true, "first": true,
}

// Search validates a search submission against today's date in local time.
func Search(req models.SearchRequest) Errors {
	return SearchAt(req, time.Now())
}

// SearchAt is Search with an explicit notion of "now", so callers and tests
// control the date the departure check compares against.
func SearchAt(req models.SearchRequest, now time.Time) Errors {
	errs := Errors{}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)

	if origin == "" {
		errs["origin"] = "Departure city is required"
	} else if utf8.RuneCountInString(origin) < 2 {
		errs["origin"] = "City name must be at least 2 characters"
	}

	if destination == "" {
		errs["destination"] = "Destination city is required"
	} else if utf8.RuneCountInString(destination) < 2 {
		errs["destination"] = "City name must be at least 2 characters"
	}

	// The mismatch message takes the destination slot even when a length
	// error was already recorded there.
	if origin != "" && strings.EqualFold(origin, destination) {
		errs["destination"] = "Destination must be different from departure city"
	}

	var departure time.Time
	if req.DepartureDate == "" {
		errs["departure_date"] = "Departure date is required"
	} else if d, err := time.Parse(dateLayout, req.DepartureDate); err != nil {
		errs["departure_date"] = "Departure date is not a valid date"
	} else {
		departure = d
		// Parsed dates and "today" are both midnight UTC, so Before is a
		// strict calendar-day comparison with time of day truncated.
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			errs["departure_date"] = "Departure date cannot be in the past"
		}
	}

	if req.ReturnDate != "" {
		if r, err := time.Parse(dateLayout, req.ReturnDate); err != nil {
			errs["return_date"] = "Return date is not a valid date"
		} else if !departure.IsZero() && !r.After(departure) {
			errs["return_date"] = "Return date must be after departure date"
		}
	}

	if req.Passengers == "" {
		errs["passengers"] = "Number of passengers is required"
	} else if !passengerOptions[req.Passengers] {
		errs["passengers"] = "Number of passengers must be 1, 2, 3, 4 or 5+"
	}

	if req.TravelClass == "" {
		errs["travel_class"] = "Travel class is required"
	} else if !travelClasses[strings.ToLower(req.TravelClass)] {
		errs["travel_class"] = "Travel class must be economy, business or first"
	}

	return errs
}
