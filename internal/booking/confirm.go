// Package booking produces one-shot booking acknowledgments. There is no
// booking ledger: a confirmation is a message, not a persisted record.
package booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/skybook/skybook/internal/models"
	"github.com/skybook/skybook/pkg/currency"
)

// Confirmation summarizes a successful booking acknowledgment.
type Confirmation struct {
	Reference string
	Message   string
	Flight    models.Flight
}

// Confirm looks the flight up among the currently displayed results only.
// A stale id (not in results) returns (nil, false) with no side effects.
func Confirm(flightID int, results []models.Flight) (*Confirmation, bool) {
	for _, f := range results {
		if f.ID != flightID {
			continue
		}
		ref := uuid.New().String()[:8]
		msg := fmt.Sprintf(
			"Flight booked successfully! Flight: %s, Route: %s → %s, Departure: %s, Price: %s. Thank you for choosing SkyBook!",
			f.Airline, f.Origin, f.Destination, f.Departure, currency.FormatUSD(f.Price),
		)
		return &Confirmation{
			Reference: ref,
			Message:   msg,
			Flight:    f,
		}, true
	}
	return nil, false
}
