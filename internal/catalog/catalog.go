package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/skybook/skybook/internal/models"
)

// flights is the full dataset. It is fixed for the process lifetime; no
// record is ever added, removed, or mutated.
var flights = []models.Flight{
	{
		ID:          1,
		Airline:     "SkyWings Airlines",
		Origin:      "New York",
		Destination: "London",
		Departure:   "08:30",
		Arrival:     "20:45",
		Duration:    "7h 15m",
		Price:       899,
	},
	{
		ID:          2,
		Airline:     "CloudJet",
		Origin:      "New York",
		Destination: "London",
		Departure:   "14:20",
		Arrival:     "02:35",
		Duration:    "7h 15m",
		Price:       1249,
	},
	{
		ID:          3,
		Airline:     "AeroLink",
		Origin:      "London",
		Destination: "Paris",
		Departure:   "10:15",
		Arrival:     "11:30",
		Duration:    "1h 15m",
		Price:       299,
	},
	{
		ID:          4,
		Airline:     "EuroFly",
		Origin:      "Paris",
		Destination: "Tokyo",
		Departure:   "16:40",
		Arrival:     "11:20",
		Duration:    "12h 40m",
		Price:       1599,
	},
}

// All returns a copy of every flight in catalog order.
func All() []models.Flight {
	out := make([]models.Flight, len(flights))
	copy(out, flights)
	return out
}

// Find returns the flight with the given id.
func Find(id int) (models.Flight, bool) {
	for _, f := range flights {
		if f.ID == id {
			return f, true
		}
	}
	return models.Flight{}, false
}

// Catalog searches the fixed dataset behind a simulated network delay.
type Catalog struct {
	delay time.Duration
}

// New returns a Catalog whose Search suspends for delay before filtering.
// A zero delay makes Search synchronous, which tests rely on.
func New(delay time.Duration) *Catalog {
	return &Catalog{delay: delay}
}

func (c *Catalog) Name() string {
	return "catalog"
}

// Search filters the catalog by case-insensitive substring match of the
// query origin and destination against each record. Catalog order is
// preserved and the result may be empty.
func (c *Catalog) Search(ctx context.Context, req models.SearchRequest) ([]models.Flight, error) {
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	origin := strings.ToLower(strings.TrimSpace(req.Origin))
	destination := strings.ToLower(strings.TrimSpace(req.Destination))

	results := make([]models.Flight, 0)
	for _, f := range flights {
		if !strings.Contains(strings.ToLower(f.Origin), origin) {
			continue
		}
		if !strings.Contains(strings.ToLower(f.Destination), destination) {
			continue
		}
		results = append(results, f)
	}

	return results, nil
}
