package handler

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skybook/skybook/internal/booking"
	"github.com/skybook/skybook/internal/catalog"
	"github.com/skybook/skybook/internal/models"
	"github.com/skybook/skybook/internal/search"
	"github.com/skybook/skybook/internal/validate"
)

// SearchHandler serves flight search and booking. It retains the most
// recently completed search (query and results); when searches overlap, the
// last one to finish wins, and bookings are resolved against that snapshot.
type SearchHandler struct {
	service *search.Service

	mu            sync.Mutex
	activeQuery   *models.SearchRequest
	activeResults []models.Flight
}

func NewSearchHandler(svc *search.Service) *SearchHandler {
	return &SearchHandler{service: svc}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if errs := validate.Search(req); !errs.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse{
			Error:  "validation_error",
			Fields: errs,
			Code:   http.StatusUnprocessableEntity,
		})
	}

	flights, err := h.service.Search(ctx, req)
	if err != nil {
		if errors.Is(err, search.ErrInternal) {
			// A fault surfaces as zero results, not as a failed request.
			log.Printf("Search fault: %v", err)
			flights = []models.Flight{}
		} else {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "search_error",
				Message: "Failed to search flights: " + err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
	}

	h.mu.Lock()
	h.activeQuery = &req
	h.activeResults = flights
	h.mu.Unlock()

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			TotalResults: len(flights),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
		},
		Flights: flights,
	})
}

// ListFlights returns the full catalog in source order.
func (h *SearchHandler) ListFlights(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.All())
}

// Book acknowledges a booking for a flight in the retained results. A stale
// id changes nothing and reports not found.
func (h *SearchHandler) Book(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	h.mu.Lock()
	query := h.activeQuery
	results := h.activeResults
	h.mu.Unlock()

	conf, ok := booking.Confirm(req.FlightID, results)
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "flight_not_found",
			Message: "Flight is not among the current search results",
			Code:    http.StatusNotFound,
		})
	}

	return c.JSON(http.StatusOK, models.BookingResponse{
		Reference: conf.Reference,
		Message:   conf.Message,
		Flight:    conf.Flight,
		Criteria:  query,
	})
}
