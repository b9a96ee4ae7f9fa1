package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybook/skybook/internal/catalog"
	"github.com/skybook/skybook/internal/models"
	"github.com/skybook/skybook/internal/search"
)

func newSearchHandler() *SearchHandler {
	return NewSearchHandler(search.NewService(catalog.New(0)))
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func searchBody(origin, destination string) string {
	departure := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	req := models.SearchRequest{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departure,
		Passengers:    "1",
		TravelClass:   "economy",
	}
	b, _ := json.Marshal(req)
	return string(b)
}

func TestSearchHandler_Search(t *testing.T) {
	h := newSearchHandler()

	rec := postJSON(t, h.Search, searchBody("New York", "London"))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Metadata.TotalResults)
	require.Len(t, resp.Flights, 2)
	assert.Equal(t, 1, resp.Flights[0].ID)
	assert.Equal(t, 2, resp.Flights[1].ID)
	assert.Equal(t, "New York", resp.SearchCriteria.Origin)
}

func TestSearchHandler_SearchNoMatches(t *testing.T) {
	h := newSearchHandler()

	rec := postJSON(t, h.Search, searchBody("Madrid", "Oslo"))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 0, resp.Metadata.TotalResults)
	assert.Empty(t, resp.Flights)
}

func TestSearchHandler_ValidationErrors(t *testing.T) {
	h := newSearchHandler()

	rec := postJSON(t, h.Search, `{"origin":"London","destination":"London"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.ValidationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "Destination must be different from departure city", resp.Fields["destination"])
	assert.Contains(t, resp.Fields, "departure_date")
	assert.Contains(t, resp.Fields, "passengers")
	assert.Contains(t, resp.Fields, "travel_class")
}

func TestSearchHandler_MalformedBody(t *testing.T) {
	h := newSearchHandler()

	rec := postJSON(t, h.Search, `{"origin":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type panickingProvider struct{}

func (panickingProvider) Name() string { return "broken" }

func (panickingProvider) Search(ctx context.Context, req models.SearchRequest) ([]models.Flight, error) {
	panic("boom")
}

func TestSearchHandler_FaultServesEmptyResults(t *testing.T) {
	h := NewSearchHandler(search.NewService(panickingProvider{}))

	rec := postJSON(t, h.Search, searchBody("New York", "London"))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Flights)
	assert.Equal(t, 0, resp.Metadata.TotalResults)
}

func TestSearchHandler_ListFlights(t *testing.T) {
	h := newSearchHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListFlights(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var flights []models.Flight
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&flights))
	assert.Len(t, flights, 4)
}

func TestSearchHandler_Book(t *testing.T) {
	h := newSearchHandler()

	rec := postJSON(t, h.Search, searchBody("New York", "London"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.Book, `{"flight_id":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Flight.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Contains(t, resp.Message, "SkyWings Airlines")
	require.NotNil(t, resp.Criteria)
	assert.Equal(t, "New York", resp.Criteria.Origin)
}

func TestSearchHandler_BookStaleID(t *testing.T) {
	h := newSearchHandler()

	rec := postJSON(t, h.Search, searchBody("New York", "London"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Flight 4 exists in the catalog but is not among the displayed results.
	rec = postJSON(t, h.Book, `{"flight_id":4}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchHandler_BookBeforeAnySearch(t *testing.T) {
	h := newSearchHandler()

	rec := postJSON(t, h.Book, `{"flight_id":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchHandler_NewSearchReplacesResults(t *testing.T) {
	h := newSearchHandler()

	rec := postJSON(t, h.Search, searchBody("New York", "London"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.Search, searchBody("Paris", "Tokyo"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Flight 1 was in the previous results, not the current ones.
	rec = postJSON(t, h.Book, `{"flight_id":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postJSON(t, h.Book, `{"flight_id":4}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
