package models

type SearchMetadata struct {
	TotalResults int   `json:"total_results"`
	SearchTimeMs int64 `json:"search_time_ms"`
}

type SearchResponse struct {
	SearchCriteria SearchRequest  `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Flights        []Flight       `json:"flights"`
}

type BookingResponse struct {
	Reference string         `json:"reference"`
	Message   string         `json:"message"`
	Flight    Flight         `json:"flight"`
	Criteria  *SearchRequest `json:"search_criteria,omitempty"`
}

type ContentResponse struct {
	Hero     Hero      `json:"hero"`
	About    About     `json:"about"`
	Airlines []Airline `json:"airlines"`
}

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Stats    []Stat `json:"stats"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type About struct {
	Text     string    `json:"text"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Airline struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ValidationResponse reports per-field validation messages so a client can
// surface them inline next to the offending fields.
type ValidationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
	Code   int               `json:"code"`
}
