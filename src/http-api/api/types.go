package api

import "github.com/tripboard/tripboard/src/common/types"

type ErrorResponse struct {
	Error   string  `json:"error"`
	Message string  `json:"message"`
	Stack   *string `json:"stack,omitempty"`
}

type NotFoundResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// SearchResponse is the carrier list for one origin/destination query.
type SearchResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Date     string          `json:"date"`
	Total    int             `json:"total"`
	Carriers []types.Carrier `json:"carriers"`
}

type StationsResponse struct {
	Query    string          `json:"query"`
	Stations []types.Station `json:"stations"`
}
