package dto

import "github.com/Gorskiz/historic-places-canada-2/internal/domain"

// PlacesResponse is the /api/places envelope. Count is the page size, not
// the full population.
type PlacesResponse struct {
	Places []*domain.PlaceSummary `json:"places"`
	Count  int                    `json:"count"`
}

// PlaceResponse is the /api/places/:id envelope.
type PlaceResponse struct {
	Place  *domain.Place   `json:"place"`
	Images []*domain.Image `json:"images"`
}

// SearchResponse is the /api/search envelope. Count is the page size; Total
// is the full match count independent of pagination.
type SearchResponse struct {
	Results []*domain.PlaceSummary `json:"results"`
	Count   int                    `json:"count"`
	Total   int64                  `json:"total"`
}

// MapResponse is the /api/map envelope.
type MapResponse struct {
	Places []*domain.MapPlace `json:"places"`
	Count  int                `json:"count"`
}

// ProvincesResponse is the /api/provinces envelope.
type ProvincesResponse struct {
	Provinces []domain.FacetCount `json:"provinces"`
}

// APIIndexResponse documents the available endpoints; it is served for any
// unmatched /api path instead of a 404.
type APIIndexResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}
