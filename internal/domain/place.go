package domain

// Place is one historic site in one language. The same real-world site has
// two rows sharing the same ID (en/fr), so lookups are always by (id, language).
type Place struct {
	ID              int64    `json:"id" db:"id"`
	Name            string   `json:"name" db:"name"`
	Province        *string  `json:"province" db:"province"`
	Municipality    *string  `json:"municipality" db:"municipality"`
	Latitude        *float64 `json:"latitude" db:"latitude"`
	Longitude       *float64 `json:"longitude" db:"longitude"`
	Description     *string  `json:"description,omitempty" db:"description"`
	RecognitionType *string  `json:"recognition_type" db:"recognition_type"`
	Jurisdiction    *string  `json:"jurisdiction,omitempty" db:"jurisdiction"`
	RecognitionDate *string  `json:"recognition_date,omitempty" db:"recognition_date"`
	Architect       *string  `json:"architect,omitempty" db:"architect"`
	Themes          *string  `json:"themes,omitempty" db:"themes"`
	Language        string   `json:"language" db:"language"`
}

// PlaceSummary is the list/search projection. PrimaryImage is the URL of the
// image with the lowest display order, when the place has images.
type PlaceSummary struct {
	ID              int64    `json:"id" db:"id"`
	Name            string   `json:"name" db:"name"`
	Province        *string  `json:"province" db:"province"`
	Municipality    *string  `json:"municipality" db:"municipality"`
	Latitude        *float64 `json:"latitude" db:"latitude"`
	Longitude       *float64 `json:"longitude" db:"longitude"`
	Description     *string  `json:"description,omitempty" db:"description"`
	RecognitionType *string  `json:"recognition_type" db:"recognition_type"`
	Jurisdiction    *string  `json:"jurisdiction,omitempty" db:"jurisdiction"`
	RecognitionDate *string  `json:"recognition_date,omitempty" db:"recognition_date"`
	Architect       *string  `json:"architect,omitempty" db:"architect"`
	PrimaryImage    *string  `json:"primary_image" db:"primary_image"`
}

// MapPlace is the coordinate-only projection for the map endpoint.
type MapPlace struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Province     *string `json:"province" db:"province"`
	Municipality *string `json:"municipality" db:"municipality"`
	Latitude     float64 `json:"latitude" db:"latitude"`
	Longitude    float64 `json:"longitude" db:"longitude"`
}

// Image belongs to exactly one place ID. Populated by the offline ingestion
// process, read-only here.
type Image struct {
	PlaceID      int64   `json:"-" db:"place_id"`
	URL          string  `json:"url" db:"url"`
	Alt          *string `json:"alt" db:"alt"`
	Title        *string `json:"title" db:"title"`
	DisplayOrder int     `json:"display_order" db:"display_order"`
}

// FacetCount is one grouped-count row of a facet dimension.
type FacetCount struct {
	Value string `json:"value" db:"value"`
	Count int64  `json:"count" db:"count"`
}

// Facets bundles the filter-option breakdowns for one language.
type Facets struct {
	Provinces     []FacetCount `json:"provinces"`
	Types         []FacetCount `json:"types"`
	Jurisdictions []FacetCount `json:"jurisdictions"`
	Themes        []FacetCount `json:"themes"`
}

// Statistics is the catalogue summary. Aggregates are independent: a failed
// one reports zero instead of failing the whole object.
type Statistics struct {
	TotalPlaces           int64 `json:"totalPlaces"`
	PlacesWithCoordinates int64 `json:"placesWithCoordinates"`
	Provinces             int64 `json:"provinces"`
	TotalImages           int64 `json:"totalImages"`
	Themes                int64 `json:"themes"`
}
