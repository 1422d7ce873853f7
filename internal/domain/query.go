package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultLanguage = "en"

	// DefaultPageSize and MaxPageSize apply to list and search pagination.
	DefaultPageSize = 50
	MaxPageSize     = 50

	// MapRowCap is the hard ceiling for the map endpoint regardless of
	// requested limit; map rendering has a practical maximum.
	MapRowCap = 500

	// MinQueryLength guards against prohibitively broad one-character scans.
	MinQueryLength = 2
)

// SortMode is the closed set of orderings for search results.
type SortMode string

const (
	SortNameAsc  SortMode = "name_asc"
	SortNameDesc SortMode = "name_desc"
	SortNewest   SortMode = "newest"
	SortOldest   SortMode = "oldest"
	SortRandom   SortMode = "random"
)

// ParseSortMode maps a raw sort parameter onto the closed enum. Unrecognized
// values fall back to name ascending.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortNameDesc, SortNewest, SortOldest, SortRandom:
		return SortMode(raw)
	default:
		return SortNameAsc
	}
}

// Bounds is a rectangular geographic restriction, edges inclusive.
type Bounds struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// ParseBounds parses "minLat,minLng,maxLat,maxLng". Malformed input yields
// nil, which means no restriction; bad parameters never error.
func ParseBounds(raw string) *Bounds {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil
		}
		vals[i] = v
	}
	return &Bounds{MinLat: vals[0], MinLng: vals[1], MaxLat: vals[2], MaxLng: vals[3]}
}

// NormalizeLanguage coerces the language tag onto the closed en/fr set.
// Anything other than French is served in English.
func NormalizeLanguage(raw string) string {
	if raw == "fr" {
		return "fr"
	}
	return DefaultLanguage
}

// ClampLimit parses a raw limit, defaulting invalid or missing values and
// clamping the result to [1, max].
func ClampLimit(raw string, def, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		n = def
	}
	if n > max {
		n = max
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ParseOffset parses a raw offset; invalid or negative values become zero.
func ParseOffset(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseYear parses a year bound; invalid or negative values become zero,
// which disables the bound.
func ParseYear(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// NormalizeQuery trims a free-text query and discards it entirely when
// shorter than MinQueryLength.
func NormalizeQuery(raw string) string {
	q := strings.TrimSpace(raw)
	if len([]rune(q)) < MinQueryLength {
		return ""
	}
	return q
}

// PlaceFilter describes one /api/places request.
type PlaceFilter struct {
	Language        string
	Province        string
	RecognitionType string
	Random          bool
	Limit           int
	Offset          int
}

// SearchFilter describes one /api/search request. Zero values mean the
// corresponding predicate is absent.
type SearchFilter struct {
	Language        string
	Query           string
	Province        string
	Municipality    string
	RecognitionType string
	Jurisdiction    string
	Theme           string
	Architect       string
	MinYear         int
	MaxYear         int
	Sort            SortMode
	Limit           int
	Offset          int
}

// MapFilter describes one /api/map request.
type MapFilter struct {
	Language string
	Bounds   *Bounds
}
