// Package docs Historic Places Canada API.
//
// Read-only catalogue of Canadian historic places with bilingual content
// (en/fr), faceted search, map extracts and catalogue statistics. All
// endpoints are anonymous GETs under /api and sit behind a two-tier rate
// limit: a global quota on every request plus a tighter quota on the
// bulk-data endpoints (list, search, map).
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
