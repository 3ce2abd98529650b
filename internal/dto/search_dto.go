package dto

import "pricebook-be/pkg/search"

// SearchResponse is the catalog query contract. Field keys of the result
// items mirror the source schema names the frontend already binds to.
type SearchResponse struct {
	Results    []search.Item `json:"results"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
}
