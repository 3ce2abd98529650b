// Package search is a stateless query layer over a catalog snapshot.
package search

import (
	"strings"

	"pricebook-be/pkg/catalog"
)

// Item is the projection served to catalog viewers. Absent source fields
// project to empty strings, not omitted keys.
type Item struct {
	Id          string `json:"id"`
	Code        string `json:"Code"`
	Item        string `json:"Item"`
	ClientPrice string `json:"ClientPrice"`
	Vendor      string `json:"Vendor"`
	VendorPrice string `json:"VendorPrice"`
}

type Result struct {
	Results    []Item
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// matchFields are the fields joined into the searchable text of a record.
var matchFields = []string{"Code", "Item", "ClientPrice", "Vendor"}

// Search filters the snapshot by a case-insensitive substring query and
// slices the matches into 1-indexed pages. An empty query matches every
// record, snapshot order is preserved either way. Out-of-range pages yield
// an empty result slice. Whitespace in the query is significant, it matches
// against the space-joined field text.
func Search(snap *catalog.Snapshot, query string, page, perPage int) Result {
	needle := strings.ToLower(query)

	var matched []catalog.Record
	if needle == "" {
		matched = snap.Records()
	} else {
		for _, rec := range snap.Records() {
			if strings.Contains(searchText(rec), needle) {
				matched = append(matched, rec)
			}
		}
	}

	total := len(matched)
	totalPages := (total + perPage - 1) / perPage

	results := make([]Item, 0, perPage)
	start := (page - 1) * perPage
	if page >= 1 && start < total {
		end := start + perPage
		if end > total {
			end = total
		}
		for _, rec := range matched[start:end] {
			results = append(results, project(rec))
		}
	}

	return Result{
		Results:    results,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

func searchText(rec catalog.Record) string {
	parts := make([]string, 0, len(matchFields)+1)
	parts = append(parts, rec.Id)
	for _, f := range matchFields {
		parts = append(parts, rec.Field(f))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func project(rec catalog.Record) Item {
	return Item{
		Id:          rec.Id,
		Code:        rec.Field("Code"),
		Item:        rec.Field("Item"),
		ClientPrice: rec.Field("ClientPrice"),
		Vendor:      rec.Field("Vendor"),
		VendorPrice: rec.Field("VendorPrice"),
	}
}
