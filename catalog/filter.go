// Package catalog holds the navigation state of one browsing session:
// generation, roster, search term, page, selection and view mode.
package catalog

import (
	"strconv"
	"strings"

	"github.com/qyinm/pokedextui/types"
)

const (
	// PageSize is the fixed number of entries per grid page
	PageSize = 20
	// Columns is the grid width used for up/down navigation
	Columns = 5
)

// Page is one slice of the filtered roster
type Page struct {
	Items      []types.CatalogEntry
	Number     int
	TotalPages int
}

// HasPrev reports whether a previous page exists
func (p Page) HasPrev() bool { return p.Number > 0 }

// HasNext reports whether a next page exists
func (p Page) HasNext() bool { return p.Number < p.TotalPages-1 }

// Matches reports whether an entry passes the search term. Matching is a
// case-insensitive substring test on the name or on the decimal id. The
// term is used as typed; surrounding spaces are part of it.
func Matches(e types.CatalogEntry, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strconv.Itoa(e.ID), term)
}

// Filter returns the entries matching term, preserving roster order
func Filter(roster []types.CatalogEntry, term string) []types.CatalogEntry {
	if term == "" {
		return roster
	}
	out := make([]types.CatalogEntry, 0, len(roster))
	for _, e := range roster {
		if Matches(e, term) {
			out = append(out, e)
		}
	}
	return out
}

// TotalPages is max(1, ceil(n/size))
func TotalPages(n, size int) int {
	if size <= 0 {
		size = PageSize
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate cuts page number out of entries, clamping number into range
func Paginate(entries []types.CatalogEntry, number, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	total := TotalPages(len(entries), size)
	number = clamp(number, 0, total-1)

	start := number * size
	end := start + size
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}
	return Page{Items: entries[start:end], Number: number, TotalPages: total}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
