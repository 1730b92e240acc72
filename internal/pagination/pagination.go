package pagination

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPerPage is the page size used when none is given.
const DefaultPerPage = 12

// Pagination is derived from a request's query string and never stored.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	Offset       int `json:"offset"`
}

// Links are the navigation URLs for a paginated listing.
type Links struct {
	First string `json:"first,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

// FromSearchParams converts a raw page parameter into a Pagination.
// Empty, non-numeric and < 1 values become page 1. No upper bound is applied.
func FromSearchParams(page string, perPage int) Pagination {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	current, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil || current < 1 {
		current = 1
	}
	return Pagination{
		CurrentPage:  current,
		ItemsPerPage: perPage,
		Offset:       offset(current, perPage),
	}
}

// offset saturates at math.MaxInt so huge page numbers never wrap negative.
func offset(current, perPage int) int {
	if current-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (current - 1) * perPage
}

// FromQuery reads the "page" parameter from q.
func FromQuery(q url.Values, perPage int) Pagination {
	return FromSearchParams(q.Get("page"), perPage)
}

// TotalPages returns the number of pages needed for total items.
func (p Pagination) TotalPages(total int) int {
	if total <= 0 || p.ItemsPerPage <= 0 {
		return 0
	}
	return (total + p.ItemsPerPage - 1) / p.ItemsPerPage
}

// Links builds navigation URLs under basePath. A negative total means the
// total is unknown, in which case Next is always offered and Last omitted.
func (p Pagination) Links(total int, basePath string) Links {
	l := Links{First: pageURL(basePath, 1)}
	if p.CurrentPage > 1 {
		l.Prev = pageURL(basePath, p.CurrentPage-1)
	}
	if total < 0 {
		if p.CurrentPage < math.MaxInt {
			l.Next = pageURL(basePath, p.CurrentPage+1)
		}
		return l
	}
	last := p.TotalPages(total)
	if last > 0 {
		l.Last = pageURL(basePath, last)
	}
	if p.CurrentPage < last {
		l.Next = pageURL(basePath, p.CurrentPage+1)
	}
	return l
}

func pageURL(basePath string, page int) string {
	if page <= 1 {
		return basePath
	}
	return fmt.Sprintf("%s?page=%d", basePath, page)
}
