package models

const (
	FirstPage    = 1
	DefaultLimit = 4
)

type PaginationMode string

const (
	// PaginationFixed serves the catalog's five static pages.
	PaginationFixed PaginationMode = "fixed"
	// PaginationLimit slices the catalog into pages of a requested size.
	PaginationLimit PaginationMode = "limit"
)

// PageLinks holds the neighbours of a page; nil means there is none.
type PageLinks struct {
	Prev *int
	Next *int
}

func NewPageLinks(page, totalPages int) PageLinks {
	var links PageLinks
	if page > FirstPage {
		prev := page - 1
		links.Prev = &prev
	}
	if page < totalPages {
		next := page + 1
		links.Next = &next
	}
	return links
}
