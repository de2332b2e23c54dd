// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"
)

// DefaultPageSize is the number of rows returned when the caller does not ask
// for a specific page size.
const DefaultPageSize = 20

// MaxPageSize caps the page size a caller can request.
const MaxPageSize = 100

// Params holds a parsed page request. Page is 1-based.
type Params struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for this page.
func (p Params) Offset() int64 {
	return int64(p.Page-1) * int64(p.PageSize)
}

// Limit returns the page size as int64 for Mongo Find().SetLimit().
func (p Params) Limit() int64 {
	return int64(p.PageSize)
}

// Parse extracts "page" and "pageSize" query parameters. Missing or invalid
// values fall back to page 1 and DefaultPageSize; page sizes above MaxPageSize
// are clamped.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, PageSize: DefaultPageSize}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.PageSize = n
			if p.PageSize > MaxPageSize {
				p.PageSize = MaxPageSize
			}
		}
	}
	return p
}

// Meta is the pagination envelope reported alongside a page of results.
// Pages is always ceil(Total/PageSize): 45 records at page size 20 → 3 pages.
type Meta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Pages    int   `json:"pages"`
}

// NewMeta computes the envelope for a total row count and page request.
func NewMeta(total int64, p Params) Meta {
	pages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	return Meta{
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
		Pages:    pages,
	}
}
