package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/applications", nil)
	p := Parse(r)
	if p.Page != 1 {
		t.Errorf("page: got %d, want 1", p.Page)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("pageSize: got %d, want %d", p.PageSize, DefaultPageSize)
	}
}

func TestParse_Values(t *testing.T) {
	tests := []struct {
		url      string
		page     int
		pageSize int
	}{
		{"/?page=3&pageSize=50", 3, 50},
		{"/?page=0&pageSize=0", 1, DefaultPageSize},
		{"/?page=-2", 1, DefaultPageSize},
		{"/?page=abc&pageSize=xyz", 1, DefaultPageSize},
		{"/?pageSize=500", 1, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			p := Parse(httptest.NewRequest("GET", tt.url, nil))
			if p.Page != tt.page {
				t.Errorf("page: got %d, want %d", p.Page, tt.page)
			}
			if p.PageSize != tt.pageSize {
				t.Errorf("pageSize: got %d, want %d", p.PageSize, tt.pageSize)
			}
		})
	}
}

func TestParams_Offset(t *testing.T) {
	p := Params{Page: 3, PageSize: 20}
	if off := p.Offset(); off != 40 {
		t.Errorf("offset: got %d, want 40", off)
	}
}

func TestNewMeta_Pages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		pages int
	}{
		{45, 20, 3},
		{40, 20, 2},
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
	}
	for _, tt := range tests {
		m := NewMeta(tt.total, Params{Page: 1, PageSize: tt.size})
		if m.Pages != tt.pages {
			t.Errorf("total=%d size=%d: pages got %d, want %d", tt.total, tt.size, m.Pages, tt.pages)
		}
		if m.Total != tt.total {
			t.Errorf("total: got %d, want %d", m.Total, tt.total)
		}
	}
}
