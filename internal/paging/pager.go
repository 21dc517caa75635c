// Package paging holds the page-navigation arithmetic shared by the list
// pages, circular image navigation, and the latest-request tracker that keeps
// superseded fetches from overwriting newer results.
package paging

// maxVisiblePages is the width of the numbered page window.
const maxVisiblePages = 5

// Pager is a zero-based page position within TotalPages pages.
type Pager struct {
	Page       int
	TotalPages int
}

// NewPager clamps page into [0, totalPages) and treats totalPages < 1 as a
// single page.
func NewPager(page, totalPages int) Pager {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}
	return Pager{Page: page, TotalPages: totalPages}
}

func (p Pager) HasPrev() bool { return p.Page > 0 }

func (p Pager) HasNext() bool { return p.Page < p.TotalPages-1 }

func (p Pager) Prev() int {
	if !p.HasPrev() {
		return 0
	}
	return p.Page - 1
}

func (p Pager) Next() int {
	if !p.HasNext() {
		return p.Page
	}
	return p.Page + 1
}

func (p Pager) Last() int { return p.TotalPages - 1 }

// Show reports whether pagination controls should be rendered at all.
func (p Pager) Show() bool { return p.TotalPages > 1 }

// Numbers returns up to five page indices around the current page. The window
// is centred when possible and shifted to stay within range near either end.
func (p Pager) Numbers() []int {
	start := max(0, p.Page-maxVisiblePages/2)
	end := min(p.TotalPages-1, start+maxVisiblePages-1)
	if end-start < maxVisiblePages-1 {
		start = max(0, end-maxVisiblePages+1)
	}
	nums := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		nums = append(nums, i)
	}
	return nums
}
