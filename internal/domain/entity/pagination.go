package entity

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps the page to at least 1 and the limit to 1..100, defaulting to 10.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}

	return p
}

// Offset returns the row offset of the page.
func (p Pagination) Offset() int {
	n := p.Normalize()

	return (n.Page - 1) * n.Limit
}

// MaxPage returns the number of pages needed for total rows, at least 1.
func (p Pagination) MaxPage(total int64) int {
	n := p.Normalize()
	if total <= 0 {
		return 1
	}

	return int((total + int64(n.Limit) - 1) / int64(n.Limit))
}
