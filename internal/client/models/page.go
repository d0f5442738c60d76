package models

// Page is one page of a server-defined listing. It is transient: rebuilt on
// every fetch, never cached. Item order is whatever the server returned.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	PageSize    int
	TotalCount  int
}

// HasMore reports whether pages beyond the current one exist.
func (p Page[T]) HasMore() bool {
	return p.CurrentPage*p.PageSize < p.TotalCount
}
