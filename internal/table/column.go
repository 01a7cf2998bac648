// Package table implements the two generic list drivers the pages are
// built from: Browser, a paginated list/delete view over a remote
// resource service, and Editor, a purely local collection editor for
// nested sub-items.
package table

// Column renders one cell of an item.
type Column[T any] struct {
	Label  string
	Center bool
	Format func(item T) string
}

// Action is a caller supplied per-item affordance shown in the
// Actions column. When is optional; nil means always applicable.
type Action[T any] struct {
	Label string
	When  func(item T) bool
}
