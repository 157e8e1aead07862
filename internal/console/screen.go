package console

import (
	"context"
	"strings"

	"github.com/lernia/console-backend/internal/model"
)

// FetchFunc loads one page of a resource from the platform.
type FetchFunc[T any] func(ctx context.Context, page, limit int, search string) ([]T, model.Pagination, error)

// SearchFields extracts the values a text search should match against.
type SearchFields[T any] func(item T) []string

// Screen is the shared list behavior every resource screen goes through:
// fetch a page, apply the text filter, and hand back a result that is safe
// to render (items is never nil, pagination always populated).
type Screen[T any] struct {
	Name   string
	fetch  FetchFunc[T]
	fields SearchFields[T]
}

// Result is one rendered page of a screen.
type Result[T any] struct {
	Items      []T              `json:"items"`
	Pagination model.Pagination `json:"pagination"`
}

func NewScreen[T any](name string, fetch FetchFunc[T], fields SearchFields[T]) *Screen[T] {
	return &Screen[T]{Name: name, fetch: fetch, fields: fields}
}

// Paged adapts a platform list call, which reports pagination by pointer,
// to a FetchFunc.
func Paged[T any](fn func(ctx context.Context, page, limit int, search string) ([]T, *model.Pagination, error)) FetchFunc[T] {
	return func(ctx context.Context, page, limit int, search string) ([]T, model.Pagination, error) {
		items, p, err := fn(ctx, page, limit, search)
		if err != nil {
			return nil, model.Pagination{}, err
		}
		var pagination model.Pagination
		if p != nil {
			pagination = *p
		}
		return items, pagination, nil
	}
}

// Load fetches a page and filters it. The search term is forwarded to the
// platform and also applied locally, so screens behave the same whether or
// not the platform honors the query.
func (s *Screen[T]) Load(ctx context.Context, page, limit int, search string) (Result[T], error) {
	items, pagination, err := s.fetch(ctx, page, limit, search)
	if err != nil {
		return Result[T]{}, err
	}

	filtered := Filter(items, search, s.fields)
	if pagination.Limit == 0 {
		pagination = model.Pagination{Page: page, Limit: limit, Total: len(filtered), TotalPages: 1}
	}

	return Result[T]{Items: filtered, Pagination: pagination}, nil
}

// Filter keeps the items where any search field contains the term,
// case-insensitively. A blank term keeps everything. The returned slice is
// never nil.
func Filter[T any](items []T, search string, fields SearchFields[T]) []T {
	out := make([]T, 0, len(items))
	term := strings.ToLower(strings.TrimSpace(search))
	for _, item := range items {
		if term == "" || matches(fields(item), term) {
			out = append(out, item)
		}
	}
	return out
}

func matches(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
