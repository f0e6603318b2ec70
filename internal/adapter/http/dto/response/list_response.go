package response

import "gestao_igreja/internal/usecase"

// ListResponse wraps every collection endpoint.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Count: len(items)}
}

// MapList converts items with fn.
func MapList[S, T any](items []S, fn func(S) T) ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return NewList(out)
}

type PageResponse[T any] struct {
	Data []T              `json:"data"`
	Page usecase.PageInfo `json:"page"`
}

// MessageResponse is returned by deletes and other commands without a body.
type MessageResponse struct {
	Message string `json:"message"`
}
