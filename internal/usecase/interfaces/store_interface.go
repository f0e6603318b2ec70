package interfaces

import (
	"context"

	"gestao_igreja/internal/domain/entities"
)

// IStore abstracts the per-domain entity collection.
//
// Contract shared by every implementation:
//   - List returns records in insertion order.
//   - GetByID and Update return the zero record (GetID() == 0) when nothing matches.
//   - Create assigns a fresh, strictly increasing identifier and appends.
//   - Update replaces the record with merge(original); the identifier never changes.
//   - Delete never cascades to other stores.
type IStore[T entities.Record] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, merge func(T) T) (T, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
