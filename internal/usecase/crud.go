package usecase

import (
	"context"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

func getRecord[T entities.Record](ctx context.Context, store interfaces.IStore[T], id int64, notFound error) (T, error) {
	var zero T
	if id <= 0 {
		return zero, ErrInvalidID
	}
	it, err := store.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if it.GetID() == 0 {
		return zero, notFound
	}
	return it, nil
}

func updateRecord[T entities.Record](ctx context.Context, store interfaces.IStore[T], id int64, merge func(T) T, notFound error) (T, error) {
	var zero T
	if id <= 0 {
		return zero, ErrInvalidID
	}
	updated, err := store.Update(ctx, id, merge)
	if err != nil {
		return zero, err
	}
	if updated.GetID() == 0 {
		return zero, notFound
	}
	return updated, nil
}

func deleteRecord[T entities.Record](ctx context.Context, store interfaces.IStore[T], id int64, confirm ConfirmFunc, notFound error) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if confirm != nil && !confirm() {
		return ErrDeleteNotConfirmed
	}
	ok, err := store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}

func listRecords[T entities.Record](ctx context.Context, store interfaces.IStore[T]) ([]T, error) {
	items, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
