package memory

import (
	"context"
	"slices"
	"sync"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

// Store is an ordered in-memory collection for one domain.
//
// Records live for the lifetime of the process; a restart goes back to the seed.
// The HTTP server may call into a store from several goroutines, so every access
// goes through the RWMutex.
type Store[T entities.Record] struct {
	mu     sync.RWMutex
	items  []T
	ids    *IDGenerator
	withID func(T, int64) T
}

var (
	_ interfaces.IStore[entities.Member]       = (*Store[entities.Member])(nil)
	_ interfaces.IStore[entities.Transaction]  = (*Store[entities.Transaction])(nil)
	_ interfaces.IStore[entities.Event]        = (*Store[entities.Event])(nil)
	_ interfaces.IStore[entities.BlockedDate]  = (*Store[entities.BlockedDate])(nil)
	_ interfaces.IStore[entities.Roster]       = (*Store[entities.Roster])(nil)
	_ interfaces.IStore[entities.Group]        = (*Store[entities.Group])(nil)
	_ interfaces.IStore[entities.EBDClass]     = (*Store[entities.EBDClass])(nil)
	_ interfaces.IStore[entities.Lesson]       = (*Store[entities.Lesson])(nil)
	_ interfaces.IStore[entities.Student]      = (*Store[entities.Student])(nil)
	_ interfaces.IStore[entities.Congregation] = (*Store[entities.Congregation])(nil)
	_ interfaces.IStore[entities.Asset]        = (*Store[entities.Asset])(nil)
	_ interfaces.IStore[entities.Beneficiary]  = (*Store[entities.Beneficiary])(nil)
	_ interfaces.IStore[entities.Resource]     = (*Store[entities.Resource])(nil)
)

// NewStore builds a store holding a copy of seed. withID returns its argument
// with the identifier replaced; the store uses it on create and to pin ids on update.
func NewStore[T entities.Record](ids *IDGenerator, withID func(T, int64) T, seed []T) *Store[T] {
	for _, it := range seed {
		ids.Observe(it.GetID())
	}
	return &Store[T]{
		items:  slices.Clone(seed),
		ids:    ids,
		withID: withID,
	}
}

func (s *Store[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *Store[T]) GetByID(_ context.Context, id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], nil
	}
	var zero T
	return zero, nil
}

func (s *Store[T]) Create(_ context.Context, item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item = s.withID(item, s.ids.Next())
	s.items = append(s.items, item)
	return item, nil
}

func (s *Store[T]) Update(_ context.Context, id int64, merge func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, nil
	}
	updated := s.withID(merge(s.items[i]), id)
	s.items[i] = updated
	return updated, nil
}

func (s *Store[T]) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true, nil
}

func (s *Store[T]) indexOf(id int64) int {
	if id == 0 {
		return -1
	}
	return slices.IndexFunc(s.items, func(it T) bool { return it.GetID() == id })
}
