package usecase

import "gestao_igreja/internal/domain/entities"

// MissingClassName is displayed when a lesson or student points at a class that no
// longer exists.
const MissingClassName = "Classe removida"

// Resolve looks up a weak reference. ok is false when nothing matches.
func Resolve[T entities.Record](items []T, id int64) (T, bool) {
	for _, it := range items {
		if id != 0 && it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
