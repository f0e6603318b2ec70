package entities

// Record is implemented by every entity kept in an in-memory store.
//
// Identifiers are int64 epoch milliseconds assigned by the store at creation time.
// Foreign keys between domains (e.g. Lesson.ClassID) are weak references: an identifier
// that may or may not resolve against the target store.
type Record interface {
	GetID() int64
}
