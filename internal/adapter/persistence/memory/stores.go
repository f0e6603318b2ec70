package memory

import (
	"time"

	"gestao_igreja/internal/domain/entities"
)

// Stores groups one Store per domain. All of them share a single IDGenerator so
// identifiers are unique across the whole session, not only per collection.
type Stores struct {
	Members       *Store[entities.Member]
	Transactions  *Store[entities.Transaction]
	Events        *Store[entities.Event]
	Blocks        *Store[entities.BlockedDate]
	Rosters       *Store[entities.Roster]
	Groups        *Store[entities.Group]
	Classes       *Store[entities.EBDClass]
	Lessons       *Store[entities.Lesson]
	Students      *Store[entities.Student]
	Congregations *Store[entities.Congregation]
	Assets        *Store[entities.Asset]
	Beneficiaries *Store[entities.Beneficiary]
	Resources     *Store[entities.Resource]
}

func NewStores(seed Seed, now func() time.Time) *Stores {
	ids := NewIDGenerator(now)
	return &Stores{
		Members:       NewStore(ids, func(m entities.Member, id int64) entities.Member { m.ID = id; return m }, seed.Members),
		Transactions:  NewStore(ids, func(t entities.Transaction, id int64) entities.Transaction { t.ID = id; return t }, seed.Transactions),
		Events:        NewStore(ids, func(e entities.Event, id int64) entities.Event { e.ID = id; return e }, seed.Events),
		Blocks:        NewStore(ids, func(b entities.BlockedDate, id int64) entities.BlockedDate { b.ID = id; return b }, seed.Blocks),
		Rosters:       NewStore(ids, func(r entities.Roster, id int64) entities.Roster { r.ID = id; return r }, seed.Rosters),
		Groups:        NewStore(ids, func(g entities.Group, id int64) entities.Group { g.ID = id; return g }, seed.Groups),
		Classes:       NewStore(ids, func(c entities.EBDClass, id int64) entities.EBDClass { c.ID = id; return c }, seed.Classes),
		Lessons:       NewStore(ids, func(l entities.Lesson, id int64) entities.Lesson { l.ID = id; return l }, seed.Lessons),
		Students:      NewStore(ids, func(s entities.Student, id int64) entities.Student { s.ID = id; return s }, seed.Students),
		Congregations: NewStore(ids, func(c entities.Congregation, id int64) entities.Congregation { c.ID = id; return c }, seed.Congregations),
		Assets:        NewStore(ids, func(a entities.Asset, id int64) entities.Asset { a.ID = id; return a }, seed.Assets),
		Beneficiaries: NewStore(ids, func(b entities.Beneficiary, id int64) entities.Beneficiary { b.ID = id; return b }, seed.Beneficiaries),
		Resources:     NewStore(ids, func(r entities.Resource, id int64) entities.Resource { r.ID = id; return r }, seed.Resources),
	}
}
