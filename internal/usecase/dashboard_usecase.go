package usecase

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

// GrowthPoint is the cumulative member count at the end of a join month (YYYY-MM).
type GrowthPoint struct {
	Month   string `json:"month"`
	Members int    `json:"members"`
}

// DashboardSnapshot is the church-wide overview. It is also the context handed to
// the dashboard and report advisories.
type DashboardSnapshot struct {
	Members       MemberStats       `json:"members"`
	MemberGrowth  []GrowthPoint     `json:"member_growth"`
	Finance       FinanceStats      `json:"finance"`
	MonthlyFlow   []MonthFlow       `json:"monthly_flow"`
	Events        EventStats        `json:"events"`
	Rosters       RosterStats       `json:"rosters"`
	Groups        GroupStats        `json:"groups"`
	EBD           EBDStats          `json:"ebd"`
	Congregations CongregationStats `json:"congregations"`
	Assets        AssetStats        `json:"assets"`
	Social        SocialStats       `json:"social"`
}

type IDashboardUseCase interface {
	Snapshot(ctx context.Context) (DashboardSnapshot, error)
	RecentTransactions(ctx context.Context, limit int) ([]entities.Transaction, error)
}

type DashboardUseCase struct {
	members       interfaces.IStore[entities.Member]
	transactions  interfaces.IStore[entities.Transaction]
	events        IEventUseCase
	rosters       IRosterUseCase
	groups        IGroupUseCase
	ebd           IEBDUseCase
	congregations ICongregationUseCase
	assets        IAssetUseCase
	social        ISocialUseCase
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

type DashboardDeps struct {
	Members       interfaces.IStore[entities.Member]
	Transactions  interfaces.IStore[entities.Transaction]
	Events        IEventUseCase
	Rosters       IRosterUseCase
	Groups        IGroupUseCase
	EBD           IEBDUseCase
	Congregations ICongregationUseCase
	Assets        IAssetUseCase
	Social        ISocialUseCase
}

func NewDashboardUseCase(d DashboardDeps) *DashboardUseCase {
	return &DashboardUseCase{
		members:       d.Members,
		transactions:  d.Transactions,
		events:        d.Events,
		rosters:       d.Rosters,
		groups:        d.Groups,
		ebd:           d.EBD,
		congregations: d.Congregations,
		assets:        d.Assets,
		social:        d.Social,
	}
}

func (u *DashboardUseCase) Snapshot(ctx context.Context) (DashboardSnapshot, error) {
	var snap DashboardSnapshot

	members, err := listRecords(ctx, u.members)
	if err != nil {
		return snap, err
	}
	snap.Members = ComputeMemberStats(members)
	snap.MemberGrowth = ComputeMemberGrowth(members)

	txs, err := listRecords(ctx, u.transactions)
	if err != nil {
		return snap, err
	}
	snap.Finance = ComputeFinanceStats(txs)
	snap.MonthlyFlow = ComputeMonthlyFlow(txs)

	if snap.Events, err = u.events.Stats(ctx); err != nil {
		return snap, err
	}
	if snap.Rosters, err = u.rosters.Stats(ctx); err != nil {
		return snap, err
	}
	if snap.Groups, err = u.groups.Stats(ctx); err != nil {
		return snap, err
	}
	if snap.EBD, err = u.ebd.Stats(ctx); err != nil {
		return snap, err
	}
	if snap.Congregations, err = u.congregations.Stats(ctx); err != nil {
		return snap, err
	}
	if snap.Assets, err = u.assets.Stats(ctx); err != nil {
		return snap, err
	}
	if snap.Social, err = u.social.Stats(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}

// RecentTransactions returns up to limit transactions, newest first.
// The ledger itself stays in insertion order.
func (u *DashboardUseCase) RecentTransactions(ctx context.Context, limit int) ([]entities.Transaction, error) {
	txs, err := listRecords(ctx, u.transactions)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(txs) > limit {
		txs = txs[len(txs)-limit:]
	}
	recent := slices.Clone(txs)
	slices.Reverse(recent)
	return recent, nil
}

func ComputeMemberGrowth(members []entities.Member) []GrowthPoint {
	perMonth := map[string]int{}
	for _, m := range members {
		if m.JoinDate.IsZero() {
			continue
		}
		perMonth[fmt.Sprintf("%04d-%02d", m.JoinDate.Year(), int(m.JoinDate.Month()))]++
	}

	months := make([]string, 0, len(perMonth))
	for k := range perMonth {
		months = append(months, k)
	}
	sort.Strings(months)

	out := make([]GrowthPoint, 0, len(months))
	total := 0
	for _, k := range months {
		total += perMonth[k]
		out = append(out, GrowthPoint{Month: k, Members: total})
	}
	return out
}
