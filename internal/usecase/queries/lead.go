package queries

//go:generate mockgen -source=lead.go -destination=../../../tests/mock/queries/lead_mock.go -package=queriesmock

import (
	"context"
	"strings"

	"rovera-leads/internal/infra"
	"rovera-leads/internal/pkg/errs"
)

var (
	ErrUserEmailRequired = errs.New("user email required")
	ErrLeadQueryFailed   = errs.New("lead query failed")
)

type LeadReadStore interface {
	FindLatestByUserEmail(ctx context.Context, userEmail string) (*LeadView, error)
	Search(ctx context.Context, q LeadSearch) ([]*LeadView, int64, error)
}

type LeadQueries interface {
	// LatestByUser returns nil without error when the user has no lead.
	LatestByUser(ctx context.Context, userEmail string) (*LeadView, error)
	List(ctx context.Context, in ListLeadsInput) (*LeadPage, error)
}

type leadQueriesImpl struct {
	store      LeadReadStore
	pagination Pagination
}

func NewLeadQueries(store LeadReadStore, pagination Pagination) LeadQueries {
	return &leadQueriesImpl{store: store, pagination: pagination}
}

func (q *leadQueriesImpl) LatestByUser(ctx context.Context, userEmail string) (*LeadView, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))
	if userEmail == "" {
		return nil, ErrUserEmailRequired
	}

	v, err := q.store.FindLatestByUserEmail(ctx, userEmail)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrLeadQueryFailed)
	}
	return v, nil
}

func (q *leadQueriesImpl) List(ctx context.Context, in ListLeadsInput) (*LeadPage, error) {
	page := NormalizePage(in.Page)
	limit := q.pagination.NormalizeLimit(in.Limit)

	leads, total, err := q.store.Search(ctx, LeadSearch{
		Search: strings.TrimSpace(in.Search),
		Skip:   Offset(page, limit),
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrLeadQueryFailed)
	}
	if leads == nil {
		leads = []*LeadView{}
	}

	return &LeadPage{
		Leads:      leads,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}, nil
}
