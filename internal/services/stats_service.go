package services

import (
	"context"

	"github.com/google/uuid"

	resp "namabank/internal/models/response_models"
	"namabank/internal/repositories"
	"namabank/pkg/memcache"
	"namabank/pkg/utils"
)

// StatsService is the aggregation engine: compute-on-read sums of the
// entry ledger over the five standard windows. Recomputing from the
// full per-subject entry set on every call keeps the invariant that a
// submit is visible to the very next aggregation; the memo cache only
// short-circuits repeat reads within the same day and is invalidated
// by ingestion.
type StatsService interface {
	AggregateForAccount(ctx context.Context, accountID uuid.UUID) (*resp.WindowSummary, error)
	AggregateForUser(ctx context.Context, userID uuid.UUID) (*resp.WindowSummary, error)
	AggregateForAllActiveAccounts(ctx context.Context) ([]resp.AccountWindowSummary, error)
}

type statsService struct {
	entries  repositories.EntryRepository
	accounts repositories.AccountRepository
	clock    utils.Clock
	cache    memcache.StatsCache
}

func NewStatsService(
	entries repositories.EntryRepository,
	accounts repositories.AccountRepository,
	clock utils.Clock,
	cache memcache.StatsCache,
) StatsService {
	return &statsService{
		entries:  entries,
		accounts: accounts,
		clock:    clock,
		cache:    cache,
	}
}

func AccountCacheKey(id uuid.UUID) string { return "account:" + id.String() }
func UserCacheKey(id uuid.UUID) string    { return "user:" + id.String() }

// summarize folds entry rows into the five windows. Dates are ISO
// strings, so every window test is a lexicographic comparison; rows
// dated after today are ignored defensively (ingestion rejects them).
func summarize(rows []repositories.EntryWindowRow, edges utils.WindowEdges) resp.WindowSummary {
	var s resp.WindowSummary
	for _, row := range rows {
		if row.EntryDate > edges.Today {
			continue
		}
		s.Overall += row.Count
		if row.EntryDate == edges.Today {
			s.Today += row.Count
		}
		if row.EntryDate >= edges.WeekStart {
			s.ThisWeek += row.Count
		}
		if row.EntryDate >= edges.MonthStart {
			s.ThisMonth += row.Count
		}
		if row.EntryDate >= edges.YearStart {
			s.ThisYear += row.Count
		}
	}
	return s
}

// AggregateForAccount sums all entries attributed to the account,
// including entries of a disabled account queried by id: disabling
// hides an account from active listings, not from its own history.
func (s *statsService) AggregateForAccount(ctx context.Context, accountID uuid.UUID) (*resp.WindowSummary, error) {
	edges := utils.EdgesAt(s.clock.Now())

	if cached, ok := s.cache.Get(AccountCacheKey(accountID), edges.Today); ok {
		if summary, ok := cached.(resp.WindowSummary); ok {
			out := summary
			return &out, nil
		}
	}

	rows, err := s.entries.ListWindowRowsByAccount(ctx, accountID)
	if err != nil {
		return nil, storeErr(err)
	}

	summary := summarize(rows, edges)
	s.cache.Set(AccountCacheKey(accountID), edges.Today, summary)
	return &summary, nil
}

func (s *statsService) AggregateForUser(ctx context.Context, userID uuid.UUID) (*resp.WindowSummary, error) {
	edges := utils.EdgesAt(s.clock.Now())

	if cached, ok := s.cache.Get(UserCacheKey(userID), edges.Today); ok {
		if summary, ok := cached.(resp.WindowSummary); ok {
			out := summary
			return &out, nil
		}
	}

	rows, err := s.entries.ListWindowRowsByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}

	summary := summarize(rows, edges)
	s.cache.Set(UserCacheKey(userID), edges.Today, summary)
	return &summary, nil
}

// AggregateForAllActiveAccounts returns one summary per active
// account in name order. Accounts with no entries report all zeros.
func (s *statsService) AggregateForAllActiveAccounts(ctx context.Context) ([]resp.AccountWindowSummary, error) {
	edges := utils.EdgesAt(s.clock.Now())

	accounts, err := s.accounts.ListActive(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	rows, err := s.entries.ListWindowRowsAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	byAccount := make(map[uuid.UUID][]repositories.EntryWindowRow)
	for _, row := range rows {
		byAccount[row.AccountID] = append(byAccount[row.AccountID], row)
	}

	summaries := make([]resp.AccountWindowSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, resp.AccountWindowSummary{
			AccountID:     account.ID,
			Name:          account.Name,
			TargetGoal:    account.TargetGoal,
			WindowSummary: summarize(byAccount[account.ID], edges),
		})
	}
	return summaries, nil
}
