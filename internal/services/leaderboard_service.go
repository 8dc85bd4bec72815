package services

import (
	"context"
	"sort"

	resp "namabank/internal/models/response_models"
	"namabank/internal/repositories"
	"namabank/pkg/utils"
)

// Rank orders (subject, total) pairs into a leaderboard: zero-total
// subjects are dropped (a user who never contributed does not appear),
// remaining subjects sort by total descending with ties broken by
// subject id ascending so the ordering is reproducible regardless of
// store enumeration order, ranks are 1-based, output is truncated to
// limit.
func Rank(totals []resp.SubjectTotal, limit int) []resp.RankedSubject {
	filtered := make([]resp.SubjectTotal, 0, len(totals))
	for _, t := range totals {
		if t.Total > 0 {
			filtered = append(filtered, t)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Total != filtered[j].Total {
			return filtered[i].Total > filtered[j].Total
		}
		return filtered[i].SubjectID < filtered[j].SubjectID
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	ranked := make([]resp.RankedSubject, 0, len(filtered))
	for i, t := range filtered {
		ranked = append(ranked, resp.RankedSubject{SubjectTotal: t, Rank: i + 1})
	}
	return ranked
}

type LeaderboardService interface {
	TopContributors(ctx context.Context, limit int) ([]resp.RankedSubject, error)
	FastestGrowing(ctx context.Context, limit int) ([]resp.RankedSubject, error)
}

type leaderboardService struct {
	entries repositories.EntryRepository
	clock   utils.Clock
}

func NewLeaderboardService(entries repositories.EntryRepository, clock utils.Clock) LeaderboardService {
	return &leaderboardService{entries: entries, clock: clock}
}

func (s *leaderboardService) TopContributors(ctx context.Context, limit int) ([]resp.RankedSubject, error) {
	rows, err := s.entries.UserTotals(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return Rank(toSubjectTotals(rows), limit), nil
}

// FastestGrowing ranks active accounts by their trailing 7-day total.
func (s *leaderboardService) FastestGrowing(ctx context.Context, limit int) ([]resp.RankedSubject, error) {
	edges := utils.EdgesAt(s.clock.Now())

	rows, err := s.entries.AccountTotalsSince(ctx, edges.WeekStart)
	if err != nil {
		return nil, storeErr(err)
	}
	return Rank(toSubjectTotals(rows), limit), nil
}

func toSubjectTotals(rows []repositories.SubjectTotalRow) []resp.SubjectTotal {
	totals := make([]resp.SubjectTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, resp.SubjectTotal{
			SubjectID: row.SubjectID,
			Name:      row.Name,
			City:      row.City,
			Total:     row.Total,
		})
	}
	return totals
}
