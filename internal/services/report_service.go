package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	resp "namabank/internal/models/response_models"
	"namabank/internal/repositories"
	"namabank/pkg/utils"
)

// ReportService assembles the dashboard breakdowns. Every operation is
// a pure function of the ledger/user-table snapshot at call time; no
// cross-call state is retained.
type ReportService interface {
	DailySeries(ctx context.Context, days int) ([]resp.SeriesPoint, error)
	WeeklySeries(ctx context.Context, weeks int) ([]resp.WeekBucket, error)
	SourceTypeRatio(ctx context.Context) ([]resp.SourceSlice, error)
	CityBreakdown(ctx context.Context, topN int) ([]resp.CityCount, error)
	NewUsersPerDay(ctx context.Context, days int) ([]resp.SeriesPoint, error)
	TotalStats(ctx context.Context) (*resp.TotalStats, error)
	RecentEntries(ctx context.Context, limit int) ([]resp.RecentEntry, error)
	BuildPublicReport(ctx context.Context) (*resp.PublicReport, error)
}

type reportService struct {
	entries     repositories.EntryRepository
	users       repositories.UserRepository
	stats       StatsService
	leaderboard LeaderboardService
	clock       utils.Clock
}

func NewReportService(
	entries repositories.EntryRepository,
	users repositories.UserRepository,
	stats StatsService,
	leaderboard LeaderboardService,
	clock utils.Clock,
) ReportService {
	return &reportService{
		entries:     entries,
		users:       users,
		stats:       stats,
		leaderboard: leaderboard,
		clock:       clock,
	}
}

// DailySeries returns exactly `days` date buckets ending today, oldest
// first, zero-filled where no entries match.
func (s *reportService) DailySeries(ctx context.Context, days int) ([]resp.SeriesPoint, error) {
	if days <= 0 {
		days = 7
	}

	now := s.clock.Now()
	today := now.Format(utils.DateLayout)
	minDate := now.AddDate(0, 0, -(days - 1)).Format(utils.DateLayout)

	rows, err := s.entries.DatedTotalsSince(ctx, minDate)
	if err != nil {
		return nil, storeErr(err)
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.EntryDate > today {
			continue
		}
		totals[row.EntryDate] = row.Total
	}

	points := make([]resp.SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(utils.DateLayout)
		points = append(points, resp.SeriesPoint{Date: date, Count: totals[date]})
	}
	return points, nil
}

// WeeklySeries returns `weeks` non-overlapping trailing 7-day buckets,
// oldest first, bounds inclusive.
func (s *reportService) WeeklySeries(ctx context.Context, weeks int) ([]resp.WeekBucket, error) {
	if weeks <= 0 {
		weeks = 4
	}

	now := s.clock.Now()
	minDate := now.AddDate(0, 0, -((weeks-1)*7 + 6)).Format(utils.DateLayout)

	rows, err := s.entries.DatedTotalsSince(ctx, minDate)
	if err != nil {
		return nil, storeErr(err)
	}

	buckets := make([]resp.WeekBucket, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		start := now.AddDate(0, 0, -(i*7 + 6)).Format(utils.DateLayout)
		end := now.AddDate(0, 0, -(i * 7)).Format(utils.DateLayout)

		var total int64
		for _, row := range rows {
			if row.EntryDate >= start && row.EntryDate <= end {
				total += row.Total
			}
		}

		buckets = append(buckets, resp.WeekBucket{
			Label: fmt.Sprintf("Week %d", weeks-i),
			Start: start,
			End:   end,
			Count: total,
		})
	}
	return buckets, nil
}

// SourceTypeRatio is open-ended over source types: a channel unknown
// today shows up as its own slice instead of breaking the report.
func (s *reportService) SourceTypeRatio(ctx context.Context) ([]resp.SourceSlice, error) {
	rows, err := s.entries.SourceTotals(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	slices := make([]resp.SourceSlice, 0, len(rows))
	for _, row := range rows {
		slices = append(slices, resp.SourceSlice{Source: row.SourceType, Count: row.Total})
	}
	return slices, nil
}

// CityBreakdown sums each city's users' overall contributions. Users
// with no city are excluded.
func (s *reportService) CityBreakdown(ctx context.Context, topN int) ([]resp.CityCount, error) {
	if topN <= 0 {
		topN = 6
	}

	rows, err := s.entries.UserTotals(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	byCity := make(map[string]int64)
	for _, row := range rows {
		if row.City == "" {
			continue
		}
		byCity[row.City] += row.Total
	}

	cities := make([]resp.CityCount, 0, len(byCity))
	for city, count := range byCity {
		cities = append(cities, resp.CityCount{City: city, Count: count})
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Count != cities[j].Count {
			return cities[i].Count > cities[j].Count
		}
		return cities[i].City < cities[j].City
	})

	if len(cities) > topN {
		cities = cities[:topN]
	}
	return cities, nil
}

// NewUsersPerDay counts registrations per day bucket, same bucketing
// as DailySeries. Registration timestamps are unix seconds rendered as
// dates in the clock's locale.
func (s *reportService) NewUsersPerDay(ctx context.Context, days int) ([]resp.SeriesPoint, error) {
	if days <= 0 {
		days = 7
	}

	now := s.clock.Now()
	oldest := now.AddDate(0, 0, -(days - 1))
	dayStart := time.Date(oldest.Year(), oldest.Month(), oldest.Day(), 0, 0, 0, 0, now.Location())

	stamps, err := s.users.ListCreatedAtSince(ctx, dayStart.Unix())
	if err != nil {
		return nil, storeErr(err)
	}

	perDay := make(map[string]int64)
	for _, stamp := range stamps {
		perDay[utils.DateOfUnix(stamp, now)]++
	}

	points := make([]resp.SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(utils.DateLayout)
		points = append(points, resp.SeriesPoint{Date: date, Count: perDay[date]})
	}
	return points, nil
}

func (s *reportService) TotalStats(ctx context.Context) (*resp.TotalStats, error) {
	users, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	entries, err := s.entries.CountEntries(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	total, err := s.entries.SumCounts(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return &resp.TotalStats{Users: users, Entries: entries, Total: total}, nil
}

func (s *reportService) RecentEntries(ctx context.Context, limit int) ([]resp.RecentEntry, error) {
	if limit <= 0 {
		limit = 15
	}
	rows, err := s.entries.Recent(ctx, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return toRecentEntries(rows), nil
}

// BuildPublicReport composes every section of the public dashboard.
// Sections are best-effort: a failing section lands in FailedSections
// and the rest still render, so a flaky subsidiary count cannot blank
// the whole page and "zero" stays distinguishable from "failed".
func (s *reportService) BuildPublicReport(ctx context.Context) (*resp.PublicReport, error) {
	report := &resp.PublicReport{GeneratedAt: s.clock.Now()}

	fail := func(section string, err error) {
		log.Printf("Public report section %q failed: %v", section, err)
		report.FailedSections = append(report.FailedSections, section)
	}

	if totals, err := s.TotalStats(ctx); err != nil {
		fail("totals", err)
	} else {
		report.Totals = *totals
	}

	if accountStats, err := s.stats.AggregateForAllActiveAccounts(ctx); err != nil {
		fail("account_stats", err)
	} else {
		report.AccountStats = accountStats
	}

	if contributors, err := s.leaderboard.TopContributors(ctx, 10); err != nil {
		fail("top_contributors", err)
	} else {
		report.TopContributors = contributors
	}

	if growing, err := s.leaderboard.FastestGrowing(ctx, 5); err != nil {
		fail("fastest_growing", err)
	} else {
		report.FastestGrowing = growing
	}

	if daily, err := s.DailySeries(ctx, 7); err != nil {
		fail("daily", err)
	} else {
		report.Daily = daily
	}

	if weekly, err := s.WeeklySeries(ctx, 4); err != nil {
		fail("weekly", err)
	} else {
		report.Weekly = weekly
	}

	if sources, err := s.SourceTypeRatio(ctx); err != nil {
		fail("sources", err)
	} else {
		report.Sources = sources
	}

	if cities, err := s.CityBreakdown(ctx, 6); err != nil {
		fail("cities", err)
	} else {
		report.Cities = cities
	}

	if newUsers, err := s.NewUsersPerDay(ctx, 7); err != nil {
		fail("new_users", err)
	} else {
		report.NewUsers = newUsers
	}

	if recent, err := s.RecentEntries(ctx, 15); err != nil {
		fail("recent_entries", err)
	} else {
		report.RecentEntries = recent
	}

	return report, nil
}
