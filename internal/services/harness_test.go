package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"namabank/internal/repositories"
	"namabank/internal/testutil"
	"namabank/pkg/memcache"
	"namabank/pkg/utils"
)

// All service tests run against a pinned clock so window edges are
// stable: today=2024-06-15, week start=2024-06-09, month start=
// 2024-06-01, year start=2024-01-01.
var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func date(daysAgo int) string {
	return fixedNow.AddDate(0, 0, -daysAgo).Format(utils.DateLayout)
}

type fixture struct {
	db    *gorm.DB
	cache memcache.StatsCache

	entries  repositories.EntryRepository
	accounts repositories.AccountRepository
	users    repositories.UserRepository
	links    repositories.LinkRepository

	entrySvc       EntryService
	statsSvc       StatsService
	leaderboardSvc LeaderboardService
	reportSvc      ReportService
	accountSvc     AccountService
	userSvc        UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	clock := testutil.FixedClock{T: fixedNow}
	cache := memcache.NewStatsCache()

	entries := repositories.NewEntryRepository(db)
	accounts := repositories.NewAccountRepository(db)
	users := repositories.NewUserRepository(db)
	links := repositories.NewLinkRepository(db)

	statsSvc := NewStatsService(entries, accounts, clock, cache)
	leaderboardSvc := NewLeaderboardService(entries, clock)

	return &fixture{
		db:       db,
		cache:    cache,
		entries:  entries,
		accounts: accounts,
		users:    users,
		links:    links,

		entrySvc:       NewEntryService(entries, accounts, links, clock, cache),
		statsSvc:       statsSvc,
		leaderboardSvc: leaderboardSvc,
		reportSvc:      NewReportService(entries, users, statsSvc, leaderboardSvc, clock),
		accountSvc:     NewAccountService(accounts, clock, cache),
		userSvc:        NewUserService(users, links, accounts),
	}
}
