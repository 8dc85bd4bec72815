package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	resp "namabank/internal/models/response_models"
	"namabank/internal/repositories"
	"namabank/internal/testutil"
	"namabank/pkg/memcache"
)

func TestAggregateForAccountWindows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "Chennai")
	account := testutil.CreateAccount(t, f.db, "Rama Nama", true)

	testutil.CreateEntry(t, f.db, user, account, 10, date(0))   // today
	testutil.CreateEntry(t, f.db, user, account, 20, date(3))   // within week
	testutil.CreateEntry(t, f.db, user, account, 70, date(40))  // within year only
	testutil.CreateEntry(t, f.db, user, account, 5, "2023-12-31")

	summary, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(10), summary.Today)
	require.Equal(t, int64(30), summary.ThisWeek)
	require.Equal(t, int64(30), summary.ThisMonth)
	require.Equal(t, int64(100), summary.ThisYear)
	require.Equal(t, int64(105), summary.Overall)
}

func TestAggregateWindowBoundaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "sita", "")
	account := testutil.CreateAccount(t, f.db, "Boundary", true)

	testutil.CreateEntry(t, f.db, user, account, 1, "2024-06-09") // first day of trailing week
	testutil.CreateEntry(t, f.db, user, account, 2, "2024-06-08") // one day before
	testutil.CreateEntry(t, f.db, user, account, 4, "2024-06-01") // first day of month
	testutil.CreateEntry(t, f.db, user, account, 8, "2024-05-31")
	testutil.CreateEntry(t, f.db, user, account, 16, "2024-01-01") // first day of year
	testutil.CreateEntry(t, f.db, user, account, 32, "2023-12-31")

	summary, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), summary.Today)
	require.Equal(t, int64(1), summary.ThisWeek)
	require.Equal(t, int64(5), summary.ThisMonth)
	require.Equal(t, int64(31), summary.ThisYear)
	require.Equal(t, int64(63), summary.Overall)
}

func TestAggregateWindowsNested(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "hanuman", "")
	account := testutil.CreateAccount(t, f.db, "Nested", true)

	for _, daysAgo := range []int{0, 0, 1, 5, 6, 7, 13, 20, 45, 200, 500} {
		testutil.CreateEntry(t, f.db, user, account, 3, date(daysAgo))
	}

	s, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.LessOrEqual(t, s.Today, s.ThisWeek)
	require.LessOrEqual(t, s.ThisWeek, s.Overall)
	require.LessOrEqual(t, s.ThisMonth, s.ThisYear)
	require.LessOrEqual(t, s.ThisYear, s.Overall)
}

func TestAggregateWeekReachesIntoPreviousMonth(t *testing.T) {
	db := testutil.NewTestDB(t)
	// Early in a month the trailing week spans the month boundary, so
	// the week total may legitimately exceed the month total.
	clock := testutil.FixedClock{T: time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC)}
	svc := NewStatsService(
		repositories.NewEntryRepository(db),
		repositories.NewAccountRepository(db),
		clock,
		memcache.NewStatsCache(),
	)

	user := testutil.CreateUser(t, db, "ram", "")
	account := testutil.CreateAccount(t, db, "Rollover", true)
	testutil.CreateEntry(t, db, user, account, 5, "2024-05-30")
	testutil.CreateEntry(t, db, user, account, 2, "2024-06-02")

	summary, err := svc.AggregateForAccount(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(7), summary.ThisWeek)
	require.Equal(t, int64(2), summary.ThisMonth)
	require.Greater(t, summary.ThisWeek, summary.ThisMonth)
	require.Equal(t, int64(7), summary.Overall)
}

func TestAggregateForAccountEmpty(t *testing.T) {
	f := newFixture(t)

	account := testutil.CreateAccount(t, f.db, "Untouched", true)

	summary, err := f.statsSvc.AggregateForAccount(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, resp.WindowSummary{}, *summary)
}

func TestAggregateForUserSpansAccounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "lakshman", "")
	other := testutil.CreateUser(t, f.db, "bharat", "")
	first := testutil.CreateAccount(t, f.db, "First", true)
	second := testutil.CreateAccount(t, f.db, "Second", true)

	testutil.CreateEntry(t, f.db, user, first, 11, date(0))
	testutil.CreateEntry(t, f.db, user, second, 22, date(2))
	testutil.CreateEntry(t, f.db, other, first, 1000, date(0))

	summary, err := f.statsSvc.AggregateForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(11), summary.Today)
	require.Equal(t, int64(33), summary.ThisWeek)
	require.Equal(t, int64(33), summary.Overall)
}

func TestAggregateForAllActiveAccounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")
	busy := testutil.CreateAccount(t, f.db, "Busy", true)
	idle := testutil.CreateAccount(t, f.db, "Idle", true)
	hidden := testutil.CreateAccount(t, f.db, "Hidden", false)

	testutil.CreateEntry(t, f.db, user, busy, 50, date(0))
	testutil.CreateEntry(t, f.db, user, hidden, 999, date(0))
	_ = idle

	summaries, err := f.statsSvc.AggregateForAllActiveAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Name order, zero-filled idle account still listed.
	require.Equal(t, "Busy", summaries[0].Name)
	require.Equal(t, int64(50), summaries[0].Overall)
	require.Equal(t, "Idle", summaries[1].Name)
	require.Equal(t, resp.WindowSummary{}, summaries[1].WindowSummary)
}

func TestAggregateDisabledAccountByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")
	account := testutil.CreateAccount(t, f.db, "Retired", true)
	testutil.CreateEntry(t, f.db, user, account, 7, date(1))

	require.NoError(t, f.db.Model(account).Update("is_active", false).Error)

	// Disabling hides the account from listings, not from its history.
	summary, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(7), summary.Overall)
}

func TestAggregateMemoizesUntilInvalidated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")
	account := testutil.CreateAccount(t, f.db, "Memo", true)
	testutil.CreateEntry(t, f.db, user, account, 10, date(0))

	first, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(10), first.Overall)

	// A write behind the service's back is masked by the memo...
	testutil.CreateEntry(t, f.db, user, account, 5, date(0))
	cached, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(10), cached.Overall)

	// ...until the key is invalidated, as ingestion does.
	f.cache.Invalidate(AccountCacheKey(account.ID))
	fresh, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(15), fresh.Overall)
}

func TestAggregateIgnoresSoftDeletedLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")
	account := testutil.CreateAccount(t, f.db, "Scrub", true)
	entry := testutil.CreateEntry(t, f.db, user, account, 30, date(0))
	testutil.CreateEntry(t, f.db, user, account, 12, date(0))

	require.NoError(t, f.db.Delete(entry).Error)

	summary, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(12), summary.Overall)
}
