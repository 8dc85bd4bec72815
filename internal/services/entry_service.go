package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"namabank/internal/models/db_models"
	"namabank/internal/models/request_models"
	"namabank/internal/models/response_models"
	"namabank/internal/repositories"
	"namabank/pkg/memcache"
	"namabank/pkg/utils"
)

// EntryService validates devotion submissions and appends them to the
// ledger. Entries are immutable once written; aggregates are never
// updated here, only the memo cache is invalidated so the next read
// recomputes.
type EntryService interface {
	SubmitEntry(ctx context.Context, userID uuid.UUID, req request_models.SubmitEntryRequest) (*db_models.NamaEntry, error)
	// SubmitBatch applies SubmitEntry semantics to every element and
	// appends all-or-nothing: one invalid element rejects the whole
	// batch before the store is touched.
	SubmitBatch(ctx context.Context, userID uuid.UUID, reqs []request_models.SubmitEntryRequest) ([]*db_models.NamaEntry, error)
	RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]response_models.RecentEntry, error)
}

type entryService struct {
	entries  repositories.EntryRepository
	accounts repositories.AccountRepository
	links    repositories.LinkRepository
	clock    utils.Clock
	cache    memcache.StatsCache
}

func NewEntryService(
	entries repositories.EntryRepository,
	accounts repositories.AccountRepository,
	links repositories.LinkRepository,
	clock utils.Clock,
	cache memcache.StatsCache,
) EntryService {
	return &entryService{
		entries:  entries,
		accounts: accounts,
		links:    links,
		clock:    clock,
		cache:    cache,
	}
}

func parseDate(s string) (string, error) {
	t, err := time.Parse(utils.DateLayout, s)
	if err != nil {
		return "", utils.ErrInvalidEntryDate
	}
	return t.Format(utils.DateLayout), nil
}

// validate builds the ledger row or reports the first violation. No
// store writes happen until every check has passed.
func (s *entryService) validate(ctx context.Context, userID uuid.UUID, req request_models.SubmitEntryRequest, today string) (*db_models.NamaEntry, error) {
	if req.Count <= 0 {
		return nil, utils.ErrInvalidCount
	}

	sourceType := db_models.SourceType(req.SourceType)
	if sourceType == "" {
		sourceType = db_models.SourceManual
	}

	entryDate := today
	if req.EntryDate != "" {
		parsed, err := parseDate(req.EntryDate)
		if err != nil {
			return nil, err
		}
		if parsed > today {
			return nil, utils.ErrInvalidEntryDate
		}
		entryDate = parsed
	}

	var startDate, endDate *string
	if req.StartDate != "" {
		parsed, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		startDate = &parsed
	}
	if req.EndDate != "" {
		parsed, err := parseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}
	if startDate != nil && endDate != nil && *startDate > *endDate {
		return nil, utils.ErrInvalidEntryDate
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, storeErr(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if !account.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	linked, err := s.links.Exists(ctx, userID, accountID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !linked {
		return nil, utils.ErrUnlinkedAccount
	}

	return &db_models.NamaEntry{
		UserID:     userID,
		AccountID:  accountID,
		Count:      req.Count,
		SourceType: sourceType,
		EntryDate:  entryDate,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

func (s *entryService) SubmitEntry(ctx context.Context, userID uuid.UUID, req request_models.SubmitEntryRequest) (*db_models.NamaEntry, error) {
	today := s.clock.Now().Format(utils.DateLayout)

	entry, err := s.validate(ctx, userID, req, today)
	if err != nil {
		return nil, err
	}

	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, storeErr(err)
	}

	s.cache.Invalidate(AccountCacheKey(entry.AccountID), UserCacheKey(userID))
	return entry, nil
}

func (s *entryService) SubmitBatch(ctx context.Context, userID uuid.UUID, reqs []request_models.SubmitEntryRequest) ([]*db_models.NamaEntry, error) {
	if len(reqs) == 0 {
		return nil, utils.ErrEmptyBatch
	}

	today := s.clock.Now().Format(utils.DateLayout)

	entries := make([]*db_models.NamaEntry, 0, len(reqs))
	for _, req := range reqs {
		entry, err := s.validate(ctx, userID, req, today)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := s.entries.InsertBatch(ctx, entries); err != nil {
		return nil, storeErr(err)
	}

	keys := []string{UserCacheKey(userID)}
	for _, entry := range entries {
		keys = append(keys, AccountCacheKey(entry.AccountID))
	}
	s.cache.Invalidate(keys...)

	return entries, nil
}

func (s *entryService) RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]response_models.RecentEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.entries.RecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, storeErr(err)
	}
	return toRecentEntries(rows), nil
}

func toRecentEntries(rows []repositories.RecentEntryRow) []response_models.RecentEntry {
	out := make([]response_models.RecentEntry, 0, len(rows))
	for _, row := range rows {
		id, _ := uuid.Parse(row.ID)
		out = append(out, response_models.RecentEntry{
			ID:          id,
			UserName:    row.UserName,
			AccountName: row.AccountName,
			Count:       row.Count,
			SourceType:  row.SourceType,
			EntryDate:   row.EntryDate,
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out
}
