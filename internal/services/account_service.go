package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"namabank/internal/models/db_models"
	"namabank/internal/models/request_models"
	"namabank/internal/repositories"
	"namabank/pkg/memcache"
	"namabank/pkg/utils"
)

// AccountService manages Nama Bank accounts. Deactivation is always a
// soft-disable; ledger entries are never touched.
type AccountService interface {
	CreateAccount(ctx context.Context, req request_models.CreateAccountRequest) (*db_models.NamaAccount, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, req request_models.UpdateAccountRequest) (*db_models.NamaAccount, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*db_models.NamaAccount, error)
	ListActiveAccounts(ctx context.Context) ([]db_models.NamaAccount, error)
	ListAllAccounts(ctx context.Context) ([]db_models.NamaAccount, error)
}

type accountService struct {
	accounts repositories.AccountRepository
	clock    utils.Clock
	cache    memcache.StatsCache
}

func NewAccountService(accounts repositories.AccountRepository, clock utils.Clock, cache memcache.StatsCache) AccountService {
	return &accountService{accounts: accounts, clock: clock, cache: cache}
}

func (a *accountService) CreateAccount(ctx context.Context, req request_models.CreateAccountRequest) (*db_models.NamaAccount, error) {
	if req.TargetGoal != nil && *req.TargetGoal <= 0 {
		return nil, utils.ErrInvalidTarget
	}

	existing, err := a.accounts.FindByName(ctx, req.Name)
	if err != nil {
		return nil, storeErr(err)
	}
	if existing != nil {
		return nil, utils.ErrDuplicateAccountName
	}

	startDate := req.StartDate
	if startDate == "" {
		startDate = a.clock.Now().Format(utils.DateLayout)
	} else if _, err := time.Parse(utils.DateLayout, startDate); err != nil {
		return nil, utils.ErrInvalidEntryDate
	}

	var endDate *string
	if req.EndDate != "" {
		if _, err := time.Parse(utils.DateLayout, req.EndDate); err != nil {
			return nil, utils.ErrInvalidEntryDate
		}
		endDate = &req.EndDate
	}

	account := &db_models.NamaAccount{
		Name:       req.Name,
		IsActive:   true,
		StartDate:  startDate,
		EndDate:    endDate,
		TargetGoal: req.TargetGoal,
	}

	if err := a.accounts.Insert(ctx, account); err != nil {
		return nil, storeErr(err)
	}
	return account, nil
}

func (a *accountService) UpdateAccount(ctx context.Context, id uuid.UUID, req request_models.UpdateAccountRequest) (*db_models.NamaAccount, error) {
	account, err := a.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if req.Name != nil && *req.Name != account.Name {
		existing, err := a.accounts.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, storeErr(err)
		}
		if existing != nil {
			return nil, utils.ErrDuplicateAccountName
		}
		account.Name = *req.Name
	}
	if req.TargetGoal != nil {
		if *req.TargetGoal <= 0 {
			return nil, utils.ErrInvalidTarget
		}
		account.TargetGoal = req.TargetGoal
	}
	if req.StartDate != nil {
		if _, err := time.Parse(utils.DateLayout, *req.StartDate); err != nil {
			return nil, utils.ErrInvalidEntryDate
		}
		account.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		if _, err := time.Parse(utils.DateLayout, *req.EndDate); err != nil {
			return nil, utils.ErrInvalidEntryDate
		}
		account.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	if err := a.accounts.Update(ctx, account); err != nil {
		return nil, storeErr(err)
	}

	// Active listings changed shape; drop the memoized summary.
	a.cache.Invalidate(AccountCacheKey(account.ID))

	return account, nil
}

func (a *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*db_models.NamaAccount, error) {
	account, err := a.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *accountService) ListActiveAccounts(ctx context.Context) ([]db_models.NamaAccount, error) {
	accounts, err := a.accounts.ListActive(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return accounts, nil
}

func (a *accountService) ListAllAccounts(ctx context.Context) ([]db_models.NamaAccount, error) {
	accounts, err := a.accounts.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return accounts, nil
}
