package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"namabank/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.NamaAccount) error
	Update(ctx context.Context, account *db_models.NamaAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.NamaAccount, error)
	FindByName(ctx context.Context, name string) (*db_models.NamaAccount, error)
	// ListActive returns active accounts in name order, the documented
	// default ordering for all active-account views.
	ListActive(ctx context.Context) ([]db_models.NamaAccount, error)
	ListAll(ctx context.Context) ([]db_models.NamaAccount, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.NamaAccount) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(account).Error
	})
}

func (a *accountRepository) Update(ctx context.Context, account *db_models.NamaAccount) error {
	return a.db.WithContext(ctx).Save(account).Error
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.NamaAccount, error) {
	var account db_models.NamaAccount
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindByName(ctx context.Context, name string) (*db_models.NamaAccount, error) {
	var account db_models.NamaAccount
	err := a.db.WithContext(ctx).First(&account, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) ListActive(ctx context.Context) ([]db_models.NamaAccount, error) {
	var accounts []db_models.NamaAccount
	err := a.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&accounts).Error
	return accounts, err
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.NamaAccount, error) {
	var accounts []db_models.NamaAccount
	err := a.db.WithContext(ctx).
		Order("name ASC").
		Find(&accounts).Error
	return accounts, err
}
