package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"namabank/internal/models/db_models"
)

type LinkRepository interface {
	Exists(ctx context.Context, userID, accountID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserAccountLink, error)
	// Replace reconciles the user's link set to exactly accountIDs in
	// one transaction: removed links are deleted, new ones inserted.
	Replace(ctx context.Context, userID uuid.UUID, accountIDs []uuid.UUID) error
}

type linkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (l *linkRepository) Exists(ctx context.Context, userID, accountID uuid.UUID) (bool, error) {
	var link db_models.UserAccountLink
	err := l.db.WithContext(ctx).
		First(&link, "user_id = ? AND account_id = ?", userID, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *linkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserAccountLink, error) {
	var links []db_models.UserAccountLink
	err := l.db.WithContext(ctx).
		Preload("Account").
		Where("user_id = ?", userID).
		Find(&links).Error
	return links, err
}

func (l *linkRepository) Replace(ctx context.Context, userID uuid.UUID, accountIDs []uuid.UUID) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		var existing []db_models.UserAccountLink
		if err := tx.WithContext(ctx).
			Where("user_id = ?", userID).
			Find(&existing).Error; err != nil {
			return err
		}

		wanted := make(map[uuid.UUID]bool, len(accountIDs))
		for _, accountID := range accountIDs {
			wanted[accountID] = true
		}

		// Hard delete removed pairs: a soft-deleted row would still
		// occupy the unique index and block re-linking the pair later.
		current := make(map[uuid.UUID]bool, len(existing))
		for _, link := range existing {
			current[link.AccountID] = true
			if wanted[link.AccountID] {
				continue
			}
			if err := tx.WithContext(ctx).Unscoped().
				Where("user_id = ? AND account_id = ?", userID, link.AccountID).
				Delete(&db_models.UserAccountLink{}).Error; err != nil {
				return err
			}
		}

		for _, accountID := range accountIDs {
			if current[accountID] {
				continue
			}
			link := db_models.UserAccountLink{
				UserID:    userID,
				AccountID: accountID,
			}
			if err := tx.WithContext(ctx).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
