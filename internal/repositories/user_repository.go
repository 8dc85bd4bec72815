package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"namabank/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	InsertBatch(ctx context.Context, users []*db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByWhatsapp(ctx context.Context, whatsapp string) (*db_models.User, error)
	List(ctx context.Context) ([]db_models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	// ListCreatedAtSince feeds the new-users-per-day report; bucketing
	// by calendar date happens at the service with the injected clock.
	ListCreatedAtSince(ctx context.Context, minUnix int64) ([]int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) InsertBatch(ctx context.Context, users []*db_models.User) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&users).Error
	})
}

func (u *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Save(user).Error
}

func (u *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByWhatsapp(ctx context.Context, whatsapp string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "whatsapp = ?", whatsapp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) List(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := u.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (u *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := u.db.WithContext(ctx).Model(&db_models.User{}).Count(&n).Error
	return n, err
}

func (u *userRepository) ListCreatedAtSince(ctx context.Context, minUnix int64) ([]int64, error) {
	var stamps []int64
	err := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("created_at >= ?", minUnix).
		Pluck("created_at", &stamps).Error
	return stamps, err
}
