package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"namabank/internal/models/db_models"
)

type LibraryRepository interface {
	InsertPrayer(ctx context.Context, prayer *db_models.Prayer) error
	ListPrayers(ctx context.Context) ([]db_models.Prayer, error)
	DeletePrayer(ctx context.Context, id uuid.UUID) error

	InsertBook(ctx context.Context, book *db_models.Book) error
	ListBooks(ctx context.Context) ([]db_models.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (l *libraryRepository) InsertPrayer(ctx context.Context, prayer *db_models.Prayer) error {
	return l.db.WithContext(ctx).Create(prayer).Error
}

func (l *libraryRepository) ListPrayers(ctx context.Context) ([]db_models.Prayer, error) {
	var prayers []db_models.Prayer
	err := l.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&prayers).Error
	return prayers, err
}

func (l *libraryRepository) DeletePrayer(ctx context.Context, id uuid.UUID) error {
	res := l.db.WithContext(ctx).Delete(&db_models.Prayer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (l *libraryRepository) InsertBook(ctx context.Context, book *db_models.Book) error {
	return l.db.WithContext(ctx).Create(book).Error
}

func (l *libraryRepository) ListBooks(ctx context.Context) ([]db_models.Book, error) {
	var books []db_models.Book
	err := l.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&books).Error
	return books, err
}

func (l *libraryRepository) DeleteBook(ctx context.Context, id uuid.UUID) error {
	res := l.db.WithContext(ctx).Delete(&db_models.Book{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
