package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"namabank/internal/models/db_models"
	"namabank/internal/models/request_models"
	"namabank/internal/repositories"
	"namabank/pkg/utils"
)

type LibraryService interface {
	CreatePrayer(ctx context.Context, req request_models.CreatePrayerRequest) (*db_models.Prayer, error)
	ListPrayers(ctx context.Context) ([]db_models.Prayer, error)
	DeletePrayer(ctx context.Context, id uuid.UUID) error

	CreateBook(ctx context.Context, req request_models.CreateBookRequest) (*db_models.Book, error)
	ListBooks(ctx context.Context) ([]db_models.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

type libraryService struct {
	library repositories.LibraryRepository
}

func NewLibraryService(library repositories.LibraryRepository) LibraryService {
	return &libraryService{library: library}
}

func (l *libraryService) CreatePrayer(ctx context.Context, req request_models.CreatePrayerRequest) (*db_models.Prayer, error) {
	prayer := &db_models.Prayer{
		Title:      req.Title,
		Body:       req.Body,
		AuthorName: req.AuthorName,
		Tags:       pq.StringArray(req.Tags),
	}
	if err := l.library.InsertPrayer(ctx, prayer); err != nil {
		return nil, storeErr(err)
	}
	return prayer, nil
}

func (l *libraryService) ListPrayers(ctx context.Context) ([]db_models.Prayer, error) {
	prayers, err := l.library.ListPrayers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return prayers, nil
}

func (l *libraryService) DeletePrayer(ctx context.Context, id uuid.UUID) error {
	if err := l.library.DeletePrayer(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPrayerNotFound
		}
		return storeErr(err)
	}
	return nil
}

func (l *libraryService) CreateBook(ctx context.Context, req request_models.CreateBookRequest) (*db_models.Book, error) {
	book := &db_models.Book{
		Title:    req.Title,
		Author:   req.Author,
		FileURL:  req.FileURL,
		CoverURL: req.CoverURL,
		Tags:     pq.StringArray(req.Tags),
	}
	if err := l.library.InsertBook(ctx, book); err != nil {
		return nil, storeErr(err)
	}
	return book, nil
}

func (l *libraryService) ListBooks(ctx context.Context) ([]db_models.Book, error) {
	books, err := l.library.ListBooks(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return books, nil
}

func (l *libraryService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	if err := l.library.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrBookNotFound
		}
		return storeErr(err)
	}
	return nil
}
