package library_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"namabank/internal/repositories"
	"namabank/internal/services"
)

var Module = fx.Provide(
	provideLibraryRepo, provideLibraryService)

func provideLibraryRepo(db *gorm.DB) repositories.LibraryRepository {
	return repositories.NewLibraryRepository(db)
}

func provideLibraryService(library repositories.LibraryRepository) services.LibraryService {
	return services.NewLibraryService(library)
}
