package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"namabank/internal/repositories"
	"namabank/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideUserService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(
	users repositories.UserRepository,
	links repositories.LinkRepository,
	accounts repositories.AccountRepository,
) services.UserService {
	return services.NewUserService(users, links, accounts)
}
