package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"namabank/internal/repositories"
	"namabank/internal/services"
	"namabank/pkg/memcache"
	"namabank/pkg/utils"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accounts repositories.AccountRepository, clock utils.Clock, cache memcache.StatsCache) services.AccountService {
	return services.NewAccountService(accounts, clock, cache)
}
