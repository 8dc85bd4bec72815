package entry_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"namabank/internal/repositories"
	"namabank/internal/services"
	"namabank/pkg/memcache"
	"namabank/pkg/utils"
)

var Module = fx.Provide(
	provideEntryRepo, provideLinkRepo, provideEntryService)

func provideEntryRepo(db *gorm.DB) repositories.EntryRepository {
	return repositories.NewEntryRepository(db)
}

func provideLinkRepo(db *gorm.DB) repositories.LinkRepository {
	return repositories.NewLinkRepository(db)
}

func provideEntryService(
	entries repositories.EntryRepository,
	accounts repositories.AccountRepository,
	links repositories.LinkRepository,
	clock utils.Clock,
	cache memcache.StatsCache,
) services.EntryService {
	return services.NewEntryService(entries, accounts, links, clock, cache)
}
