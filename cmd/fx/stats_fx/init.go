package stats_fx

import (
	"go.uber.org/fx"

	"namabank/internal/repositories"
	"namabank/internal/services"
	"namabank/pkg/memcache"
	"namabank/pkg/utils"
)

var Module = fx.Provide(
	provideStatsService, provideLeaderboardService)

func provideStatsService(
	entries repositories.EntryRepository,
	accounts repositories.AccountRepository,
	clock utils.Clock,
	cache memcache.StatsCache,
) services.StatsService {
	return services.NewStatsService(entries, accounts, clock, cache)
}

func provideLeaderboardService(entries repositories.EntryRepository, clock utils.Clock) services.LeaderboardService {
	return services.NewLeaderboardService(entries, clock)
}
