package db_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"namabank/internal/infra"
	"namabank/pkg/memcache"
	"namabank/pkg/utils"
)

var Module = fx.Provide(
	provideDB, provideClock, provideStatsCache)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return db
}

func provideClock() utils.Clock {
	return utils.NewSystemClock()
}

func provideStatsCache() memcache.StatsCache {
	return memcache.NewStatsCache()
}
