package report_fx

import (
	"go.uber.org/fx"

	"namabank/internal/repositories"
	"namabank/internal/services"
	"namabank/pkg/utils"
)

var Module = fx.Provide(
	provideReportService)

func provideReportService(
	entries repositories.EntryRepository,
	users repositories.UserRepository,
	stats services.StatsService,
	leaderboard services.LeaderboardService,
	clock utils.Clock,
) services.ReportService {
	return services.NewReportService(entries, users, stats, leaderboard, clock)
}
