package controllers_fx

import (
	"go.uber.org/fx"

	"namabank/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewEntryController),
	fx.Provide(controllers.NewStatsController),
	fx.Provide(controllers.NewReportController),
	fx.Provide(controllers.NewLeaderboardController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewLibraryController))
