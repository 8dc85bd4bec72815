package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"namabank/cmd/fx/account_fx"
	"namabank/cmd/fx/controllers_fx"
	"namabank/cmd/fx/db_fx"
	"namabank/cmd/fx/entry_fx"
	"namabank/cmd/fx/library_fx"
	"namabank/cmd/fx/report_fx"
	"namabank/cmd/fx/stats_fx"
	"namabank/cmd/fx/user_fx"
	"namabank/internal/api/controllers"
	"namabank/internal/models/db_models"
	"namabank/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		user_fx.Module,
		entry_fx.Module,
		stats_fx.Module,
		report_fx.Module,
		library_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	entryController *controllers.EntryController,
	statsController *controllers.StatsController,
	reportController *controllers.ReportController,
	leaderboardController *controllers.LeaderboardController,
	accountController *controllers.AccountController,
	userController *controllers.UserController,
	libraryController *controllers.LibraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		entryController,
		statsController,
		reportController,
		leaderboardController,
		accountController,
		userController,
		libraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	entryController *controllers.EntryController,
	statsController *controllers.StatsController,
	reportController *controllers.ReportController,
	leaderboardController *controllers.LeaderboardController,
	accountController *controllers.AccountController,
	userController *controllers.UserController,
	libraryController *controllers.LibraryController) {

	r.POST("/auth/login", userController.Login)

	entries := r.Group("/entries", middleware.JWTAuthMiddleware())
	entries.POST("", entryController.SubmitEntry)
	entries.POST("/batch", entryController.SubmitBatch)
	entries.GET("/recent", entryController.RecentEntries)

	stats := r.Group("/stats")
	stats.GET("/accounts", statsController.GetAllAccountStats)
	stats.GET("/accounts/:id", statsController.GetAccountStats)
	stats.GET("/users/:id", middleware.JWTAuthMiddleware(), statsController.GetUserStats)

	reports := r.Group("/reports")
	reports.GET("/public", reportController.GetPublicReport)
	reports.GET("/daily", reportController.GetDailySeries)
	reports.GET("/weekly", reportController.GetWeeklySeries)
	reports.GET("/sources", reportController.GetSourceRatio)
	reports.GET("/cities", reportController.GetCityBreakdown)
	reports.GET("/new-users", reportController.GetNewUsersPerDay)

	leaderboard := r.Group("/leaderboard")
	leaderboard.GET("/contributors", leaderboardController.GetTopContributors)
	leaderboard.GET("/growth", leaderboardController.GetFastestGrowing)

	r.GET("/accounts/active", accountController.ListActiveAccounts)

	moderator := middleware.RoleMiddleware(db_models.RoleModerator, db_models.RoleAdmin)

	accounts := r.Group("/accounts", middleware.JWTAuthMiddleware(), moderator)
	accounts.GET("", accountController.ListAllAccounts)
	accounts.GET("/:id", accountController.GetAccount)
	accounts.POST("", accountController.CreateAccount)
	accounts.PUT("/:id", accountController.UpdateAccount)

	users := r.Group("/users", middleware.JWTAuthMiddleware(), moderator)
	users.GET("", userController.ListUsers)
	users.POST("", userController.CreateUser)
	users.POST("/bulk", userController.BulkCreateUsers)
	users.PUT("/:id", userController.UpdateUser)
	users.PUT("/:id/links", userController.ReplaceLinks)

	r.GET("/me/accounts", middleware.JWTAuthMiddleware(), userController.GetLinkedAccounts)

	library := r.Group("/library")
	library.GET("/prayers", libraryController.ListPrayers)
	library.GET("/books", libraryController.ListBooks)
	library.POST("/prayers", middleware.JWTAuthMiddleware(), moderator, libraryController.CreatePrayer)
	library.POST("/books", middleware.JWTAuthMiddleware(), moderator, libraryController.CreateBook)
	library.DELETE("/prayers/:id", middleware.JWTAuthMiddleware(), moderator, libraryController.DeletePrayer)
	library.DELETE("/books/:id", middleware.JWTAuthMiddleware(), moderator, libraryController.DeleteBook)
}
