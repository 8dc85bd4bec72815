package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"namabank/internal/services"
	"namabank/pkg/utils"
)

type StatsController struct {
	statsService services.StatsService
}

func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

func (sc *StatsController) GetAccountStats(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid account id")
		return
	}

	summary, svcErr := sc.statsService.AggregateForAccount(c.Request.Context(), accountID)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, summary, "Fetched account stats")
}

func (sc *StatsController) GetAllAccountStats(c *gin.Context) {
	summaries, err := sc.statsService.AggregateForAllActiveAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Fetched stats for all active accounts")
}

func (sc *StatsController) GetUserStats(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	summary, svcErr := sc.statsService.AggregateForUser(c.Request.Context(), userID)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, summary, "Fetched user stats")
}
