package controllers

import (
	"github.com/gin-gonic/gin"

	"namabank/internal/services"
	"namabank/pkg/utils"
)

type LeaderboardController struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardController(leaderboardService services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
	}
}

func (lc *LeaderboardController) GetTopContributors(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 10, 1, 100)
	if !ok {
		return
	}

	ranked, err := lc.leaderboardService.TopContributors(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ranked, "Fetched top contributors")
}

func (lc *LeaderboardController) GetFastestGrowing(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 5, 1, 100)
	if !ok {
		return
	}

	ranked, err := lc.leaderboardService.FastestGrowing(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ranked, "Fetched fastest growing accounts")
}
