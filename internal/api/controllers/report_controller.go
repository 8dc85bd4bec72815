package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"namabank/internal/services"
	"namabank/pkg/utils"
)

type ReportController struct {
	reportService services.ReportService
}

func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

func queryInt(c *gin.Context, name string, def, min, max int) (int, bool) {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil || v < min || v > max {
		utils.RespondError(c, http.StatusBadRequest, name+" must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
		return 0, false
	}
	return v, true
}

func (rc *ReportController) GetPublicReport(c *gin.Context) {
	report, err := rc.reportService.BuildPublicReport(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Fetched public report")
}

func (rc *ReportController) GetDailySeries(c *gin.Context) {
	days, ok := queryInt(c, "days", 7, 1, 90)
	if !ok {
		return
	}

	points, err := rc.reportService.DailySeries(c.Request.Context(), days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, points, "Fetched daily series")
}

func (rc *ReportController) GetWeeklySeries(c *gin.Context) {
	weeks, ok := queryInt(c, "weeks", 4, 1, 52)
	if !ok {
		return
	}

	buckets, err := rc.reportService.WeeklySeries(c.Request.Context(), weeks)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, buckets, "Fetched weekly series")
}

func (rc *ReportController) GetSourceRatio(c *gin.Context) {
	slices, err := rc.reportService.SourceTypeRatio(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, slices, "Fetched source type ratio")
}

func (rc *ReportController) GetCityBreakdown(c *gin.Context) {
	topN, ok := queryInt(c, "top", 6, 1, 50)
	if !ok {
		return
	}

	cities, err := rc.reportService.CityBreakdown(c.Request.Context(), topN)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Fetched city breakdown")
}

func (rc *ReportController) GetNewUsersPerDay(c *gin.Context) {
	days, ok := queryInt(c, "days", 7, 1, 90)
	if !ok {
		return
	}

	points, err := rc.reportService.NewUsersPerDay(c.Request.Context(), days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, points, "Fetched new users per day")
}
