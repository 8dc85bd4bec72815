package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"namabank/internal/models/request_models"
	"namabank/internal/services"
	"namabank/pkg/utils"
)

type EntryController struct {
	entryService services.EntryService
}

func NewEntryController(entryService services.EntryService) *EntryController {
	return &EntryController{
		entryService: entryService,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return id, true
}

// SubmitEntry records one devotion entry against a linked account.
func (ec *EntryController) SubmitEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry, err := ec.entryService.SubmitEntry(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Nama entry recorded")
}

func (ec *EntryController) SubmitBatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SubmitBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entries, err := ec.entryService.SubmitBatch(c.Request.Context(), userID, req.Entries)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Nama entries recorded")
}

func (ec *EntryController) RecentEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	entries, svcErr := ec.entryService.RecentEntries(c.Request.Context(), userID, limit)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, entries, "Fetched recent entries")
}
