package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"namabank/internal/models/request_models"
	"namabank/internal/services"
	"namabank/pkg/utils"
)

type LibraryController struct {
	libraryService services.LibraryService
}

func NewLibraryController(libraryService services.LibraryService) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
	}
}

func (lc *LibraryController) CreatePrayer(c *gin.Context) {
	var req request_models.CreatePrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	prayer, err := lc.libraryService.CreatePrayer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prayer, "Prayer created")
}

func (lc *LibraryController) ListPrayers(c *gin.Context) {
	prayers, err := lc.libraryService.ListPrayers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prayers, "Fetched prayers")
}

func (lc *LibraryController) DeletePrayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer id")
		return
	}

	if svcErr := lc.libraryService.DeletePrayer(c.Request.Context(), id); svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, nil, "Prayer deleted")
}

func (lc *LibraryController) CreateBook(c *gin.Context) {
	var req request_models.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	book, err := lc.libraryService.CreateBook(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, book, "Book created")
}

func (lc *LibraryController) ListBooks(c *gin.Context) {
	books, err := lc.libraryService.ListBooks(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, books, "Fetched books")
}

func (lc *LibraryController) DeleteBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid book id")
		return
	}

	if svcErr := lc.libraryService.DeleteBook(c.Request.Context(), id); svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, nil, "Book deleted")
}
