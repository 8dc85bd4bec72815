package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"namabank/internal/models/request_models"
	"namabank/internal/services"
	"namabank/pkg/utils"
)

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (uc *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	token, user, err := uc.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"whatsapp": user.Whatsapp,
			"city":     user.City,
			"role":     user.Role,
		},
	}, "Login successful")
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := uc.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User created")
}

func (uc *UserController) BulkCreateUsers(c *gin.Context) {
	var req request_models.BulkCreateUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	users, err := uc.userService.BulkCreateUsers(c.Request.Context(), req.Users)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users created")
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, svcErr := uc.userService.UpdateUser(c.Request.Context(), id, req)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, user, "User updated")
}

func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Fetched users")
}

func (uc *UserController) GetLinkedAccounts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	accounts, err := uc.userService.LinkedAccounts(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Fetched linked accounts")
}

func (uc *UserController) ReplaceLinks(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req request_models.ReplaceLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	accountIDs := make([]uuid.UUID, 0, len(req.AccountIDs))
	for _, raw := range req.AccountIDs {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid account id: "+raw)
			return
		}
		accountIDs = append(accountIDs, id)
	}

	if svcErr := uc.userService.ReplaceLinks(c.Request.Context(), userID, accountIDs); svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, nil, "Account links updated")
}
