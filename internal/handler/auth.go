package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/model"
	"staffhub/internal/service"
	"staffhub/pkg/util"
)

// AuthHandler handles login and the password-reset flow
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), util.NormalizeEmail(req.Email), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Logged in", gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID.Hex(), "email": user.Email, "firstname": user.Firstname, "lastname": user.Lastname},
	}))
}

type resetRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset handles POST /password-reset/request
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req resetRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	token, err := h.auth.RequestPasswordReset(c.Request.Context(), util.NormalizeEmail(req.Email))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Reset token created", gin.H{"token": token}))
}

type resetConfirmBody struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPassword handles POST /password-reset/confirm
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetConfirmBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Password updated", nil))
}
