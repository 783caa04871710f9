package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notegate/backend/internal/model"
	"github.com/notegate/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin credential for a signed session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, expiresIn, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}
