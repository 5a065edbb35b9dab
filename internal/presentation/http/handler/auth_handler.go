package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/syedahad2205/dajaj-pos/internal/application/service"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/request"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles operator login
// @Summary Login
// @Description Authenticate an operator and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"operator": gin.H{
			"id":    result.Operator.ID,
			"name":  result.Operator.Name,
			"email": result.Operator.Email,
		},
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
	})
}
