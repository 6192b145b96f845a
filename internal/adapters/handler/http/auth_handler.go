package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/mindmate-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
	"github.com/comitanigiacomo/mindmate-engine/internal/core/services"
)

type AuthHandler struct {
	service *services.AuthService
	tokens  *services.TokenService
}

func NewAuthHandler(service *services.AuthService, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{
		service: service,
		tokens:  tokens,
	}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required" example:"Grace"`
	Email    string `json:"email" binding:"required,email" example:"grace@mindmate.app"`
	Password string `json:"password" binding:"required,min=6" example:"correct-horse"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required" example:"grace@mindmate.app"`
	Password string `json:"password" binding:"required" example:"correct-horse"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// RegisterRoutes mounts the public endpoints.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
}

// RegisterSessionRoutes mounts the endpoints that need a valid token.
func (h *AuthHandler) RegisterSessionRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/me", h.Me)
		authGroup.POST("/logout", h.Logout)
	}
}

// Signup godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body     signupRequest true "New account"
// @Success  201  {object} authResponse
// @Failure  400  {object} errorResponse
// @Failure  409  {object} errorResponse
// @Router   /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		middleware.TrackAuthAttempt("failure", "signup")
		handleError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user, "signup")
}

// Login godoc
// @Summary  Log in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body     loginRequest true "Credentials"
// @Success  200  {object} authResponse
// @Failure  401  {object} errorResponse
// @Failure  404  {object} errorResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.TrackAuthAttempt("failure", "login")
		handleError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user, "login")
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *domain.User, kind string) {
	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		handleError(c, err)
		return
	}

	middleware.TrackAuthAttempt("success", kind)
	c.JSON(status, authResponse{User: user, Token: token})
}

// Me godoc
// @Summary   Current account
// @Tags      auth
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} domain.User
// @Failure   401 {object} errorResponse
// @Router    /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	user, err := h.service.WhoAmI(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary   Revoke the current token
// @Tags      auth
// @Security  BearerAuth
// @Success   204
// @Failure   401 {object} errorResponse
// @Router    /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		handleError(c, domain.ErrUnauthenticated)
		return
	}

	if err := h.tokens.Revoke(c.Request.Context(), session); err != nil {
		handleError(c, err)
		return
	}

	middleware.TrackAuthAttempt("success", "logout")
	c.Status(http.StatusNoContent)
}
