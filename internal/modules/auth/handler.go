package auth

import (
	"errors"
	"net/http"

	"githubsearch/internal/modules/users"
	"githubsearch/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.SignUp)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh-token", h.RefreshToken)
	}
}

// SignUp registers a new user account.
// @Summary		Sign up
// @Description	Creates a new user account. Fails when the email is already registered.
// @Tags		Authentication
// @Param		request	body	SignUpRequest	true	"Registration data (email, password, firstName, lastName)"
// @Success		201	{object}	map[string]interface{}	"User created"
// @Failure		400	{object}	map[string]interface{}	"Validation error or email already registered"
// @Router		/auth/signup [POST]
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserAlreadyExists):
			response.Error(c, http.StatusBadRequest, "USER_ALREADY_EXISTS", "This email is already registered")
		case errors.Is(err, users.ErrUserCouldNotBeCreated):
			response.Error(c, http.StatusBadRequest, "USER_COULD_NOT_BE_CREATED", "Failed to create user")
		default:
			response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to sign up")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// Login authenticates a user and issues an access+refresh token pair.
// @Summary		Log in
// @Description	Verifies email and password, then returns the user together with access and refresh tokens.
// @Tags		Authentication
// @Param		request	body	LoginRequest	true	"Credentials (email, password)"
// @Success		200	{object}	map[string]interface{}	"User and token pair"
// @Failure		400	{object}	map[string]interface{}	"Wrong password"
// @Failure		404	{object}	map[string]interface{}	"Unknown email"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailNotRegistered):
			response.Error(c, http.StatusNotFound, "PASSWORD_OR_EMAIL_INCORRECT", "Password or email incorrect")
		case errors.Is(err, ErrPasswordMismatch):
			response.Error(c, http.StatusBadRequest, "PASSWORD_OR_EMAIL_INCORRECT", "Password or email incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
// @Summary		Refresh tokens
// @Description	Validates the presented refresh token against the stored per-user secret and reissues both tokens. A tampered or expired token permanently revokes the stored secret.
// @Tags		Authentication
// @Param		request	body	RefreshTokenRequest	true	"Refresh token"
// @Success		200	{object}	map[string]interface{}	"User and new token pair"
// @Failure		401	{object}	map[string]interface{}	"Invalid, expired or unknown refresh token"
// @Failure		404	{object}	map[string]interface{}	"Token subject no longer exists"
// @Router		/auth/refresh-token [POST]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
		case errors.Is(err, ErrTokenExpired):
			response.Error(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired")
		case errors.Is(err, ErrRefreshTokenNotFound):
			response.Error(c, http.StatusUnauthorized, "REFRESH_TOKEN_NOT_FOUND", "Refresh token not found")
		case errors.Is(err, users.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "REFRESH_FAILED", "Failed to refresh token")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}
