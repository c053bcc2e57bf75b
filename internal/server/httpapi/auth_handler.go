package httpapi

import (
	"fmt"
	"net/http"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/logging"
	"github.com/Shivam7262/Writely/internal/server/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves the /api/auth endpoints.
type AuthHandler struct {
	users  *services.UserService
	logger logging.Logger
}

func NewAuthHandler(users *services.UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger.With("module", "auth_handler")}
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", apperr.ErrValidation))
		return
	}

	token, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "user registered")
	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", apperr.ErrValidation))
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Me handles GET /api/auth/me. The token has already been verified by the
// middleware; a user that vanished since the token was minted still yields 401.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.CurrentUser(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, toUserDTO(user))
}
