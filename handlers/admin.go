package handlers

import (
	"net/http"
	"time"

	"localspot/config"
	"localspot/services/stats"
	"localspot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// adminTokenTTL bounds an admin session.
const adminTokenTTL = 12 * time.Hour

// AdminHandler serves admin login and the dashboard stats.
type AdminHandler struct {
	Stats stats.StatsService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(statsSvc stats.StatsService) *AdminHandler {
	return &AdminHandler{Stats: statsSvc}
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginHandler checks the configured admin credentials and issues a JWT.
func (h *AdminHandler) AdminLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cfg := config.AppConfig
	if cfg.AdminPasswordHash == "" || req.Email != cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		logger.Warn("Rejected admin login", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(req.Email, adminTokenTTL)
	if err != nil {
		logger.Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}

// AdminStatsHandler returns the dashboard snapshot.
func (h *AdminHandler) AdminStatsHandler(c *gin.Context) {
	logger := getLogger(c)

	snapshot, err := h.Stats.AdminStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to assemble admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admin stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": snapshot})
}
