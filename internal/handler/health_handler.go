package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"klagedok/internal/accesspolicy"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db    *sqlx.DB
	rules *accesspolicy.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, rules *accesspolicy.Store) *HealthHandler {
	return &HealthHandler{db: db, rules: rules}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. The service is not ready until the database
// is reachable and the rule table has been loaded.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}
	table := h.rules.Table()
	if table == nil || table.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "rule table not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rules": table.Len()})
}
