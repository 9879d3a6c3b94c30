package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/connecthire/connecthire-server/internal/services"
)

// DebugHandler exposes store connectivity and row samples. Reachability
// only; none of this is part of the functional contract.
type DebugHandler struct {
	Diagnostics *services.DiagnosticsService
}

func NewDebugHandler(diagnostics *services.DiagnosticsService) *DebugHandler {
	return &DebugHandler{Diagnostics: diagnostics}
}

// Health is the GET /api/health endpoint.
func (h *DebugHandler) Health(c *gin.Context) {
	if err := h.Diagnostics.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Database connection failed",
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	ok(c, gin.H{
		"message":   "ConnectHire API is running",
		"database":  "Connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// TestDB is the GET /api/test-db table probe.
func (h *DebugHandler) TestDB(c *gin.Context) {
	probe, err := h.Diagnostics.ProbeTables(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, gin.H{
		"message":         "Database tables are accessible",
		"jobs_count":      probe.JobsCount,
		"employers_count": probe.EmployersCount,
	})
}

// TestOTP is the GET /api/test-otp table probe.
func (h *DebugHandler) TestOTP(c *gin.Context) {
	rows, err := h.Diagnostics.ProbeOTP(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, gin.H{
		"message": "OTP table is accessible",
		"count":   len(rows),
		"data":    rows,
	})
}

// User is the GET /api/debug/user/:email dump.
func (h *DebugHandler) User(c *gin.Context) {
	email := c.Param("email")

	state, err := h.Diagnostics.UserState(c.Request.Context(), email)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if state == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   "User not found",
			"email":   email,
		})
		return
	}

	ok(c, gin.H{
		"user":                state.User,
		"developerProfile":    state.Developer,
		"employerProfile":     state.Employer,
		"hasDeveloperProfile": state.Developer != nil,
		"hasEmployerProfile":  state.Employer != nil,
	})
}
