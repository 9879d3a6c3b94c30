package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connecthire/connecthire-server/internal/dtos"
	"github.com/connecthire/connecthire-server/internal/models"
	"github.com/connecthire/connecthire-server/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: applications}
}

// Create is the POST /api/applications endpoint.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Job ID and developer ID are required")
		return
	}

	application, err := h.ApplicationService.Create(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"application": application})
}

// ListByJob serves GET /api/applications/:jobId.
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := paramUint(c, "jobId")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	applications, err := h.ApplicationService.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"applications": applications})
}

// ListScoped serves GET /api/applications/developer/:id and
// /api/applications/employer/:id. As with jobs, gin cannot mix a static
// segment with the :jobId wildcard, so the scope arrives as a param.
func (h *ApplicationHandler) ListScoped(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid id")
		return
	}

	switch c.Param("jobId") {
	case "developer":
		applications, err := h.ApplicationService.ListByDeveloper(c.Request.Context(), id)
		if err != nil {
			failErr(c, err)
			return
		}
		ok(c, gin.H{"applications": applications})
	case "employer":
		applications, err := h.ApplicationService.ListByEmployer(c.Request.Context(), id)
		if err != nil {
			failErr(c, err)
			return
		}
		ok(c, gin.H{"applications": applications})
	default:
		fail(c, http.StatusNotFound, "Not found")
	}
}

// UpdateStatus serves PUT /api/applications/:applicationId/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, err := paramUint(c, "applicationId")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	application, err := h.ApplicationService.UpdateStatus(
		c.Request.Context(), applicationID, models.ApplicationStatus(req.Status), req.Notes)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"application": application})
}
