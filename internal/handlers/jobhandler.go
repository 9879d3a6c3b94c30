package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connecthire/connecthire-server/internal/dtos"
	"github.com/connecthire/connecthire-server/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// Create is the POST /api/jobs endpoint.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Employer ID is required")
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"job": job})
}

// List is the GET /api/jobs endpoint.
func (h *JobHandler) List(c *gin.Context) {
	filter := services.JobFilter{
		Location: c.Query("location"),
		Skills:   splitQueryList(c.Query("skills")),
		Limit:    queryInt(c, "limit", 50),
		Offset:   queryInt(c, "offset", 0),
	}

	jobs, err := h.JobService.List(c.Request.Context(), filter)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"jobs": jobs})
}

// Get serves GET /api/jobs/:jobId; an unknown id answers {job:null}.
func (h *JobHandler) Get(c *gin.Context) {
	jobID, err := paramUint(c, "jobId")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.JobService.Get(c.Request.Context(), jobID)
	if err != nil {
		failErr(c, err)
		return
	}
	if job == nil {
		ok(c, gin.H{"job": nil})
		return
	}
	ok(c, gin.H{"job": job})
}

// ListScoped serves GET /api/jobs/employer/:employerId. gin cannot register
// a static "employer" segment next to the :jobId wildcard, so the route is
// declared as /jobs/:jobId/:employerId and dispatched here.
func (h *JobHandler) ListScoped(c *gin.Context) {
	if c.Param("jobId") != "employer" {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	employerID, err := paramUint(c, "employerId")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid employer id")
		return
	}

	jobs, err := h.JobService.ListByEmployer(c.Request.Context(), employerID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"jobs": jobs})
}
