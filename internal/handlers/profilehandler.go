package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/connecthire/connecthire-server/internal/dtos"
	"github.com/connecthire/connecthire-server/internal/models"
	"github.com/connecthire/connecthire-server/internal/services"
)

type ProfileHandler struct {
	ProfileService *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{ProfileService: profiles}
}

// UpsertDeveloper serves both POST and PUT /api/developer-profile.
func (h *ProfileHandler) UpsertDeveloper(c *gin.Context) {
	var req dtos.DeveloperProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	profile, err := h.ProfileService.UpsertDeveloper(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"profile": profile})
}

func (h *ProfileHandler) UpsertEmployer(c *gin.Context) {
	var req dtos.EmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	profile, err := h.ProfileService.UpsertEmployer(c.Request.Context(), req)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"profile": profile})
}

// GetDeveloper returns {profile:null} for an unknown userId, not an error.
func (h *ProfileHandler) GetDeveloper(c *gin.Context) {
	userID, err := paramUint(c, "userId")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.ProfileService.GetDeveloper(c.Request.Context(), userID)
	if err != nil {
		failErr(c, err)
		return
	}
	if profile == nil {
		ok(c, gin.H{"profile": nil})
		return
	}
	ok(c, gin.H{"profile": dtos.DeveloperProfileView{DeveloperProfile: *profile, Role: string(models.RoleDeveloper)}})
}

func (h *ProfileHandler) GetEmployer(c *gin.Context) {
	userID, err := paramUint(c, "userId")
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.ProfileService.GetEmployer(c.Request.Context(), userID)
	if err != nil {
		failErr(c, err)
		return
	}
	if profile == nil {
		ok(c, gin.H{"profile": nil})
		return
	}
	ok(c, gin.H{"profile": dtos.EmployerProfileView{EmployerProfile: *profile, Role: string(models.RoleEmployer)}})
}

// ListDeveloperProfiles is the GET /api/developer-profiles browse endpoint;
// its location filter searches the preferred job location.
func (h *ProfileHandler) ListDeveloperProfiles(c *gin.Context) {
	filter := services.DeveloperFilter{
		PreferredLocation: c.Query("location"),
		Experience:        c.Query("experience"),
		Skills:            splitQueryList(c.Query("skills")),
		Limit:             queryInt(c, "limit", 50),
		Offset:            queryInt(c, "offset", 0),
	}

	developers, err := h.ProfileService.ListDevelopers(c.Request.Context(), filter)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"developers": developers})
}

// SearchDevelopers is the GET /api/developers endpoint; its location filter
// searches the current location instead.
func (h *ProfileHandler) SearchDevelopers(c *gin.Context) {
	filter := services.DeveloperFilter{
		Location:   c.Query("location"),
		Experience: c.Query("experience"),
		Skills:     splitQueryList(c.Query("skills")),
		Limit:      queryInt(c, "limit", 50),
		Offset:     queryInt(c, "offset", 0),
	}

	developers, err := h.ProfileService.ListDevelopers(c.Request.Context(), filter)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"developers": developers})
}

func (h *ProfileHandler) ListEmployerProfiles(c *gin.Context) {
	filter := services.EmployerFilter{
		Location: c.Query("location"),
		Industry: c.Query("industry"),
		Limit:    queryInt(c, "limit", 50),
		Offset:   queryInt(c, "offset", 0),
	}

	employers, err := h.ProfileService.ListEmployers(c.Request.Context(), filter)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"employers": employers})
}

func paramUint(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(n), err
}

func queryInt(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// splitQueryList parses ?skills=python,go into trimmed elements.
func splitQueryList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
