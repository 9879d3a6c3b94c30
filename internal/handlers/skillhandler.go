package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/connecthire/connecthire-server/internal/services"
)

type SkillHandler struct {
	SkillService *services.SkillService
}

func NewSkillHandler(skills *services.SkillService) *SkillHandler {
	return &SkillHandler{SkillService: skills}
}

// List is the GET /api/skills endpoint.
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.SkillService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, gin.H{"skills": skills})
}
