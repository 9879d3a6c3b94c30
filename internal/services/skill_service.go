package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/connecthire/connecthire-server/internal/models"
)

// SkillService reads the static skills reference table; nothing writes it.
type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

func (s *SkillService) List(ctx context.Context, category string) ([]models.Skill, error) {
	q := s.db.WithContext(ctx).Model(&models.Skill{}).Order("name")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var skills []models.Skill
	if err := q.Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}
