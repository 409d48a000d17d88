package services

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/portfolio-backend/internal/cache"
	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const (
	skillsCacheKey = "skills:all"
	listCacheTTL   = 5 * time.Minute
)

type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Get(ctx context.Context, id uint) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Update(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Delete(ctx context.Context, id uint) error
}

type skillService struct {
	skills pgrepo.SkillRepository
	cache  cache.Cache
}

func NewSkillService(skills pgrepo.SkillRepository, c cache.Cache) SkillService {
	return &skillService{skills: skills, cache: c}
}

func validateSkill(s *models.Skill, op string) error {
	if s.Name == "" || s.Category == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name and category are required", nil)
	}
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return utils.E(utils.CodeInvalidArgument, op, "proficiency must be between 0 and 100", nil)
	}
	return nil
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	const op = "SkillService.List"

	var cached []models.Skill
	if hit, err := s.cache.GetJSON(ctx, skillsCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}
	_ = s.cache.SetJSON(ctx, skillsCacheKey, rows, listCacheTTL)
	return rows, nil
}

func (s *skillService) Get(ctx context.Context, id uint) (*models.Skill, error) {
	const op = "SkillService.Get"

	row, err := s.skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Skill not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get skill", err)
	}
	return row, nil
}

func (s *skillService) Create(ctx context.Context, sk *models.Skill) (*models.Skill, error) {
	const op = "SkillService.Create"

	if err := validateSkill(sk, op); err != nil {
		return nil, err
	}
	if err := s.skills.Create(ctx, sk); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}
	_ = s.cache.Del(ctx, skillsCacheKey)
	return sk, nil
}

func (s *skillService) Update(ctx context.Context, sk *models.Skill) (*models.Skill, error) {
	const op = "SkillService.Update"

	if err := validateSkill(sk, op); err != nil {
		return nil, err
	}
	if err := s.skills.Save(ctx, sk); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update skill", err)
	}
	_ = s.cache.Del(ctx, skillsCacheKey)
	return sk, nil
}

func (s *skillService) Delete(ctx context.Context, id uint) error {
	const op = "SkillService.Delete"

	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Skill not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}
	_ = s.cache.Del(ctx, skillsCacheKey)
	return nil
}
