package services

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-backend/internal/cache"
	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const experiencesCacheKey = "experiences:all"

type ExperienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Get(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) (*models.Experience, error)
	Update(ctx context.Context, e *models.Experience) (*models.Experience, error)
	Delete(ctx context.Context, id uint) error
}

type experienceService struct {
	experiences pgrepo.ExperienceRepository
	cache       cache.Cache
}

func NewExperienceService(experiences pgrepo.ExperienceRepository, c cache.Cache) ExperienceService {
	return &experienceService{experiences: experiences, cache: c}
}

func validateExperience(e *models.Experience, op string) error {
	if e.Title == "" || e.Company == "" || e.StartDate == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title, company, and startDate are required", nil)
	}
	// empty endDate means current position; normalize "" to nil
	if e.EndDate != nil && *e.EndDate == "" {
		e.EndDate = nil
	}
	if e.Images == nil {
		e.Images = []string{}
	}
	return nil
}

func (s *experienceService) List(ctx context.Context) ([]models.Experience, error) {
	const op = "ExperienceService.List"

	var cached []models.Experience
	if hit, err := s.cache.GetJSON(ctx, experiencesCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.experiences.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list experiences", err)
	}
	_ = s.cache.SetJSON(ctx, experiencesCacheKey, rows, listCacheTTL)
	return rows, nil
}

func (s *experienceService) Get(ctx context.Context, id uint) (*models.Experience, error) {
	const op = "ExperienceService.Get"

	row, err := s.experiences.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Experience not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get experience", err)
	}
	return row, nil
}

func (s *experienceService) Create(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	const op = "ExperienceService.Create"

	if err := validateExperience(e, op); err != nil {
		return nil, err
	}
	if err := s.experiences.Create(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create experience", err)
	}
	_ = s.cache.Del(ctx, experiencesCacheKey)
	return e, nil
}

func (s *experienceService) Update(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	const op = "ExperienceService.Update"

	if err := validateExperience(e, op); err != nil {
		return nil, err
	}
	if err := s.experiences.Save(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update experience", err)
	}
	_ = s.cache.Del(ctx, experiencesCacheKey)
	return e, nil
}

func (s *experienceService) Delete(ctx context.Context, id uint) error {
	const op = "ExperienceService.Delete"

	if err := s.experiences.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete experience", err)
	}
	_ = s.cache.Del(ctx, experiencesCacheKey)
	return nil
}
