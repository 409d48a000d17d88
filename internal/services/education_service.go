package services

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-backend/internal/cache"
	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const educationCacheKey = "education:all"

type EducationService interface {
	List(ctx context.Context) ([]models.Education, error)
	Get(ctx context.Context, id uint) (*models.Education, error)
	Create(ctx context.Context, e *models.Education) (*models.Education, error)
	Update(ctx context.Context, e *models.Education) (*models.Education, error)
	Delete(ctx context.Context, id uint) error
}

type educationService struct {
	education pgrepo.EducationRepository
	cache     cache.Cache
}

func NewEducationService(education pgrepo.EducationRepository, c cache.Cache) EducationService {
	return &educationService{education: education, cache: c}
}

func validateEducation(e *models.Education, op string) error {
	if e.Degree == "" || e.Institution == "" || e.Year == "" {
		return utils.E(utils.CodeInvalidArgument, op, "degree, institution, and year are required", nil)
	}
	return nil
}

func (s *educationService) List(ctx context.Context) ([]models.Education, error) {
	const op = "EducationService.List"

	var cached []models.Education
	if hit, err := s.cache.GetJSON(ctx, educationCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.education.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list education", err)
	}
	_ = s.cache.SetJSON(ctx, educationCacheKey, rows, listCacheTTL)
	return rows, nil
}

func (s *educationService) Get(ctx context.Context, id uint) (*models.Education, error) {
	const op = "EducationService.Get"

	row, err := s.education.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Education not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get education", err)
	}
	return row, nil
}

func (s *educationService) Create(ctx context.Context, e *models.Education) (*models.Education, error) {
	const op = "EducationService.Create"

	if err := validateEducation(e, op); err != nil {
		return nil, err
	}
	if err := s.education.Create(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create education", err)
	}
	_ = s.cache.Del(ctx, educationCacheKey)
	return e, nil
}

func (s *educationService) Update(ctx context.Context, e *models.Education) (*models.Education, error) {
	const op = "EducationService.Update"

	if err := validateEducation(e, op); err != nil {
		return nil, err
	}
	if err := s.education.Save(ctx, e); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update education", err)
	}
	_ = s.cache.Del(ctx, educationCacheKey)
	return e, nil
}

func (s *educationService) Delete(ctx context.Context, id uint) error {
	const op = "EducationService.Delete"

	if err := s.education.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Education not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete education", err)
	}
	_ = s.cache.Del(ctx, educationCacheKey)
	return nil
}
