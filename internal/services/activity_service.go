package services

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-backend/internal/cache"
	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const activitiesCacheKey = "activities:all"

type ActivityService interface {
	List(ctx context.Context) ([]models.Activity, error)
	Get(ctx context.Context, id uint) (*models.Activity, error)
	Create(ctx context.Context, a *models.Activity) (*models.Activity, error)
	Update(ctx context.Context, a *models.Activity) (*models.Activity, error)
	Delete(ctx context.Context, id uint) error
}

type activityService struct {
	activities pgrepo.ActivityRepository
	cache      cache.Cache
}

func NewActivityService(activities pgrepo.ActivityRepository, c cache.Cache) ActivityService {
	return &activityService{activities: activities, cache: c}
}

func validateActivity(a *models.Activity, op string) error {
	if a.Title == "" || a.Description == "" || a.Icon == "" || a.Color == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title, description, icon, and color are required", nil)
	}
	return nil
}

func (s *activityService) List(ctx context.Context) ([]models.Activity, error) {
	const op = "ActivityService.List"

	var cached []models.Activity
	if hit, err := s.cache.GetJSON(ctx, activitiesCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.activities.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list activities", err)
	}
	_ = s.cache.SetJSON(ctx, activitiesCacheKey, rows, listCacheTTL)
	return rows, nil
}

func (s *activityService) Get(ctx context.Context, id uint) (*models.Activity, error) {
	const op = "ActivityService.Get"

	row, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Activity not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get activity", err)
	}
	return row, nil
}

func (s *activityService) Create(ctx context.Context, a *models.Activity) (*models.Activity, error) {
	const op = "ActivityService.Create"

	if err := validateActivity(a, op); err != nil {
		return nil, err
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create activity", err)
	}
	_ = s.cache.Del(ctx, activitiesCacheKey)
	return a, nil
}

func (s *activityService) Update(ctx context.Context, a *models.Activity) (*models.Activity, error) {
	const op = "ActivityService.Update"

	if err := validateActivity(a, op); err != nil {
		return nil, err
	}
	if err := s.activities.Save(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update activity", err)
	}
	_ = s.cache.Del(ctx, activitiesCacheKey)
	return a, nil
}

func (s *activityService) Delete(ctx context.Context, id uint) error {
	const op = "ActivityService.Delete"

	if err := s.activities.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Activity not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete activity", err)
	}
	_ = s.cache.Del(ctx, activitiesCacheKey)
	return nil
}
