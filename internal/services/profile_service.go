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

const profileCacheKey = "profile"

type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, p *models.Profile) (*models.Profile, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	cache    cache.Cache
}

func NewProfileService(profiles pgrepo.ProfileRepository, c cache.Cache) ProfileService {
	return &profileService{profiles: profiles, cache: c}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	const op = "ProfileService.Get"

	var cached models.Profile
	if hit, err := s.cache.GetJSON(ctx, profileCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	_ = s.cache.SetJSON(ctx, profileCacheKey, p, listCacheTTL)
	return p, nil
}

// Save creates the profile on first call and replaces it in place afterwards.
func (s *profileService) Save(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	const op = "ProfileService.Save"

	if p.FullName == "" || p.Position == "" || p.Email == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "fullName, position, and email are required", nil)
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save profile", err)
	}
	_ = s.cache.Del(ctx, profileCacheKey)
	return p, nil
}
