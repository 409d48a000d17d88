package services

import (
	"context"
	"errors"

	"github.com/yoockh/portfolio-backend/internal/cache"
	"github.com/yoockh/portfolio-backend/internal/models"
	pgrepo "github.com/yoockh/portfolio-backend/internal/repositories/postgres"
	"github.com/yoockh/portfolio-backend/internal/utils"
)

const certificationsCacheKey = "certifications:all"

type CertificationService interface {
	List(ctx context.Context) ([]models.Certification, error)
	Get(ctx context.Context, id uint) (*models.Certification, error)
	Create(ctx context.Context, c *models.Certification) (*models.Certification, error)
	Update(ctx context.Context, c *models.Certification) (*models.Certification, error)
	Delete(ctx context.Context, id uint) error
}

type certificationService struct {
	certifications pgrepo.CertificationRepository
	cache          cache.Cache
}

func NewCertificationService(certifications pgrepo.CertificationRepository, c cache.Cache) CertificationService {
	return &certificationService{certifications: certifications, cache: c}
}

func validateCertification(c *models.Certification, op string) error {
	if c.Name == "" || c.Issuer == "" || c.Year == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name, issuer, and year are required", nil)
	}
	return nil
}

func (s *certificationService) List(ctx context.Context) ([]models.Certification, error) {
	const op = "CertificationService.List"

	var cached []models.Certification
	if hit, err := s.cache.GetJSON(ctx, certificationsCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.certifications.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list certifications", err)
	}
	_ = s.cache.SetJSON(ctx, certificationsCacheKey, rows, listCacheTTL)
	return rows, nil
}

func (s *certificationService) Get(ctx context.Context, id uint) (*models.Certification, error) {
	const op = "CertificationService.Get"

	row, err := s.certifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Certification not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get certification", err)
	}
	return row, nil
}

func (s *certificationService) Create(ctx context.Context, c *models.Certification) (*models.Certification, error) {
	const op = "CertificationService.Create"

	if err := validateCertification(c, op); err != nil {
		return nil, err
	}
	if err := s.certifications.Create(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create certification", err)
	}
	_ = s.cache.Del(ctx, certificationsCacheKey)
	return c, nil
}

func (s *certificationService) Update(ctx context.Context, c *models.Certification) (*models.Certification, error) {
	const op = "CertificationService.Update"

	if err := validateCertification(c, op); err != nil {
		return nil, err
	}
	if err := s.certifications.Save(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update certification", err)
	}
	_ = s.cache.Del(ctx, certificationsCacheKey)
	return c, nil
}

func (s *certificationService) Delete(ctx context.Context, id uint) error {
	const op = "CertificationService.Delete"

	if err := s.certifications.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Certification not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete certification", err)
	}
	_ = s.cache.Del(ctx, certificationsCacheKey)
	return nil
}
