package service

import (
	"context"
	"errors"
	"fmt"

	"marketing_cms/internal/model"
	"marketing_cms/internal/repository"
)

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrPortfolioNotFound = errors.New("portfolio item not found")
	ErrDuplicateID       = errors.New("a record with this id already exists")
	ErrRequiredField     = errors.New("required fields must not be empty")
)

// ContentService provides CRUD over the two content kinds, Service and
// Portfolio. Both follow the same contract: listed newest first, keyed by
// their application-assigned id, partial-merge updates.
type ContentService interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, appID string) (*model.Service, error)
	CreateService(ctx context.Context, req model.CreateServiceRequest) (*model.Service, error)
	UpdateService(ctx context.Context, appID string, req model.UpdateServiceRequest) (*model.Service, error)
	DeleteService(ctx context.Context, appID string) error

	ListPortfolio(ctx context.Context) ([]model.Portfolio, error)
	GetPortfolio(ctx context.Context, appID string) (*model.Portfolio, error)
	CreatePortfolio(ctx context.Context, req model.CreatePortfolioRequest) (*model.Portfolio, error)
	UpdatePortfolio(ctx context.Context, appID string, req model.UpdatePortfolioRequest) (*model.Portfolio, error)
	DeletePortfolio(ctx context.Context, appID string) error
}

type contentService struct {
	serviceRepo   repository.ServiceRepository
	portfolioRepo repository.PortfolioRepository
}

// NewContentService creates a new ContentService
func NewContentService(serviceRepo repository.ServiceRepository, portfolioRepo repository.PortfolioRepository) ContentService {
	return &contentService{serviceRepo: serviceRepo, portfolioRepo: portfolioRepo}
}

// --- Services ---

func (s *contentService) ListServices(ctx context.Context) ([]model.Service, error) {
	services, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *contentService) GetService(ctx context.Context, appID string) (*model.Service, error) {
	svc, err := s.serviceRepo.FindByAppID(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *contentService) CreateService(ctx context.Context, req model.CreateServiceRequest) (*model.Service, error) {
	existing, err := s.serviceRepo.FindByAppID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing service: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateID
	}

	svc := &model.Service{
		ID:               req.ID,
		Icon:             req.Icon,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		LongDescription:  req.LongDescription,
		Color:            req.Color,
		Gradient:         req.Gradient,
		Features:         emptyIfNil(req.Features),
		Benefits:         emptyIfNil(req.Benefits),
		UseCases:         emptyIfNil(req.UseCases),
		Technologies:     emptyIfNil(req.Technologies),
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		// The pre-check races with concurrent creates; the unique index on id
		// is the authority and its violation is still a conflict.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *contentService) UpdateService(ctx context.Context, appID string, req model.UpdateServiceRequest) (*model.Service, error) {
	svc, err := s.serviceRepo.FindByAppID(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to find service for update: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	// Partial merge: only fields present in the request change.
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}
	if req.Title != nil {
		svc.Title = *req.Title
	}
	if req.ShortDescription != nil {
		svc.ShortDescription = *req.ShortDescription
	}
	if req.FullDescription != nil {
		svc.FullDescription = *req.FullDescription
	}
	if req.LongDescription != nil {
		svc.LongDescription = *req.LongDescription
	}
	if req.Color != nil {
		svc.Color = *req.Color
	}
	if req.Gradient != nil {
		svc.Gradient = *req.Gradient
	}
	if req.Features != nil {
		svc.Features = *req.Features
	}
	if req.Benefits != nil {
		svc.Benefits = *req.Benefits
	}
	if req.UseCases != nil {
		svc.UseCases = *req.UseCases
	}
	if req.Technologies != nil {
		svc.Technologies = *req.Technologies
	}

	if anyEmpty(svc.Icon, svc.Title, svc.ShortDescription, svc.FullDescription,
		svc.LongDescription, svc.Color, svc.Gradient) {
		return nil, ErrRequiredField
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

func (s *contentService) DeleteService(ctx context.Context, appID string) error {
	if err := s.serviceRepo.Delete(ctx, appID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// --- Portfolio ---

func (s *contentService) ListPortfolio(ctx context.Context) ([]model.Portfolio, error) {
	items, err := s.portfolioRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio: %w", err)
	}
	return items, nil
}

func (s *contentService) GetPortfolio(ctx context.Context, appID string) (*model.Portfolio, error) {
	item, err := s.portfolioRepo.FindByAppID(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio item: %w", err)
	}
	if item == nil {
		return nil, ErrPortfolioNotFound
	}
	return item, nil
}

func (s *contentService) CreatePortfolio(ctx context.Context, req model.CreatePortfolioRequest) (*model.Portfolio, error) {
	existing, err := s.portfolioRepo.FindByAppID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing portfolio item: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateID
	}

	item := &model.Portfolio{
		ID:              req.ID,
		Title:           req.Title,
		Tagline:         req.Tagline,
		Category:        req.Category,
		Image:           req.Image,
		Color:           req.Color,
		Icon:            req.Icon,
		LiveLink:        req.LiveLink,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Technologies:    emptyIfNil(req.Technologies),
		Features:        emptyIfNil(req.Features),
		Results:         emptyIfNil(req.Results),
		Client:          req.Client,
		Duration:        req.Duration,
		Status:          req.Status,
	}

	if err := s.portfolioRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return item, nil
}

func (s *contentService) UpdatePortfolio(ctx context.Context, appID string, req model.UpdatePortfolioRequest) (*model.Portfolio, error) {
	item, err := s.portfolioRepo.FindByAppID(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("failed to find portfolio item for update: %w", err)
	}
	if item == nil {
		return nil, ErrPortfolioNotFound
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Tagline != nil {
		item.Tagline = *req.Tagline
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Color != nil {
		item.Color = *req.Color
	}
	if req.Icon != nil {
		item.Icon = req.Icon
	}
	if req.LiveLink != nil {
		item.LiveLink = req.LiveLink
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.FullDescription != nil {
		item.FullDescription = *req.FullDescription
	}
	if req.Technologies != nil {
		item.Technologies = *req.Technologies
	}
	if req.Features != nil {
		item.Features = *req.Features
	}
	if req.Results != nil {
		item.Results = *req.Results
	}
	if req.Client != nil {
		item.Client = *req.Client
	}
	if req.Duration != nil {
		item.Duration = *req.Duration
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	if anyEmpty(item.Title, item.Tagline, item.Category, item.Image, item.Color,
		item.Description, item.FullDescription, item.Client, item.Duration, item.Status) {
		return nil, ErrRequiredField
	}

	if err := s.portfolioRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("failed to update portfolio item: %w", err)
	}
	return item, nil
}

func (s *contentService) DeletePortfolio(ctx context.Context, appID string) error {
	if err := s.portfolioRepo.Delete(ctx, appID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPortfolioNotFound
		}
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}
	return nil
}

func emptyIfNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}

func anyEmpty(fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			return true
		}
	}
	return false
}
