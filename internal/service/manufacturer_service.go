package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phonecat/internal/apperr"
	"phonecat/internal/cache"
	"phonecat/internal/model"
	"phonecat/internal/repository"
)

const manufacturerListKey = "manufacturers:all"

// ManufacturerService exposes manufacturer catalog operations.
type ManufacturerService interface {
	Create(ctx context.Context, name string) (*model.Manufacturer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Manufacturer, error)
	List(ctx context.Context) ([]model.Manufacturer, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Manufacturer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type manufacturerService struct {
	repo  repository.ManufacturerRepository
	cache *cache.Client
}

// NewManufacturerService builds a ManufacturerService with repository and cache.
func NewManufacturerService(repo repository.ManufacturerRepository, cache *cache.Client) ManufacturerService {
	return &manufacturerService{repo: repo, cache: cache}
}

func manufacturerKey(id uuid.UUID) string {
	return fmt.Sprintf("manufacturer:%s", id)
}

func (s *manufacturerService) Create(ctx context.Context, name string) (*model.Manufacturer, error) {
	if name == "" {
		return nil, apperr.Validation("manufacturer name is required")
	}
	manufacturer := &model.Manufacturer{Name: name}
	if err := s.repo.Create(ctx, manufacturer); err != nil {
		return nil, apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, manufacturerListKey)
	return manufacturer, nil
}

func (s *manufacturerService) Get(ctx context.Context, id uuid.UUID) (*model.Manufacturer, error) {
	if data, _ := s.cache.Get(ctx, manufacturerKey(id)); data != nil {
		var cached model.Manufacturer
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	manufacturer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("manufacturer not found")
		}
		return nil, apperr.Internal(err)
	}

	if payload, err := json.Marshal(manufacturer); err == nil {
		_ = s.cache.Set(ctx, manufacturerKey(id), payload, catalogCacheTTL)
	}
	return manufacturer, nil
}

func (s *manufacturerService) List(ctx context.Context) ([]model.Manufacturer, error) {
	if data, _ := s.cache.Get(ctx, manufacturerListKey); data != nil {
		var cached []model.Manufacturer
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	manufacturers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if payload, err := json.Marshal(manufacturers); err == nil {
		_ = s.cache.Set(ctx, manufacturerListKey, payload, catalogCacheTTL)
	}
	return manufacturers, nil
}

func (s *manufacturerService) Update(ctx context.Context, id uuid.UUID, name string) (*model.Manufacturer, error) {
	if name == "" {
		return nil, apperr.Validation("manufacturer name is required")
	}
	manufacturer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("manufacturer not found")
		}
		return nil, apperr.Internal(err)
	}

	manufacturer.Name = name
	if err := s.repo.Update(ctx, manufacturer); err != nil {
		return nil, apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, manufacturerKey(id), manufacturerListKey)
	return manufacturer, nil
}

func (s *manufacturerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("manufacturer not found")
		}
		return apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, manufacturerKey(id), manufacturerListKey)
	return nil
}
