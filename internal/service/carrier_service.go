package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phonecat/internal/apperr"
	"phonecat/internal/cache"
	"phonecat/internal/model"
	"phonecat/internal/repository"
)

const catalogCacheTTL = 5 * time.Minute

const carrierListKey = "carriers:all"

// CarrierService exposes carrier catalog operations.
type CarrierService interface {
	Create(ctx context.Context, name string) (*model.Carrier, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Carrier, error)
	List(ctx context.Context) ([]model.Carrier, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Carrier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type carrierService struct {
	repo  repository.CarrierRepository
	cache *cache.Client
}

// NewCarrierService builds a CarrierService with repository and cache.
func NewCarrierService(repo repository.CarrierRepository, cache *cache.Client) CarrierService {
	return &carrierService{repo: repo, cache: cache}
}

func carrierKey(id uuid.UUID) string {
	return fmt.Sprintf("carrier:%s", id)
}

func (s *carrierService) Create(ctx context.Context, name string) (*model.Carrier, error) {
	if name == "" {
		return nil, apperr.Validation("carrier name is required")
	}
	carrier := &model.Carrier{Name: name}
	if err := s.repo.Create(ctx, carrier); err != nil {
		return nil, apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, carrierListKey)
	return carrier, nil
}

func (s *carrierService) Get(ctx context.Context, id uuid.UUID) (*model.Carrier, error) {
	if data, _ := s.cache.Get(ctx, carrierKey(id)); data != nil {
		var cached model.Carrier
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	carrier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("carrier not found")
		}
		return nil, apperr.Internal(err)
	}

	if payload, err := json.Marshal(carrier); err == nil {
		_ = s.cache.Set(ctx, carrierKey(id), payload, catalogCacheTTL)
	}
	return carrier, nil
}

func (s *carrierService) List(ctx context.Context) ([]model.Carrier, error) {
	if data, _ := s.cache.Get(ctx, carrierListKey); data != nil {
		var cached []model.Carrier
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	carriers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if payload, err := json.Marshal(carriers); err == nil {
		_ = s.cache.Set(ctx, carrierListKey, payload, catalogCacheTTL)
	}
	return carriers, nil
}

func (s *carrierService) Update(ctx context.Context, id uuid.UUID, name string) (*model.Carrier, error) {
	if name == "" {
		return nil, apperr.Validation("carrier name is required")
	}
	carrier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("carrier not found")
		}
		return nil, apperr.Internal(err)
	}

	carrier.Name = name
	if err := s.repo.Update(ctx, carrier); err != nil {
		return nil, apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, carrierKey(id), carrierListKey)
	return carrier, nil
}

func (s *carrierService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("carrier not found")
		}
		return apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, carrierKey(id), carrierListKey)
	return nil
}
