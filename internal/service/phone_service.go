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

const phoneListKey = "phones:all"

// PhoneInput carries the fields accepted when creating or updating a phone.
type PhoneInput struct {
	Name           string
	Status         string
	ManufacturerID uuid.UUID
	CarrierIDs     []uuid.UUID
}

// PhoneService exposes phone catalog operations.
type PhoneService interface {
	Create(ctx context.Context, in PhoneInput) (*model.Phone, error)
	CreateBatch(ctx context.Context, in []PhoneInput) (int, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Phone, error)
	List(ctx context.Context) ([]model.Phone, error)
	Update(ctx context.Context, id uuid.UUID, in PhoneInput) (*model.Phone, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type phoneService struct {
	repo     repository.PhoneRepository
	carriers repository.CarrierRepository
	cache    *cache.Client
}

// NewPhoneService builds a PhoneService with repositories and cache.
func NewPhoneService(repo repository.PhoneRepository, carriers repository.CarrierRepository, cache *cache.Client) PhoneService {
	return &phoneService{repo: repo, carriers: carriers, cache: cache}
}

func phoneKey(id uuid.UUID) string {
	return fmt.Sprintf("phone:%s", id)
}

func (s *phoneService) build(ctx context.Context, in PhoneInput) (*model.Phone, error) {
	if in.Name == "" {
		return nil, apperr.Validation("phone name is required")
	}
	if in.Status == "" {
		return nil, apperr.Validation("phone status is required")
	}

	phone := &model.Phone{
		Name:           in.Name,
		Status:         in.Status,
		ManufacturerID: in.ManufacturerID,
	}
	for _, carrierID := range in.CarrierIDs {
		carrier, err := s.carriers.FindByID(ctx, carrierID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("carrier not found")
			}
			return nil, apperr.Internal(err)
		}
		phone.Carriers = append(phone.Carriers, *carrier)
	}
	return phone, nil
}

func (s *phoneService) Create(ctx context.Context, in PhoneInput) (*model.Phone, error) {
	phone, err := s.build(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, phone); err != nil {
		return nil, apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, phoneListKey)
	return phone, nil
}

// CreateBatch inserts a list of phones in one write and returns how many were
// stored. The whole batch is rejected if any entry fails validation.
func (s *phoneService) CreateBatch(ctx context.Context, in []PhoneInput) (int, error) {
	if len(in) == 0 {
		return 0, apperr.Validation("no phones to add")
	}

	phones := make([]model.Phone, 0, len(in))
	for _, item := range in {
		phone, err := s.build(ctx, item)
		if err != nil {
			return 0, err
		}
		phones = append(phones, *phone)
	}

	if err := s.repo.CreateBatch(ctx, phones); err != nil {
		return 0, apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, phoneListKey)
	return len(phones), nil
}

func (s *phoneService) Get(ctx context.Context, id uuid.UUID) (*model.Phone, error) {
	if data, _ := s.cache.Get(ctx, phoneKey(id)); data != nil {
		var cached model.Phone
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	phone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("phone not found")
		}
		return nil, apperr.Internal(err)
	}

	if payload, err := json.Marshal(phone); err == nil {
		_ = s.cache.Set(ctx, phoneKey(id), payload, catalogCacheTTL)
	}
	return phone, nil
}

func (s *phoneService) List(ctx context.Context) ([]model.Phone, error) {
	if data, _ := s.cache.Get(ctx, phoneListKey); data != nil {
		var cached []model.Phone
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	phones, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if payload, err := json.Marshal(phones); err == nil {
		_ = s.cache.Set(ctx, phoneListKey, payload, catalogCacheTTL)
	}
	return phones, nil
}

func (s *phoneService) Update(ctx context.Context, id uuid.UUID, in PhoneInput) (*model.Phone, error) {
	phone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("phone not found")
		}
		return nil, apperr.Internal(err)
	}

	if in.Name != "" {
		phone.Name = in.Name
	}
	if in.Status != "" {
		phone.Status = in.Status
	}
	if in.ManufacturerID != uuid.Nil {
		phone.ManufacturerID = in.ManufacturerID
	}

	if err := s.repo.Update(ctx, phone); err != nil {
		return nil, apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, phoneKey(id), phoneListKey)
	return phone, nil
}

func (s *phoneService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("phone not found")
		}
		return apperr.Internal(err)
	}
	_ = s.cache.Delete(ctx, phoneKey(id), phoneListKey)
	return nil
}
