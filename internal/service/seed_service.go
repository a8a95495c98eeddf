package service

import (
	"context"
	"fmt"

	"phonecat/internal/apperr"
	"phonecat/internal/cache"
	"phonecat/internal/model"
	"phonecat/internal/repository"
)

// seedFixture describes one phone fixture with its related catalog names.
type seedFixture struct {
	phone        string
	status       string
	manufacturer string
	carriers     []string
}

var catalogFixtures = []seedFixture{
	{phone: "iPhone 8", status: "available", manufacturer: "Apple", carriers: []string{"Verizon", "T-Mobile"}},
	{phone: "Galaxy S8", status: "available", manufacturer: "Samsung", carriers: []string{"Verizon", "AT&T"}},
	{phone: "Pixel 2", status: "available", manufacturer: "Google", carriers: []string{"T-Mobile"}},
	{phone: "3310", status: "discontinued", manufacturer: "Nokia", carriers: []string{"AT&T"}},
}

// SeedService loads catalog fixtures, creating missing manufacturers,
// carriers, and phones. Safe to run repeatedly.
type SeedService interface {
	SeedCatalog(ctx context.Context) (created int, err error)
}

type seedService struct {
	phones        repository.PhoneRepository
	carriers      repository.CarrierRepository
	manufacturers repository.ManufacturerRepository
	cache         *cache.Client
}

// NewSeedService builds a SeedService over the catalog repositories.
func NewSeedService(
	phones repository.PhoneRepository,
	carriers repository.CarrierRepository,
	manufacturers repository.ManufacturerRepository,
	cache *cache.Client,
) SeedService {
	return &seedService{
		phones:        phones,
		carriers:      carriers,
		manufacturers: manufacturers,
		cache:         cache,
	}
}

func (s *seedService) SeedCatalog(ctx context.Context) (int, error) {
	existing, err := s.phones.List(ctx)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	seen := make(map[string]bool, len(existing))
	for _, phone := range existing {
		seen[phone.Name] = true
	}

	created := 0
	for _, fixture := range catalogFixtures {
		if seen[fixture.phone] {
			continue
		}

		manufacturer, err := s.manufacturers.FindByNameOrCreate(ctx, fixture.manufacturer)
		if err != nil {
			return created, apperr.Internal(fmt.Errorf("seed manufacturer %q: %w", fixture.manufacturer, err))
		}

		phone := model.Phone{
			Name:           fixture.phone,
			Status:         fixture.status,
			ManufacturerID: manufacturer.ID,
		}
		for _, name := range fixture.carriers {
			carrier, err := s.carriers.FindByNameOrCreate(ctx, name)
			if err != nil {
				return created, apperr.Internal(fmt.Errorf("seed carrier %q: %w", name, err))
			}
			phone.Carriers = append(phone.Carriers, *carrier)
		}

		if err := s.phones.Create(ctx, &phone); err != nil {
			return created, apperr.Internal(fmt.Errorf("seed phone %q: %w", fixture.phone, err))
		}
		created++
	}

	if created > 0 {
		_ = s.cache.Delete(ctx, phoneListKey, carrierListKey, manufacturerListKey)
	}
	return created, nil
}
