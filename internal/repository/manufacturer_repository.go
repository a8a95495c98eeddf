package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phonecat/internal/model"
)

// ManufacturerRepository defines manufacturer persistence operations.
type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer *model.Manufacturer) error
	Update(ctx context.Context, manufacturer *model.Manufacturer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Manufacturer, error)
	FindByNameOrCreate(ctx context.Context, name string) (*model.Manufacturer, error)
	List(ctx context.Context) ([]model.Manufacturer, error)
}

type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository builds a GORM-backed repository.
func NewManufacturerRepository(db *gorm.DB) ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(ctx context.Context, manufacturer *model.Manufacturer) error {
	return r.db.WithContext(ctx).Create(manufacturer).Error
}

func (r *manufacturerRepository) Update(ctx context.Context, manufacturer *model.Manufacturer) error {
	return r.db.WithContext(ctx).Save(manufacturer).Error
}

func (r *manufacturerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Manufacturer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *manufacturerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Manufacturer, error) {
	var manufacturer model.Manufacturer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&manufacturer).Error; err != nil {
		return nil, err
	}
	return &manufacturer, nil
}

func (r *manufacturerRepository) FindByNameOrCreate(ctx context.Context, name string) (*model.Manufacturer, error) {
	var manufacturer model.Manufacturer
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&manufacturer).Error
	if err == nil {
		return &manufacturer, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	manufacturer = model.Manufacturer{Name: name}
	if err := r.db.WithContext(ctx).Create(&manufacturer).Error; err != nil {
		return nil, err
	}
	return &manufacturer, nil
}

func (r *manufacturerRepository) List(ctx context.Context) ([]model.Manufacturer, error) {
	var manufacturers []model.Manufacturer
	if err := r.db.WithContext(ctx).Find(&manufacturers).Error; err != nil {
		return nil, err
	}
	return manufacturers, nil
}
