package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phonecat/internal/model"
)

// CarrierRepository defines carrier persistence operations.
type CarrierRepository interface {
	Create(ctx context.Context, carrier *model.Carrier) error
	Update(ctx context.Context, carrier *model.Carrier) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Carrier, error)
	FindByNameOrCreate(ctx context.Context, name string) (*model.Carrier, error)
	List(ctx context.Context) ([]model.Carrier, error)
}

type carrierRepository struct {
	db *gorm.DB
}

// NewCarrierRepository builds a GORM-backed repository.
func NewCarrierRepository(db *gorm.DB) CarrierRepository {
	return &carrierRepository{db: db}
}

func (r *carrierRepository) Create(ctx context.Context, carrier *model.Carrier) error {
	return r.db.WithContext(ctx).Create(carrier).Error
}

func (r *carrierRepository) Update(ctx context.Context, carrier *model.Carrier) error {
	return r.db.WithContext(ctx).Save(carrier).Error
}

func (r *carrierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Carrier{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *carrierRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Carrier, error) {
	var carrier model.Carrier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&carrier).Error; err != nil {
		return nil, err
	}
	return &carrier, nil
}

func (r *carrierRepository) FindByNameOrCreate(ctx context.Context, name string) (*model.Carrier, error) {
	var carrier model.Carrier
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&carrier).Error
	if err == nil {
		return &carrier, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	carrier = model.Carrier{Name: name}
	if err := r.db.WithContext(ctx).Create(&carrier).Error; err != nil {
		return nil, err
	}
	return &carrier, nil
}

func (r *carrierRepository) List(ctx context.Context) ([]model.Carrier, error) {
	var carriers []model.Carrier
	if err := r.db.WithContext(ctx).Find(&carriers).Error; err != nil {
		return nil, err
	}
	return carriers, nil
}
