package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phonecat/internal/model"
)

// PhoneRepository defines phone persistence operations.
type PhoneRepository interface {
	Create(ctx context.Context, phone *model.Phone) error
	CreateBatch(ctx context.Context, phones []model.Phone) error
	Update(ctx context.Context, phone *model.Phone) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Phone, error)
	List(ctx context.Context) ([]model.Phone, error)
}

type phoneRepository struct {
	db *gorm.DB
}

// NewPhoneRepository builds a GORM-backed repository.
func NewPhoneRepository(db *gorm.DB) PhoneRepository {
	return &phoneRepository{db: db}
}

func (r *phoneRepository) Create(ctx context.Context, phone *model.Phone) error {
	return r.db.WithContext(ctx).Create(phone).Error
}

func (r *phoneRepository) CreateBatch(ctx context.Context, phones []model.Phone) error {
	if len(phones) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&phones).Error
}

func (r *phoneRepository) Update(ctx context.Context, phone *model.Phone) error {
	return r.db.WithContext(ctx).Save(phone).Error
}

func (r *phoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Phone{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *phoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Phone, error) {
	var phone model.Phone
	if err := r.db.WithContext(ctx).Preload("Manufacturer").Preload("Carriers").
		Where("id = ?", id).First(&phone).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

func (r *phoneRepository) List(ctx context.Context) ([]model.Phone, error) {
	var phones []model.Phone
	if err := r.db.WithContext(ctx).Preload("Manufacturer").Preload("Carriers").
		Find(&phones).Error; err != nil {
		return nil, err
	}
	return phones, nil
}
