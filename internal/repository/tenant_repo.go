package repository

import (
	"errors"

	"hissaback/internal/domain"
	"hissaback/internal/models"

	"gorm.io/gorm"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Create(t *models.Tenant) error {
	err := r.db.Create(t).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrInvalidInput
	}
	return err
}

func (r *TenantRepository) GetByID(id string) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepository) GetByPhone(phone string) (*models.Tenant, error) {
	var t models.Tenant
	if err := r.db.First(&t, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepository) Update(t *models.Tenant) error {
	return r.db.Save(t).Error
}

func (r *TenantRepository) List() ([]models.Tenant, error) {
	var list []models.Tenant
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}
