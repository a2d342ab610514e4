package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
)

type DefaultExpositorRepository struct {
	db *gorm.DB
}

func NewExpositorRepository(db *gorm.DB) *DefaultExpositorRepository {
	return &DefaultExpositorRepository{db: db}
}

func (d *DefaultExpositorRepository) FindAll() ([]*entity.Expositor, error) {
	var expositores []*entity.Expositor
	err := d.db.Order("razon_social ASC").Find(&expositores).Error
	if err != nil {
		return nil, err
	}
	return expositores, nil
}

func (d *DefaultExpositorRepository) FindByID(id string) (*entity.Expositor, error) {
	var expositor entity.Expositor
	err := d.db.Where("id = ?", id).First(&expositor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &expositor, nil
}

// FindByCuit is an existence probe: a miss is (nil, nil), not an error.
func (d *DefaultExpositorRepository) FindByCuit(cuit string) (*entity.Expositor, error) {
	var expositor entity.Expositor
	err := d.db.Where("cuit = ?", cuit).First(&expositor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &expositor, nil
}

// FindByEmail probes for the expositor linked to a login identity.
func (d *DefaultExpositorRepository) FindByEmail(email string) (*entity.Expositor, error) {
	var expositor entity.Expositor
	err := d.db.Where("email = ?", email).First(&expositor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &expositor, nil
}

func (d *DefaultExpositorRepository) Insert(fields map[string]any) error {
	return d.db.Model(&entity.Expositor{}).Create(fields).Error
}

func (d *DefaultExpositorRepository) UpdateFields(id string, fields map[string]any) error {
	return d.db.Model(&entity.Expositor{}).Where("id = ?", id).Updates(fields).Error
}
