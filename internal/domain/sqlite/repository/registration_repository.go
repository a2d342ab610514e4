package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
)

type DefaultRegistrationStateRepository struct {
	db *gorm.DB
}

func NewRegistrationStateRepository(db *gorm.DB) *DefaultRegistrationStateRepository {
	return &DefaultRegistrationStateRepository{db: db}
}

func (d *DefaultRegistrationStateRepository) FindByEmail(email string) (*entity.RegistrationState, error) {
	var state entity.RegistrationState
	err := d.db.Where("identity_email = ?", email).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Save replaces any previous flow state for the same identity.
func (d *DefaultRegistrationStateRepository) Save(state *entity.RegistrationState) error {
	return d.db.Save(state).Error
}

func (d *DefaultRegistrationStateRepository) DeleteByEmail(email string) error {
	return d.db.Where("identity_email = ?", email).Delete(&entity.RegistrationState{}).Error
}
