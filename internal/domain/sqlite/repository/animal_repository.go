package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
)

type DefaultAnimalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) *DefaultAnimalRepository {
	return &DefaultAnimalRepository{db: db}
}

// FindAll returns joined rows newest-first. An empty expositorID means no
// ownership scoping (administrative listing).
func (d *DefaultAnimalRepository) FindAll(expositorID string) ([]*entity.Animal, error) {
	query := d.db.
		Preload("Raza.Especie").
		Preload("Raza").
		Preload("TipoInscripcion").
		Preload("Expositor").
		Order("created_at DESC")

	if expositorID != "" {
		query = query.Where("expositor_id = ?", expositorID)
	}

	var animals []*entity.Animal
	if err := query.Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (d *DefaultAnimalRepository) FindByID(id string) (*entity.Animal, error) {
	var animal entity.Animal
	err := d.db.
		Preload("Raza.Especie").
		Preload("Raza").
		Preload("TipoInscripcion").
		Preload("Expositor").
		Where("id = ?", id).
		First(&animal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// Insert writes a sparse column map produced by the field mapper. Columns
// absent from the map fall back to their schema defaults.
func (d *DefaultAnimalRepository) Insert(fields map[string]any) error {
	return d.db.Model(&entity.Animal{}).Create(fields).Error
}

// UpdateFields applies a sparse column map to one row. Callers must not pass
// an empty map; the service short-circuits that case to a read.
func (d *DefaultAnimalRepository) UpdateFields(id string, fields map[string]any) error {
	return d.db.Model(&entity.Animal{}).Where("id = ?", id).Updates(fields).Error
}

func (d *DefaultAnimalRepository) Delete(animal *entity.Animal) error {
	return d.db.Delete(animal).Error
}
