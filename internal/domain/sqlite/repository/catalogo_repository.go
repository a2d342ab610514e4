package repository

import (
	"gorm.io/gorm"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
)

type DefaultCatalogoRepository struct {
	db *gorm.DB
}

func NewCatalogoRepository(db *gorm.DB) *DefaultCatalogoRepository {
	return &DefaultCatalogoRepository{db: db}
}

func (d *DefaultCatalogoRepository) FindAllEspecies() ([]*entity.Especie, error) {
	var especies []*entity.Especie
	err := d.db.Order("nombre ASC").Find(&especies).Error
	if err != nil {
		return nil, err
	}
	return especies, nil
}

func (d *DefaultCatalogoRepository) FindAllRazas() ([]*entity.Raza, error) {
	var razas []*entity.Raza
	err := d.db.Preload("Especie").Order("nombre ASC").Find(&razas).Error
	if err != nil {
		return nil, err
	}
	return razas, nil
}

func (d *DefaultCatalogoRepository) FindAllTiposInscripcion() ([]*entity.TipoInscripcion, error) {
	var tipos []*entity.TipoInscripcion
	err := d.db.Order("id ASC").Find(&tipos).Error
	if err != nil {
		return nil, err
	}
	return tipos, nil
}

func (d *DefaultCatalogoRepository) SaveEspecie(especie *entity.Especie) error {
	return d.db.Save(especie).Error
}

func (d *DefaultCatalogoRepository) DeleteEspecie(id int) error {
	return d.db.Delete(&entity.Especie{}, id).Error
}

func (d *DefaultCatalogoRepository) SaveRaza(raza *entity.Raza) error {
	return d.db.Save(raza).Error
}

func (d *DefaultCatalogoRepository) DeleteRaza(id int) error {
	return d.db.Delete(&entity.Raza{}, id).Error
}

func (d *DefaultCatalogoRepository) SaveTipoInscripcion(tipo *entity.TipoInscripcion) error {
	return d.db.Save(tipo).Error
}

func (d *DefaultCatalogoRepository) DeleteTipoInscripcion(id int) error {
	return d.db.Delete(&entity.TipoInscripcion{}, id).Error
}
