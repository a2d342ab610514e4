package sqlite

import (
	"gorm.io/gorm"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
)

// Seed fills the catalog tables on first boot so the registration forms have
// something to offer. A non-empty especies table means an administrator
// already manages the catalogs and nothing is touched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Especie{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	especies := []entity.Especie{
		{Nombre: "Bovinos"},
		{Nombre: "Ovinos"},
		{Nombre: "Equinos"},
	}
	if err := db.Create(&especies).Error; err != nil {
		return err
	}

	razas := []entity.Raza{
		{Nombre: "Angus", EspecieID: especies[0].ID},
		{Nombre: "Hereford", EspecieID: especies[0].ID},
		{Nombre: "Brangus", EspecieID: especies[0].ID},
		{Nombre: "Merino", EspecieID: especies[1].ID},
		{Nombre: "Criollo", EspecieID: especies[2].ID},
	}
	if err := db.Create(&razas).Error; err != nil {
		return err
	}

	tipos := []entity.TipoInscripcion{
		{Nombre: "Pedigree"},
		{Nombre: "Puro Controlado"},
	}
	return db.Create(&tipos).Error
}
