package sqlite

import (
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
)

func Init() (*gorm.DB, error) {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "ruraljm.db"
	}

	// TranslateError turns driver unique-violations into gorm.ErrDuplicatedKey,
	// which is the only signal the repositories use to report RP and CUIT
	// conflicts.
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Especie{},
		&entity.Raza{},
		&entity.TipoInscripcion{},
		&entity.Expositor{},
		&entity.Animal{},
		&entity.RegistrationState{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
