package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/infra"
	"tripmate/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	provideNotifier,
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideNotifier(db *gorm.DB) repositories.TripNotifier {
	return repositories.NewTripNotifier(db)
}
