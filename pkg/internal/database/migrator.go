package database

import (
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Post{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.AuthSession{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
