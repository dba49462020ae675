package services

import (
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/database"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

func DoAutoDatabaseCleanup() {
	if database.C == nil {
		return
	}

	log.Debug().Time("now", time.Now()).Msg("Cleaning up expired and revoked sessions...")
	tx := database.C.Unscoped().Where("expired_at < ? OR deleted_at IS NOT NULL", time.Now()).Delete(&models.AuthSession{})
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up expired sessions...")
		return
	}
	log.Debug().Int64("affected", tx.RowsAffected).Msg("Cleaned up expired sessions.")
}
