package services

import (
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup runs on the scheduler and sweeps storage the request
// path intentionally leaves dirty: orphaned media files.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now doing automatically maintain...")

	if err := CleanOrphanAttachments(); err != nil {
		log.Error().Err(err).Msg("An error occurred when cleaning orphan attachments...")
	}

	log.Debug().Msg("Automatically maintain finished.")
}
