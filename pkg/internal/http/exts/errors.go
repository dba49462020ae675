package exts

import (
	"errors"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// TranslateError maps service failures onto HTTP statuses. Unknown errors are logged
// and reported with a generic message.
func TranslateError(err error) error {
	var validationErr services.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &validationErr):
		return fiber.NewError(fiber.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrPostNotFound), errors.Is(err, services.ErrCommentNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAuthorKeyMismatch):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrConfirmationRequired):
		return fiber.NewError(fiber.StatusPreconditionRequired, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrSessionInvalid):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAuthDisabled):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		log.Error().Err(err).Msg("An error occurred when processing request...")
		return fiber.NewError(fiber.StatusInternalServerError, "something went wrong, please try again")
	}
}
