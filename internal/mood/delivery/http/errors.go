package http

import (
	"errors"

	"companion-srv/internal/mood"
	pkgErrors "companion-srv/pkg/errors"
)

var (
	errInvalidMood      = pkgErrors.NewHTTPError(400, "Unknown mood category")
	errInvalidIntensity = pkgErrors.NewHTTPError(400, "Intensity must be between 1 and 10")
	errNoteTooLong      = pkgErrors.NewHTTPError(400, "Note too long (max 500 characters)")
	errInvalidWindow    = pkgErrors.NewHTTPError(400, "Window must be between 1 and 365 days")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, mood.ErrInvalidMood):
		return errInvalidMood
	case errors.Is(err, mood.ErrInvalidIntensity):
		return errInvalidIntensity
	case errors.Is(err, mood.ErrNoteTooLong):
		return errNoteTooLong
	case errors.Is(err, mood.ErrInvalidWindow):
		return errInvalidWindow
	default:
		panic(err)
	}
}
