package http

import (
	"errors"

	"companion-srv/internal/chat"
	pkgErrors "companion-srv/pkg/errors"
)

var (
	errConversationNotFound = pkgErrors.NewHTTPError(404, "Conversation not found")
	errMessageTooShort      = pkgErrors.NewHTTPError(400, "Message too short (min 3 characters)")
	errMessageTooLong       = pkgErrors.NewHTTPError(400, "Message too long (max 2000 characters)")
	errConversationArchived = pkgErrors.NewHTTPError(400, "Conversation is archived")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrConversationNotFound):
		return errConversationNotFound
	case errors.Is(err, chat.ErrMessageTooShort):
		return errMessageTooShort
	case errors.Is(err, chat.ErrMessageTooLong):
		return errMessageTooLong
	case errors.Is(err, chat.ErrConversationArchived):
		return errConversationArchived
	default:
		panic(err)
	}
}
