package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nomaddesk/internal/handler/httperr"
	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/queries"
)

// abortBookingError maps usecase sentinels to HTTP statuses. Unknown
// errors fall through to 500 with a generic message so internals never
// leak to clients.
func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	case errors.Is(err, commands.ErrBookingNotFound),
		errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Group booking not found", nil)
	case errors.Is(err, commands.ErrInviteeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, commands.ErrParticipantMissing):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Participant not found in this group", nil)
	case errors.Is(err, commands.ErrInvalidInviteCode):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Invalid or expired invite code", nil)
	case errors.Is(err, commands.ErrNotificationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
	case errors.Is(err, queries.ErrInviteNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Invitation not found", nil)
	case errors.Is(err, commands.ErrNotOrganizer):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the organizer can perform this operation", nil)
	case errors.Is(err, commands.ErrInviteNotAllowed):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to send invitations for this group", nil)
	case errors.Is(err, queries.ErrBookingAccess),
		errors.Is(err, queries.ErrInviteAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, commands.ErrTimeSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is already booked", nil)
	case errors.Is(err, commands.ErrGroupFull):
		httperr.AbortWithError(c, http.StatusConflict, err, "Group is at maximum capacity", nil)
	case errors.Is(err, commands.ErrPendingInvite):
		httperr.AbortWithError(c, http.StatusConflict, err, "User already has a pending invitation", nil)
	case errors.Is(err, commands.ErrInvalidOperation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Operation not allowed for this booking", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
