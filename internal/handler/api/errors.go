package api

import (
	"context"
	"net/http"

	"homeservice-booking/internal/domain/contact"
	"homeservice-booking/internal/domain/schedule"
	"homeservice-booking/internal/handler/httperr"
	"homeservice-booking/internal/pkg/errs"
	"homeservice-booking/internal/usecase/commands"
	"homeservice-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// statusFor maps usecase errors onto HTTP statuses. Unknown errors are 500.
func statusFor(err error) (int, string) {
	switch {
	case errs.Is(err, context.Canceled), errs.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, "Request canceled"
	case errs.Is(err, schedule.ErrSlotUnavailable), errs.Is(err, schedule.ErrProviderUnavailable):
		return http.StatusConflict, err.Error()
	case errs.Is(err, commands.ErrProviderNotFound):
		return http.StatusNotFound, "Provider not found"
	case errs.Is(err, commands.ErrExtraTaskUnknown):
		return http.StatusNotFound, "Extra task not found"
	case errs.Is(err, queries.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errs.Is(err, commands.ErrNotificationNotFound):
		return http.StatusNotFound, "Notification not found"
	case errs.Is(err, commands.ErrInvalidLocation),
		errs.Is(err, commands.ErrInvalidSchedule),
		errs.Is(err, commands.ErrInvalidDuration),
		errs.Is(err, commands.ErrInvalidContact),
		errs.Is(err, queries.ErrInvalidSort),
		errs.Is(err, queries.ErrInvalidDate),
		errs.Is(err, queries.ErrInvalidTab),
		errs.Is(err, queries.ErrInvalidFilter):
		return http.StatusBadRequest, err.Error()
	case errs.Is(err, commands.ErrCodeNotFound), errs.Is(err, commands.ErrCodeMismatch):
		return http.StatusBadRequest, err.Error()
	case errs.Is(err, commands.ErrPhoneNotVerified):
		return http.StatusForbidden, "Phone number has not been verified"
	case errs.Is(err, commands.ErrPhoneAlreadyRegistered):
		return http.StatusConflict, "Phone number is already registered"
	case errs.Is(err, commands.ErrDraftIncomplete):
		return http.StatusUnprocessableEntity, "Booking is incomplete"
	case errs.Is(err, commands.ErrCodeDelivery):
		return http.StatusBadGateway, "Failed to send verification code"
	case errs.Is(err, commands.ErrDraftStore):
		return http.StatusServiceUnavailable, "Booking storage is unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func abortWithUseCaseError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	var detail any
	var ve *contact.ValidationError
	if errs.As(err, &ve) {
		detail = ve.Errors.Messages()
	}
	httperr.AbortWithError(c, status, err, msg, detail)
}
