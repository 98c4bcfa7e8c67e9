package api

import (
	"log/slog"
	"net/http"

	"homeservice-booking/internal/domain/geo"
	reqdto "homeservice-booking/internal/handler/dto/request"
	resdto "homeservice-booking/internal/handler/dto/response"
	"homeservice-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type GeolocationHandler struct{}

func NewGeolocationHandler() *GeolocationHandler {
	return &GeolocationHandler{}
}

// @Summary Describe a geolocation failure
// @Description Maps a browser geolocation failure, or a position outside the service area, to the message and status the location step shows.
// @Tags geolocation
// @Accept json
// @Produce json
// @Param request body reqdto.GeolocationReportRequest true "Failure"
// @Success 200 {object} resdto.GeolocationFailureResponse
// @Failure 400 {object} map[string]string
// @Router /geolocation/report [post]
func (h *GeolocationHandler) Report(c *gin.Context) {
	var req reqdto.GeolocationReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cause := geo.ParseCause(req.Cause)
	if req.Lat != nil && req.Lng != nil && geo.CheckServiceArea(*req.Lat, *req.Lng) != nil {
		cause = geo.CauseOutsideServiceArea
	}
	failure := geo.Describe(cause)
	slog.Info("Geolocation failure reported", "cause", failure.Cause)
	c.JSON(http.StatusOK, resdto.GeolocationFailureResponse{
		Cause:   string(failure.Cause),
		Message: failure.Message,
		Status:  string(failure.Status),
	})
}
