package api

import (
	"net/http"

	"homeservice-booking/internal/handler/httperr"
	"homeservice-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	q queries.ProviderQueries
}

func NewProviderHandler(q queries.ProviderQueries) *ProviderHandler {
	return &ProviderHandler{q: q}
}

// @Summary List providers
// @Tags providers
// @Produce json
// @Param sort query string false "rating, price or experience" default(rating)
// @Param specialty query string false "Only providers with this specialty"
// @Success 200 {array} queries.ProviderView
// @Failure 400 {object} map[string]string
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), c.DefaultQuery("sort", "rating"), c.Query("specialty"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get provider
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} queries.ProviderView
// @Failure 404 {object} map[string]string
// @Router /providers/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List time slots
// @Description Every half-hour slot of the day with its availability for this provider.
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {array} queries.SlotView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /providers/{id}/slots [get]
func (h *ProviderHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "date is required", nil)
		return
	}
	slots, err := h.q.Slots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary List extra tasks
// @Tags providers
// @Produce json
// @Success 200 {array} queries.ExtraTaskView
// @Router /extra-tasks [get]
func (h *ProviderHandler) ExtraTasks(c *gin.Context) {
	tasks, err := h.q.ExtraTasks(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
