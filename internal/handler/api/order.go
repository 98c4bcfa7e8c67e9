package api

import (
	"net/http"

	"homeservice-booking/internal/handler/httperr"
	"homeservice-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary List orders
// @Tags orders
// @Produce json
// @Param tab query string false "current or previous" default(current)
// @Success 200 {array} queries.OrderView
// @Failure 400 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	views, err := h.q.List(c.Request.Context(), sid, c.Query("tab"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Order counts
// @Tags orders
// @Produce json
// @Success 200 {object} queries.OrderSummaryView
// @Router /orders/summary [get]
func (h *OrderHandler) Summary(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	summary, err := h.q.Summary(c.Request.Context(), sid)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), sid, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
