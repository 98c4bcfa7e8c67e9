package api

import (
	"net/http"

	"homeservice-booking/internal/handler/httperr"
	"homeservice-booking/internal/usecase/commands"
	"homeservice-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param filter query string false "all, unread, order, system or promotion" default(all)
// @Success 200 {object} queries.NotificationListView
// @Failure 400 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	view, err := h.q.List(c.Request.Context(), sid, c.DefaultQuery("filter", "all"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Mark a notification read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), sid, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	updated, err := h.cmds.MarkAllRead(c.Request.Context(), sid)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
