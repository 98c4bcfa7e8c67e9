package api

import (
	"net/http"

	"homeservice-booking/internal/domain/booking"
	reqdto "homeservice-booking/internal/handler/dto/request"
	resdto "homeservice-booking/internal/handler/dto/response"
	"homeservice-booking/internal/handler/httperr"
	"homeservice-booking/internal/handler/middleware"
	"homeservice-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.WizardCommands
}

func NewBookingHandler(cmds commands.WizardCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Session required", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) respond(c *gin.Context, result *commands.WizardResult, err error) {
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	middleware.AnnotateWizard(c, result.Draft)
	c.JSON(http.StatusOK, resdto.FromWizardResult(result))
}

// @Summary Get booking draft
// @Description Load the session's draft. The optional step query positions the wizard.
// @Tags booking
// @Produce json
// @Param step query string false "Step index or name"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Router /booking [get]
func (h *BookingHandler) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var step *booking.Step
	if raw := c.Query("step"); raw != "" {
		parsed, err := booking.ParseStep(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid step", nil)
			return
		}
		step = &parsed
	}
	result, err := h.cmds.Load(c.Request.Context(), sid, step)
	h.respond(c, result, err)
}

// @Summary Select services
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SetServicesRequest true "Selected services"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Router /booking/services [put]
func (h *BookingHandler) SetServices(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SetServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SetServices(c.Request.Context(), sid, req.ToInput())
	h.respond(c, result, err)
}

// @Summary Set service location
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.LocationRequest true "Location"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Router /booking/location [put]
func (h *BookingHandler) SetLocation(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SetLocation(c.Request.Context(), sid, req.ToDomain())
	h.respond(c, result, err)
}

// @Summary Select provider
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SelectProviderRequest true "Provider"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking/provider [put]
func (h *BookingHandler) SelectProvider(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SelectProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SelectProvider(c.Request.Context(), sid, req.ProviderID)
	h.respond(c, result, err)
}

// @Summary Set appointment date and time
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ScheduleRequest true "Schedule"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking/schedule [put]
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SetSchedule(c.Request.Context(), sid, req.ToDomain())
	h.respond(c, result, err)
}

// @Summary Set duration in hours
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.DurationRequest true "Duration"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Router /booking/duration [put]
func (h *BookingHandler) SetDuration(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SetDuration(c.Request.Context(), sid, req.Hours)
	h.respond(c, result, err)
}

// @Summary Set task details
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.DetailsRequest true "Details"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking/details [put]
func (h *BookingHandler) SetDetails(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SetDetails(c.Request.Context(), sid, req.ToInput())
	h.respond(c, result, err)
}

// @Summary Set contact information
// @Description Field errors are reported in field_errors with status 200; the draft keeps the submitted values.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact"
// @Success 200 {object} resdto.WizardResponse
// @Failure 403 {object} map[string]string
// @Router /booking/contact [put]
func (h *BookingHandler) SetContact(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SetContact(c.Request.Context(), sid, req.ToDomain())
	h.respond(c, result, err)
}

// @Summary Advance to the next step
// @Description advanced is false when the current step is incomplete or already last.
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Router /booking/next [post]
func (h *BookingHandler) Next(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Next(c.Request.Context(), sid)
	h.respond(c, result, err)
}

// @Summary Go back one step
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Router /booking/previous [post]
func (h *BookingHandler) Previous(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Previous(c.Request.Context(), sid)
	h.respond(c, result, err)
}

// @Summary Jump to a step
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.GoToRequest true "Target step"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} map[string]string
// @Router /booking/goto [post]
func (h *BookingHandler) GoTo(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.GoToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	step, err := booking.ParseStep(req.Step)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid step", nil)
		return
	}
	result, err := h.cmds.GoTo(c.Request.Context(), sid, step)
	h.respond(c, result, err)
}

// @Summary Discard the draft
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.WizardResponse
// @Router /booking [delete]
func (h *BookingHandler) Reset(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Reset(c.Request.Context(), sid)
	h.respond(c, result, err)
}

// @Summary Submit the booking
// @Description Creates the order and clears the draft.
// @Tags booking
// @Produce json
// @Success 201 {object} resdto.SubmitResponse
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /booking/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), sid)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	middleware.AnnotateOrder(c, result.OrderID, result.Reference)
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}
