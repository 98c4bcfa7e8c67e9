package api

import (
	"log/slog"
	"net/http"

	reqdto "homeservice-booking/internal/handler/dto/request"
	resdto "homeservice-booking/internal/handler/dto/response"
	"homeservice-booking/internal/handler/httperr"
	"homeservice-booking/internal/handler/middleware"
	"homeservice-booking/internal/usecase"
	"homeservice-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	cmds     commands.VerificationCommands
	sessions *middleware.SessionMiddleware
}

func NewAuthHandler(cmds commands.VerificationCommands, sessions *middleware.SessionMiddleware) *AuthHandler {
	return &AuthHandler{cmds: cmds, sessions: sessions}
}

// @Summary Send verification code
// @Description Sends a one-time code to a Moroccan mobile number.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SendCodeRequest true "Phone"
// @Success 200 {object} resdto.SendCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /auth/code [post]
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req reqdto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SendCode(c.Request.Context(), req.Phone)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SendCodeResponse{Phone: result.Phone, ExpiresIn: result.ExpiresIn})
}

// @Summary Verify code
// @Description Marks the phone verified for this session. A known customer is attached to the session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyCodeRequest true "Phone and code"
// @Success 200 {object} resdto.VerifyCodeResponse
// @Failure 400 {object} map[string]string
// @Router /auth/verify [post]
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.VerifyCode(c.Request.Context(), sid, req.Phone, req.Code)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if result.CustomerID != nil && !h.attachCustomer(c, sid, *result.CustomerID) {
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerifyCodeResult(result))
}

// @Summary Sign up
// @Description Registers a customer for a phone verified by this session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Customer"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Signup(c.Request.Context(), sid, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if !h.attachCustomer(c, sid, result.CustomerID) {
		return
	}
	c.JSON(http.StatusCreated, resdto.SignupResponse{CustomerID: result.CustomerID.String()})
}

func (h *AuthHandler) attachCustomer(c *gin.Context, sid, customerID uuid.UUID) bool {
	if err := h.sessions.IssueSession(c, usecase.Session{ID: sid, CustomerID: &customerID}); err != nil {
		slog.Error("Failed to reissue session", "session_id", sid, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return false
	}
	return true
}
