package api

import (
	"net/http"

	"homeservice-booking/internal/domain/contact"
	reqdto "homeservice-booking/internal/handler/dto/request"
	resdto "homeservice-booking/internal/handler/dto/response"
	"homeservice-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ContactHandler exposes the contact validators so clients can show the same
// messages the wizard uses.
type ContactHandler struct{}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// @Summary Validate contact fields
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateContactRequest true "Contact"
// @Success 200 {object} resdto.ValidateContactResponse
// @Router /contact/validate [post]
func (h *ContactHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	fieldErrs := contact.ValidateContact(req.Name, req.Email, req.Phone)
	res := resdto.ValidateContactResponse{Valid: fieldErrs.OK()}
	if !res.Valid {
		res.Errors = fieldErrs.Messages()
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Format phone number
// @Description Normalizes raw input into the "+212 X XX XX XX XX" display form.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.FormatPhoneRequest true "Phone"
// @Success 200 {object} resdto.FormatPhoneResponse
// @Router /contact/format-phone [post]
func (h *ContactHandler) FormatPhone(c *gin.Context) {
	var req reqdto.FormatPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	formatted := contact.FormatPhone(req.Phone)
	c.JSON(http.StatusOK, resdto.FormatPhoneResponse{
		Phone: formatted,
		Valid: contact.ValidatePhone(formatted).OK(),
	})
}
