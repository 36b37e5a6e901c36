package v1

import (
	"net/http"

	"soa-bango-backend/internal/delivery/http/response"
	"soa-bango-backend/internal/domain"
	"soa-bango-backend/internal/usecase"
	"soa-bango-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact handles POST /api/contact: validate, render the two contact
// emails and dispatch both. Success is only reported when both sends are
// accepted.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, usecase.MsgContactSuccess)
}
