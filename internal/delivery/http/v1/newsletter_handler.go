package v1

import (
	"net/http"

	"soa-bango-backend/internal/delivery/http/response"
	"soa-bango-backend/internal/domain"
	"soa-bango-backend/internal/usecase"
	"soa-bango-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUC domain.NewsletterUsecase
}

// NewNewsletterHandler registers the newsletter route (public, no auth required)
func NewNewsletterHandler(api *gin.RouterGroup, newsletterUC domain.NewsletterUsecase) {
	handler := &NewsletterHandler{
		newsletterUC: newsletterUC,
	}

	api.POST("/newsletter", handler.Subscribe)
}

// Subscribe handles POST /api/newsletter.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req domain.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := "Email requis"
		if m := bindErrorMessage(err); m == "Adresse email invalide" {
			msg = m
		}
		c.Error(apperror.BadRequest(msg))
		return
	}

	if err := h.newsletterUC.Subscribe(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, usecase.MsgSignupSuccess)
}
