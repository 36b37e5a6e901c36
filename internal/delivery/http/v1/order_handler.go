package v1

import (
	"net/http"

	"soa-bango-backend/internal/delivery/http/response"
	"soa-bango-backend/internal/domain"
	"soa-bango-backend/internal/usecase"
	"soa-bango-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUC domain.OrderUsecase
}

// NewOrderHandler registers the order route (public, no auth required)
func NewOrderHandler(api *gin.RouterGroup, orderUC domain.OrderUsecase) {
	handler := &OrderHandler{
		orderUC: orderUC,
	}

	api.POST("/order", handler.SubmitOrder)
}

// SubmitOrder handles POST /api/order: validate, compute the total and
// dispatch the single owner notice.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	if err := h.orderUC.SubmitOrder(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, usecase.MsgOrderSuccess)
}
