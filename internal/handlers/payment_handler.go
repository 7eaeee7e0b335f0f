package handlers

import (
	"net/http"

	"chefbazaar_backend/internal/middleware"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	{
		// Gateway callback, unauthenticated by design of the provider.
		payments.POST("/success", h.Success)
	}

	protected := r.Group("/payments")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/checkout", h.Checkout)
	}
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.paymentService.Checkout(&req))
}

func (h *PaymentHandler) Success(c *gin.Context) {
	var req dto.PaymentSuccessRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.paymentService.RecordSuccess(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}
