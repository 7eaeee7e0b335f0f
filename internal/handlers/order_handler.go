package handlers

import (
	"net/http"

	"chefbazaar_backend/internal/middleware"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", h.MyOrders)
	}

	place := r.Group("/orders")
	place.Use(middleware.AuthMiddleware(), middleware.ForbidFraud())
	{
		place.POST("", h.Create)
	}

	chef := r.Group("/orders")
	chef.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleChef))
	{
		chef.GET("/chef", h.ChefOrders)
		chef.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.Create(h.GetDB(c), claims, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	orders, err := h.orderService.MyOrders(h.GetDB(c), claims)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ChefOrders(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ChefOrders(h.GetDB(c), claims)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(h.GetDB(c), claims, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
