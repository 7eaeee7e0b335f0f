package handlers

import (
	"net/http"
	"strings"

	"chefbazaar_backend/internal/middleware"
	"chefbazaar_backend/internal/models"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	*BaseHandler
	mealService services.MealService
}

func NewMealHandler(base *BaseHandler, mealService services.MealService) *MealHandler {
	return &MealHandler{
		BaseHandler: base,
		mealService: mealService,
	}
}

func (h *MealHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/meals")
	{
		public.GET("", h.List)
	}

	chef := r.Group("/meals")
	chef.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleChef))
	{
		// /mine is registered before /:id so gin matches it first.
		chef.GET("/mine", h.Mine)
		chef.PUT("/:id", h.Update)
		chef.DELETE("/:id", h.Delete)
	}

	chefCreate := r.Group("/meals")
	chefCreate.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleChef), middleware.ForbidFraud())
	{
		chefCreate.POST("", h.Create)
	}

	protected := r.Group("/meals")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/:id", h.ByID)
	}
}

func (h *MealHandler) List(c *gin.Context) {
	page, limit := ParsePagination(c)
	sortDesc := strings.EqualFold(c.Query("sort"), "desc")

	resp, err := h.mealService.List(h.GetDB(c), page, limit, sortDesc)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MealHandler) Mine(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	meals, err := h.mealService.Mine(h.GetDB(c), claims)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) ByID(c *gin.Context) {
	meal, err := h.mealService.ByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) Create(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	var req dto.CreateMealRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	meal, err := h.mealService.Create(h.GetDB(c), claims, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) Update(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateMealRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	meal, err := h.mealService.Update(h.GetDB(c), claims, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) Delete(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	if err := h.mealService.Delete(h.GetDB(c), claims, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}
