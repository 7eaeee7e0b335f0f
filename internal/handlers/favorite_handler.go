package handlers

import (
	"net/http"

	"chefbazaar_backend/internal/middleware"
	"chefbazaar_backend/internal/services"
	"chefbazaar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(r *gin.RouterGroup) {
	favorites := r.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware())
	{
		favorites.GET("", h.List)
		favorites.POST("", h.Add)
		favorites.DELETE("/:id", h.Remove)
	}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	favorites, err := h.favoriteService.List(h.GetDB(c), claims)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	var req dto.AddFavoriteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	favorite, err := h.favoriteService.Add(h.GetDB(c), claims, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	claims, ok := h.GetAuthClaims(c)
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(h.GetDB(c), claims, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}
