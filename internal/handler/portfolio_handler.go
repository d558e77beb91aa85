package handler

import (
	"errors"
	"net/http"

	"marketing_cms/internal/model"
	"marketing_cms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PortfolioHandler handles portfolio content requests
type PortfolioHandler struct {
	content service.ContentService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(content service.ContentService) *PortfolioHandler {
	return &PortfolioHandler{content: content}
}

func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.content.ListPortfolio(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch portfolio")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch portfolio"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"portfolio": items})
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.content.GetPortfolio(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to fetch portfolio item")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch portfolio item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"portfolio": item})
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req model.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	item, err := h.content.CreatePortfolio(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateID) {
			c.JSON(http.StatusConflict, gin.H{"message": "Portfolio item with this ID already exists"})
			return
		}
		log.Error().Err(err).Msg("Failed to create portfolio item")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create portfolio item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Portfolio item created successfully", "portfolio": item})
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	var req model.UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	item, err := h.content.UpdatePortfolio(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPortfolioNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
		case errors.Is(err, service.ErrRequiredField):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Required fields must not be empty"})
		default:
			log.Error().Err(err).Msg("Failed to update portfolio item")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update portfolio item"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item updated successfully", "portfolio": item})
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.content.DeletePortfolio(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to delete portfolio item")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete portfolio item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}

// RegisterPortfolioRoutes registers public read routes and admin CRUD routes
func (h *PortfolioHandler) RegisterPortfolioRoutes(public, admin *gin.RouterGroup) {
	public.GET("/portfolio", h.List)
	public.GET("/portfolio/:id", h.Get)

	admin.GET("/portfolio", h.List)
	admin.GET("/portfolio/:id", h.Get)
	admin.POST("/portfolio", h.Create)
	admin.PUT("/portfolio/:id", h.Update)
	admin.DELETE("/portfolio/:id", h.Delete)
}
