package handler

import (
	"errors"
	"net/http"

	"marketing_cms/internal/model"
	"marketing_cms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ServiceHandler handles service content requests
type ServiceHandler struct {
	content service.ContentService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(content service.ContentService) *ServiceHandler {
	return &ServiceHandler{content: content}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.content.ListServices(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch services")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.content.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to fetch service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.content.CreateService(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateID) {
			c.JSON(http.StatusConflict, gin.H{"message": "Service with this ID already exists"})
			return
		}
		log.Error().Err(err).Msg("Failed to create service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Service created successfully", "service": svc})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req model.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.content.UpdateService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		case errors.Is(err, service.ErrRequiredField):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Required fields must not be empty"})
		default:
			log.Error().Err(err).Msg("Failed to update service")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update service"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully", "service": svc})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.content.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to delete service")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// RegisterServiceRoutes registers public read routes and admin CRUD routes
func (h *ServiceHandler) RegisterServiceRoutes(public, admin *gin.RouterGroup) {
	public.GET("/services", h.List)
	public.GET("/services/:id", h.Get)

	admin.GET("/services", h.List)
	admin.GET("/services/:id", h.Get)
	admin.POST("/services", h.Create)
	admin.PUT("/services/:id", h.Update)
	admin.DELETE("/services/:id", h.Delete)
}
