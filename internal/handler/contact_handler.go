package handler

import (
	"errors"
	"net/http"
	"strconv"

	"marketing_cms/internal/model"
	"marketing_cms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ContactHandler handles contact form submissions and their admin lifecycle
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

// Submit accepts a public contact form submission. Only a minimal
// projection of the stored record is echoed back.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and message are required"})
		return
	}

	contact, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
			return
		}
		log.Error().Err(err).Msg("Failed to submit contact form")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit contact form"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact form submitted successfully",
		"contact": model.ContactSummary{ID: contact.ID, Name: contact.Name, Email: contact.Email},
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact ID"})
		return
	}

	contact, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to fetch contact")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact ID"})
		return
	}

	var req model.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	contact, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		case errors.Is(err, service.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
		default:
			log.Error().Err(err).Msg("Failed to update contact status")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update contact"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact status updated", "contact": contact})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to delete contact")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

// RegisterContactRoutes registers the public submission route and admin routes
func (h *ContactHandler) RegisterContactRoutes(public, admin *gin.RouterGroup) {
	public.POST("/contact", h.Submit)

	admin.GET("/contacts", h.List)
	admin.GET("/contacts/:id", h.Get)
	admin.PUT("/contacts/:id/status", h.UpdateStatus)
	admin.DELETE("/contacts/:id", h.Delete)
}
