package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/services"
	"github.com/mentorlink/mentorship-service/internal/utils"
)

// AvailabilityHandler manages mentor time slots.
type AvailabilityHandler struct {
	BaseHandler
	availabilityService services.AvailabilityService
}

func NewAvailabilityHandler(availabilityService services.AvailabilityService, logger utils.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		BaseHandler:         NewBaseHandler(logger),
		availabilityService: availabilityService,
	}
}

// SetAvailability records a new slot for the calling mentor.
func (h *AvailabilityHandler) SetAvailability(c *gin.Context) {
	mentorID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	slot, err := h.availabilityService.SetAvailability(c.Request.Context(), mentorID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// ListAvailability returns the calling mentor's slots.
func (h *AvailabilityHandler) ListAvailability(c *gin.Context) {
	mentorID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not authenticated"})
		return
	}

	slots, err := h.availabilityService.ListForMentor(c.Request.Context(), mentorID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}
