package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/services"
	"github.com/mentorlink/mentorship-service/internal/utils"
)

// MentorHandler serves the mentor directory.
type MentorHandler struct {
	BaseHandler
	mentorService services.MentorService
}

func NewMentorHandler(mentorService services.MentorService, logger utils.Logger) *MentorHandler {
	return &MentorHandler{
		BaseHandler:   NewBaseHandler(logger),
		mentorService: mentorService,
	}
}

func (h *MentorHandler) ListMentors(c *gin.Context) {
	mentors, err := h.mentorService.ListMentors(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentors)
}

// FilterMentors narrows the directory by skill and industry query params.
func (h *MentorHandler) FilterMentors(c *gin.Context) {
	filter := models.MentorFilter{
		Skill:    c.Query("skill"),
		Industry: c.Query("industry"),
	}

	mentors, err := h.mentorService.FilterMentors(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentors)
}

func (h *MentorHandler) GetMentor(c *gin.Context) {
	id := c.Param("id")

	mentor, err := h.mentorService.GetMentorByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentor)
}
