package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentorship-service/internal/services"
	"github.com/mentorlink/mentorship-service/internal/utils"
	"github.com/mentorlink/mentorship-service/internal/validator"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse wraps simple confirmation payloads.
type SuccessResponse struct {
	Message string `json:"message"`
}

// BaseHandler holds the pieces every handler shares.
type BaseHandler struct {
	Logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{Logger: logger}
}

// LogRequest logs via the request-scoped logger when present.
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.Logger).Info(msg, args...)
}

// handleServiceError translates service errors into HTTP responses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: verrs.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrMentorNotFound),
		errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrFeedbackNotAllowed):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	default:
		utils.FromContext(c, h.Logger).Error("internal error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}

// parseIDParam parses a numeric path parameter. On failure it writes a 400
// response and returns 0; session ids start at 1 so 0 is never valid.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + name + " parameter",
		})
		return 0
	}
	return uint(id)
}
