package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/services"
	"github.com/mentorlink/mentorship-service/internal/utils"
)

// AdminHandler serves the oversight endpoints. Every route behind it is
// gated to the ADMIN role in the router.
type AdminHandler struct {
	BaseHandler
	accountService services.AccountService
	adminService   services.AdminService
}

func NewAdminHandler(accountService services.AccountService, adminService services.AdminService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    NewBaseHandler(logger),
		accountService: accountService,
		adminService:   adminService,
	}
}

// ===== USER MANAGEMENT =====

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.accountService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	user, err := h.accountService.UpdateRole(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.accountService.DeleteUser(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "User deleted"})
}

// ===== MATCH OVERSIGHT =====

func (h *AdminHandler) ListMatches(c *gin.Context) {
	matches, err := h.adminService.ListMatches(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// ExportMatches streams the accepted matches as an XLSX download.
func (h *AdminHandler) ExportMatches(c *gin.Context) {
	f, err := h.adminService.ExportMatches(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("matches-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		utils.FromContext(c, h.Logger).Error("failed to stream export", "error", err)
	}
}

func (h *AdminHandler) SessionStats(c *gin.Context) {
	stats, err := h.adminService.SessionStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) AssignMatch(c *gin.Context) {
	var req models.AssignMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := h.adminService.AssignMentor(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}
