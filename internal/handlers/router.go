package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/mentorship-service/internal/auth"
	"github.com/mentorlink/mentorship-service/internal/models"
	"github.com/mentorlink/mentorship-service/internal/services"
	"github.com/mentorlink/mentorship-service/internal/utils"
)

type HandlerManager struct {
	accountHandler      *AccountHandler
	mentorHandler       *MentorHandler
	sessionHandler      *SessionHandler
	availabilityHandler *AvailabilityHandler
	adminHandler        *AdminHandler
	authMiddleware      *JWTAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		accountHandler:      NewAccountHandler(serviceManager.Account(), logger),
		mentorHandler:       NewMentorHandler(serviceManager.Mentor(), logger),
		sessionHandler:      NewSessionHandler(serviceManager.Session(), logger),
		availabilityHandler: NewAvailabilityHandler(serviceManager.Availability(), logger),
		adminHandler:        NewAdminHandler(serviceManager.Account(), serviceManager.Admin(), logger),
		authMiddleware:      NewJWTAuthMiddleware(tokens),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	requireMentor := hm.authMiddleware.RequireRoleMiddleware(models.RoleMentor)
	requireMentee := hm.authMiddleware.RequireRoleMiddleware(models.RoleMentee)
	requireAdmin := hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin)

	authGroup := router.Group("/auth")
	{
		// Public endpoints
		authGroup.POST("/register", hm.accountHandler.Register)
		authGroup.POST("/login", hm.accountHandler.Login)
		authGroup.GET("/mentors", hm.mentorHandler.ListMentors)
		authGroup.GET("/mentors/filter", hm.mentorHandler.FilterMentors)
		authGroup.GET("/mentors/:id", hm.mentorHandler.GetMentor)

		// Authenticated endpoints
		protected := authGroup.Group("")
		protected.Use(hm.authMiddleware.AuthMiddleware())
		{
			// Profiles
			protected.GET("/users/me", hm.accountHandler.GetMe)
			protected.PUT("/users/me/profile", hm.accountHandler.UpdateMyProfile)
			protected.GET("/users/:id", hm.accountHandler.GetUser)

			// Session lifecycle
			protected.POST("/request", requireMentee, hm.sessionHandler.RequestSession)
			protected.GET("/requests/received", requireMentor, hm.sessionHandler.ListReceived)
			protected.PUT("/requests/:id", requireMentor, hm.sessionHandler.Respond)
			protected.GET("/requests/sent", requireMentee, hm.sessionHandler.ListSent)
			protected.PUT("/sessions/:id/feedback", requireMentee, hm.sessionHandler.SubmitFeedback)
			protected.POST("/sessions/:id/comment", requireMentor, hm.sessionHandler.AddComment)
			protected.GET("/sessions/mentor", requireMentor, hm.sessionHandler.ListAcceptedAsMentor)
			protected.GET("/sessions/mentee", requireMentee, hm.sessionHandler.ListAcceptedAsMentee)

			// Availability
			protected.POST("/mentor/availability", requireMentor, hm.availabilityHandler.SetAvailability)
			protected.GET("/mentor/availability", requireMentor, hm.availabilityHandler.ListAvailability)

			// Admin oversight
			admin := protected.Group("/admin")
			admin.Use(requireAdmin)
			{
				admin.GET("/users", hm.adminHandler.ListUsers)
				admin.PUT("/users/:id/role", hm.adminHandler.UpdateUserRole)
				admin.DELETE("/users/:id", hm.adminHandler.DeleteUser)
				admin.GET("/matches", hm.adminHandler.ListMatches)
				admin.GET("/matches/export", hm.adminHandler.ExportMatches)
				admin.GET("/session-stats", hm.adminHandler.SessionStats)
				admin.POST("/assign-match", hm.adminHandler.AssignMatch)
			}
		}
	}

	// Identity echo for token debugging
	router.GET("/protected", hm.authMiddleware.AuthMiddleware(), func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		role, _ := GetUserRoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{
			"userId": userID,
			"role":   role,
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "mentorship-service",
		})
	})
}
