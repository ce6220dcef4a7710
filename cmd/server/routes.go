package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"scholars-connect.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	profileHandler      *handlers.ProfileHandler
	opportunityHandler  *handlers.OpportunityHandler
	mentorshipHandler   *handlers.MentorshipHandler
	messageHandler      *handlers.MessageHandler
	notificationHandler *handlers.NotificationHandler
	dashboardHandler    *handlers.DashboardHandler
	authMiddleware      gin.HandlerFunc
	loginRateLimiter    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.loginRateLimiter, d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.Get)
			profile.PUT("", d.profileHandler.Update)
		}

		// Mentor directory (protected)
		mentors := v1.Group("/mentors")
		mentors.Use(d.authMiddleware)
		{
			mentors.GET("", d.profileHandler.ListMentors)
			mentors.GET("/:id", d.profileHandler.GetMentor)
			mentors.GET("/:id/contact", d.profileHandler.GetMentorContact)
		}

		// Opportunity catalog (public read, protected write)
		opportunities := v1.Group("/opportunities")
		{
			opportunities.GET("", d.opportunityHandler.List)
			opportunities.GET("/mine", d.authMiddleware, d.opportunityHandler.ListMine)
			opportunities.GET("/:id", d.opportunityHandler.Get)
			opportunities.POST("", d.authMiddleware, d.opportunityHandler.Create)
			opportunities.PUT("/:id", d.authMiddleware, d.opportunityHandler.Update)
			opportunities.DELETE("/:id", d.authMiddleware, d.opportunityHandler.Delete)
		}

		// Mentorship lifecycle (protected)
		mentorship := v1.Group("/mentorship")
		mentorship.Use(d.authMiddleware)
		{
			mentorship.POST("/request/:mentorId", d.mentorshipHandler.CreateRequest)
			mentorship.GET("/requests", d.mentorshipHandler.ListIncoming)
			mentorship.GET("/my-requests", d.mentorshipHandler.ListOutgoing)
			mentorship.PUT("/request/:id/accept", d.mentorshipHandler.Accept)
			mentorship.PUT("/request/:id/reject", d.mentorshipHandler.Reject)
		}

		// Messaging (protected)
		messages := v1.Group("/messages")
		messages.Use(d.authMiddleware)
		{
			messages.POST("", d.messageHandler.Send)
			messages.GET("", d.messageHandler.ListConversations)
			messages.GET("/:userId", d.messageHandler.GetConversation)
			messages.PUT("/:id/read", d.messageHandler.MarkRead)
		}

		// Notifications (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware)
		{
			notifications.GET("", d.notificationHandler.List)
			notifications.PUT("/read-all", d.notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", d.notificationHandler.MarkRead)
		}

		// Dashboard (protected)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(d.authMiddleware)
		{
			dashboard.GET("/stats", d.dashboardHandler.Stats)
			dashboard.GET("/sessions", d.dashboardHandler.UpcomingSessions)
			dashboard.POST("/sessions", d.dashboardHandler.CreateSession)
			dashboard.GET("/goals", d.dashboardHandler.Goals)
			dashboard.POST("/goals", d.dashboardHandler.CreateGoal)
			dashboard.PUT("/goals/:id", d.dashboardHandler.UpdateGoal)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "scholars-connect-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
