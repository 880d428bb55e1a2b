package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/controllers"
	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	clubController *controllers.ClubController,
	eventController *controllers.EventController,
	marketplaceController *controllers.MarketplaceController,
	confessionController *controllers.ConfessionController,
	chatController *controllers.ChatController,
	announcementController *controllers.AnnouncementController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/me", authController.Me)

		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetUsers)
			users.GET("/:id", userController.GetUserByID)
		}

		clubs := authenticated.Group("/clubs")
		{
			clubs.GET("", clubController.GetClubs)
			clubs.POST("", clubController.CreateClub)
			clubs.GET("/tags", clubController.GetClubTags)
			clubs.GET("/:id", clubController.GetClubByID)
			clubs.POST("/:id/join", clubController.JoinClub)
			clubs.POST("/:id/leave", clubController.LeaveClub)
		}

		events := authenticated.Group("/events")
		{
			events.GET("/upcoming", eventController.GetUpcomingEvents)
			events.GET("/past", eventController.GetPastEvents)
			events.GET("/mine", eventController.GetMyEvents)
			events.POST("", eventController.CreateEvent)
			events.GET("/:id", eventController.GetEventByID)
			events.POST("/:id/rsvp", eventController.RSVP)
			events.DELETE("/:id/rsvp", eventController.CancelRSVP)
		}

		marketplace := authenticated.Group("/marketplace")
		{
			marketplace.GET("", marketplaceController.GetListings)
			marketplace.POST("", marketplaceController.CreateListing)
			marketplace.GET("/mine", marketplaceController.GetMyListings)
			marketplace.GET("/:id", marketplaceController.GetListingByID)
			marketplace.POST("/:id/sold", marketplaceController.MarkSold)
			marketplace.DELETE("/:id", marketplaceController.DeleteListing)
		}

		confessions := authenticated.Group("/confessions")
		{
			confessions.GET("", confessionController.GetFeed)
			confessions.POST("", confessionController.SubmitConfession)
			confessions.POST("/:id/vote", confessionController.Vote)
			confessions.POST("/:id/report", confessionController.Report)
			confessions.POST("/:id/comments", confessionController.AddComment)
		}

		chats := authenticated.Group("/chats")
		{
			chats.GET("", chatController.GetChats)
			chats.POST("", chatController.OpenChat)
			chats.GET("/:id", chatController.GetChatByID)
			chats.POST("/:id/messages", chatController.SendMessage)
			chats.POST("/:id/read", chatController.MarkRead)
			chats.GET("/:id/subscribe", chatController.Subscribe)
		}

		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.GetAnnouncements)
			announcements.POST("", announcementController.CreateAnnouncement)
		}

		// --- Admin console ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/stats", adminController.GetStats)
			admin.GET("/confessions/pending", adminController.GetPendingConfessions)
			admin.POST("/confessions/:id/approve", adminController.ApproveConfession)
			admin.POST("/confessions/:id/reject", adminController.RejectConfession)
			admin.GET("/reports/pending", adminController.GetPendingReports)
			admin.POST("/reports/:id/dismiss", adminController.DismissReport)
			admin.POST("/reports/:id/resolve", adminController.ResolveReport)
			admin.POST("/users/:id/promote", adminController.PromoteUser)
			admin.POST("/users/:id/demote", adminController.DemoteUser)
			admin.GET("/audit-log", adminController.GetAuditLog)
		}
	}
}
