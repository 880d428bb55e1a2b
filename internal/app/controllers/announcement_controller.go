package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
	"github.com/emrek/campushub/internal/pkg/apperrors"
)

// AnnouncementController handles announcements
type AnnouncementController struct {
	announcementService services.AnnouncementService
	authService         services.AuthService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService, authService services.AuthService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		authService:         authService,
	}
}

// CreateAnnouncement handles publishing an announcement. College-wide
// announcements require the admin role; club and event announcements are open
// to any authenticated user.
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	author, err := c.authService.GetUser(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	collegeWide := req.Type == "" || req.Type == string(models.AnnouncementCollege)
	if collegeWide && author.Role != models.RoleAdmin {
		middleware.HandleAPIError(ctx, apperrors.NewUnauthorizedError("only admins can publish college-wide announcements"))
		return
	}

	announcement, err := c.announcementService.Create(ctx.Request.Context(), &req, author)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(announcement, "Announcement published"))
}

// GetAnnouncements handles retrieving announcements newest first with an
// optional type filter
func (c *AnnouncementController) GetAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.List(ctx.Request.Context(), ctx.Query("type"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(announcements, ""))
}
