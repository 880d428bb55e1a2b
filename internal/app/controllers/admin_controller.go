package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
)

const defaultAuditLogLimit = 50

// AdminController handles the admin console: dashboard stats, the moderation
// queues, role management and the audit log. Routes using it sit behind the
// admin role middleware.
type AdminController struct {
	authService       services.AuthService
	moderationService services.ModerationService
	statsService      services.StatsService
	auditService      services.AuditService
}

// NewAdminController creates a new AdminController
func NewAdminController(
	authService services.AuthService,
	moderationService services.ModerationService,
	statsService services.StatsService,
	auditService services.AuditService,
) *AdminController {
	return &AdminController{
		authService:       authService,
		moderationService: moderationService,
		statsService:      statsService,
		auditService:      auditService,
	}
}

// GetStats handles the dashboard summary
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.PlatformStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(stats, ""))
}

// GetPendingConfessions handles the confession moderation queue
func (c *AdminController) GetPendingConfessions(ctx *gin.Context) {
	pending, err := c.moderationService.PendingConfessions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(pending, ""))
}

// ApproveConfession handles publishing a pending confession
func (c *AdminController) ApproveConfession(ctx *gin.Context) {
	confession, err := c.moderationService.Approve(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(confession, "Confession approved"))
}

// RejectConfession handles rejecting a pending confession
func (c *AdminController) RejectConfession(ctx *gin.Context) {
	confession, err := c.moderationService.Reject(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(confession, "Confession rejected"))
}

// GetPendingReports handles the report review queue
func (c *AdminController) GetPendingReports(ctx *gin.Context) {
	pending, err := c.moderationService.PendingReports(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(pending, ""))
}

// DismissReport handles closing a report with no further action
func (c *AdminController) DismissReport(ctx *gin.Context) {
	report, err := c.moderationService.DismissReport(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(report, "Report dismissed"))
}

// ResolveReport handles upholding a report, which removes the reported
// confession
func (c *AdminController) ResolveReport(ctx *gin.Context) {
	report, err := c.moderationService.ResolveReport(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(report, "Reported content removed"))
}

// PromoteUser handles granting a user the admin role
func (c *AdminController) PromoteUser(ctx *gin.Context) {
	user, err := c.authService.Promote(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.NewUserResponse(user), "User promoted to admin"))
}

// DemoteUser handles returning a user to the student role
func (c *AdminController) DemoteUser(ctx *gin.Context) {
	user, err := c.authService.Demote(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(dto.NewUserResponse(user), "Admin role removed"))
}

// GetAuditLog handles retrieving the most recent audit entries
func (c *AdminController) GetAuditLog(ctx *gin.Context) {
	limit := defaultAuditLogLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := c.auditService.Recent(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(entries, ""))
}
