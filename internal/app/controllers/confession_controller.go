package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
	"github.com/emrek/campushub/internal/pkg/apperrors"
)

// ConfessionController handles the anonymous confession feed
type ConfessionController struct {
	moderationService services.ModerationService
}

// NewConfessionController creates a new ConfessionController
func NewConfessionController(moderationService services.ModerationService) *ConfessionController {
	return &ConfessionController{
		moderationService: moderationService,
	}
}

// SubmitConfession handles an anonymous submission. The author is never
// recorded.
func (c *ConfessionController) SubmitConfession(ctx *gin.Context) {
	var req dto.CreateConfessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	confession, err := c.moderationService.Submit(ctx.Request.Context(), req.Content, req.Category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(confession, "Confession submitted for review"))
}

// GetFeed handles retrieving the approved feed with optional category filter
func (c *ConfessionController) GetFeed(ctx *gin.Context) {
	feed, err := c.moderationService.Feed(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(feed, ""))
}

// Vote handles an up or down vote on a confession
func (c *ConfessionController) Vote(ctx *gin.Context) {
	var req dto.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	var direction services.VoteDirection
	switch services.VoteDirection(req.Direction) {
	case services.VoteUp:
		direction = services.VoteUp
	case services.VoteDown:
		direction = services.VoteDown
	default:
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrInvalidValue, "vote direction must be upvote or downvote"))
		return
	}

	confession, err := c.moderationService.Vote(ctx.Request.Context(), ctx.Param("id"), direction)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(confession, ""))
}

// Report handles filing a report against a confession
func (c *ConfessionController) Report(ctx *gin.Context) {
	var req dto.ReportConfessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	report, err := c.moderationService.Report(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx), req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(report, "Report submitted"))
}

// AddComment handles an anonymous comment on a confession
func (c *ConfessionController) AddComment(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	comment, err := c.moderationService.AddComment(ctx.Request.Context(), ctx.Param("id"), req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(comment, "Comment added"))
}
