package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
)

// ClubController handles club related operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{
		clubService: clubService,
	}
}

// CreateClub handles new club creation
func (c *ClubController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	club, err := c.clubService.CreateClub(ctx.Request.Context(), &req, currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(club, "Club created successfully"))
}

// GetClubs handles retrieving clubs with optional search and tag filtering
func (c *ClubController) GetClubs(ctx *gin.Context) {
	clubs, err := c.clubService.ListClubs(ctx.Request.Context(), ctx.Query("search"), ctx.Query("tag"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(clubs, ""))
}

// GetClubByID handles retrieving a specific club
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	club, err := c.clubService.GetClub(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(club, ""))
}

// GetClubTags handles retrieving the set of tags in use
func (c *ClubController) GetClubTags(ctx *gin.Context) {
	tags, err := c.clubService.AllTags(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(tags, ""))
}

// JoinClub handles club membership join
func (c *ClubController) JoinClub(ctx *gin.Context) {
	club, err := c.clubService.JoinClub(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(club, "Joined club"))
}

// LeaveClub handles club membership leave
func (c *ClubController) LeaveClub(ctx *gin.Context) {
	club, err := c.clubService.LeaveClub(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(club, "Left club"))
}
