package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
)

// MarketplaceController handles listing related operations
type MarketplaceController struct {
	marketplaceService services.MarketplaceService
	authService        services.AuthService
}

// NewMarketplaceController creates a new MarketplaceController
func NewMarketplaceController(marketplaceService services.MarketplaceService, authService services.AuthService) *MarketplaceController {
	return &MarketplaceController{
		marketplaceService: marketplaceService,
		authService:        authService,
	}
}

// CreateListing handles new listing creation
func (c *MarketplaceController) CreateListing(ctx *gin.Context) {
	var req dto.CreateListingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	seller, err := c.authService.GetUser(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	listing, err := c.marketplaceService.CreateListing(ctx.Request.Context(), &req, seller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(listing, "Listing created successfully"))
}

// GetListings handles retrieving available listings with search and category
// filters
func (c *MarketplaceController) GetListings(ctx *gin.Context) {
	listings, err := c.marketplaceService.ListListings(ctx.Request.Context(), ctx.Query("search"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(listings, ""))
}

// GetMyListings handles retrieving the seller's own listings, sold included
func (c *MarketplaceController) GetMyListings(ctx *gin.Context) {
	listings, err := c.marketplaceService.ListingsForSeller(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(listings, ""))
}

// GetListingByID handles retrieving a specific listing. Each read counts as a
// view.
func (c *MarketplaceController) GetListingByID(ctx *gin.Context) {
	listing, err := c.marketplaceService.GetListing(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(listing, ""))
}

// MarkSold handles flipping a listing to sold
func (c *MarketplaceController) MarkSold(ctx *gin.Context) {
	listing, err := c.marketplaceService.MarkSold(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(listing, "Listing marked as sold"))
}

// DeleteListing handles listing removal
func (c *MarketplaceController) DeleteListing(ctx *gin.Context) {
	if err := c.marketplaceService.DeleteListing(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(nil, "Listing deleted"))
}
