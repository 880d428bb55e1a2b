package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emrek/campushub/internal/app/models"
	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/store"
	"github.com/emrek/campushub/internal/pkg/apperrors"
	"github.com/emrek/campushub/internal/pkg/helpers"
)

// MarketplaceService defines the interface for listing operations
type MarketplaceService interface {
	CreateListing(ctx context.Context, req *dto.CreateListingRequest, seller *models.User) (*models.Listing, error)
	GetListing(ctx context.Context, listingID string) (*models.Listing, error)
	ListListings(ctx context.Context, search, category string) ([]*models.Listing, error)
	ListingsForSeller(ctx context.Context, sellerID string) ([]*models.Listing, error)
	MarkSold(ctx context.Context, listingID, sellerID string) (*models.Listing, error)
	DeleteListing(ctx context.Context, listingID, sellerID string) error
}

type marketplaceServiceImpl struct {
	store  store.Store
	logger zerolog.Logger
}

// NewMarketplaceService creates a new MarketplaceService
func NewMarketplaceService(st store.Store, logger zerolog.Logger) MarketplaceService {
	return &marketplaceServiceImpl{
		store:  st,
		logger: logger,
	}
}

func (s *marketplaceServiceImpl) loadListings(ctx context.Context) (map[string]*models.Listing, error) {
	listings := make(map[string]*models.Listing)
	if err := s.store.Get(ctx, store.BucketMarketplace, &listings); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return listings, nil
}

func (s *marketplaceServiceImpl) saveListings(ctx context.Context, listings map[string]*models.Listing) error {
	if err := s.store.Put(ctx, store.BucketMarketplace, listings); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// CreateListing creates a new listing owned by the seller
func (s *marketplaceServiceImpl) CreateListing(ctx context.Context, req *dto.CreateListingRequest, seller *models.User) (*models.Listing, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewMissingFieldError("a listing title")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewMissingFieldError("a listing description")
	}
	if req.Price < 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidValue, "price cannot be negative")
	}

	listings, err := s.loadListings(ctx)
	if err != nil {
		return nil, err
	}

	listing := &models.Listing{
		ID:            "item_" + uuid.New().String()[:8],
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Price:         req.Price,
		Category:      req.Category,
		Condition:     req.Condition,
		ContactMethod: req.ContactMethod,
		ContactInfo:   req.ContactInfo,
		Location:      req.Location,
		SellerID:      seller.ID,
		SellerName:    seller.Name,
		Status:        models.ListingAvailable,
		CreatedAt:     helpers.NowISO(),
	}

	listings[listing.ID] = listing
	if err := s.saveListings(ctx, listings); err != nil {
		return nil, err
	}

	s.logger.Info().Str("listingID", listing.ID).Str("sellerID", seller.ID).Msg("Listing created")
	return listing, nil
}

// GetListing retrieves a listing by id and counts the view
func (s *marketplaceServiceImpl) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	listings, err := s.loadListings(ctx)
	if err != nil {
		return nil, err
	}

	listing, ok := listings[listingID]
	if !ok {
		return nil, apperrors.NewNotFoundError("listing not found")
	}

	listing.Views++
	if err := s.saveListings(ctx, listings); err != nil {
		return nil, err
	}
	return listing, nil
}

// ListListings returns available listings matching the search query (title or
// description, case insensitive) and category filter, newest first. Sold
// listings are excluded.
func (s *marketplaceServiceImpl) ListListings(ctx context.Context, search, category string) ([]*models.Listing, error) {
	listings, err := s.loadListings(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(search)
	result := make([]*models.Listing, 0, len(listings))
	for _, listing := range listings {
		if listing.Status != models.ListingAvailable {
			continue
		}
		if category != "" && listing.Category != category {
			continue
		}
		if lower != "" &&
			!strings.Contains(strings.ToLower(listing.Title), lower) &&
			!strings.Contains(strings.ToLower(listing.Description), lower) {
			continue
		}
		result = append(result, listing)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result, nil
}

// ListingsForSeller returns all of a seller's listings, sold included, newest
// first.
func (s *marketplaceServiceImpl) ListingsForSeller(ctx context.Context, sellerID string) ([]*models.Listing, error) {
	listings, err := s.loadListings(ctx)
	if err != nil {
		return nil, err
	}

	var result []*models.Listing
	for _, listing := range listings {
		if listing.SellerID == sellerID {
			result = append(result, listing)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result, nil
}

// MarkSold flips a listing to sold. Only the seller may do this, and a listing
// already sold stays sold.
func (s *marketplaceServiceImpl) MarkSold(ctx context.Context, listingID, sellerID string) (*models.Listing, error) {
	listings, err := s.loadListings(ctx)
	if err != nil {
		return nil, err
	}

	listing, ok := listings[listingID]
	if !ok {
		return nil, apperrors.NewNotFoundError("listing not found")
	}
	if listing.SellerID != sellerID {
		return nil, apperrors.NewUnauthorizedError("only the seller can update this listing")
	}
	if listing.Status == models.ListingSold {
		return nil, apperrors.ErrListingSold
	}

	listing.Status = models.ListingSold
	if err := s.saveListings(ctx, listings); err != nil {
		return nil, err
	}

	s.logger.Info().Str("listingID", listingID).Msg("Listing marked sold")
	return listing, nil
}

// DeleteListing removes a listing. Only the seller may do this.
func (s *marketplaceServiceImpl) DeleteListing(ctx context.Context, listingID, sellerID string) error {
	listings, err := s.loadListings(ctx)
	if err != nil {
		return err
	}

	listing, ok := listings[listingID]
	if !ok {
		return apperrors.NewNotFoundError("listing not found")
	}
	if listing.SellerID != sellerID {
		return apperrors.NewUnauthorizedError("only the seller can delete this listing")
	}

	delete(listings, listingID)
	if err := s.saveListings(ctx, listings); err != nil {
		return err
	}

	s.logger.Info().Str("listingID", listingID).Msg("Listing deleted")
	return nil
}
