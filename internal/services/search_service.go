package services

import (
	"context"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/repository"
)

// SearchService is a filter/sort projection over active listings plus
// per-user saved searches. No ranking beyond the fixed sort options.
type SearchService struct {
	store repository.Store
}

func NewSearchService(store repository.Store) *SearchService {
	return &SearchService{store: store}
}

func (s *SearchService) SearchProducts(ctx context.Context, f domain.ListingFilter) ([]domain.ProductListing, error) {
	return s.store.Listings().Search(ctx, f)
}

func (s *SearchService) SaveSearch(ctx context.Context, userID uint64, name string, f domain.ListingFilter) (*domain.SavedSearch, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "required"}
	}
	saved := &domain.SavedSearch{
		UserID:      userID,
		Name:        name,
		Keyword:     f.Keyword,
		Location:    f.Location,
		MinPrice:    f.MinPrice,
		MaxPrice:    f.MaxPrice,
		MinQuantity: f.MinQuantity,
		MaxQuantity: f.MaxQuantity,
	}
	if err := s.store.SavedSearches().Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *SearchService) SavedSearches(ctx context.Context, userID uint64) ([]domain.SavedSearch, error) {
	return s.store.SavedSearches().FindByUser(ctx, userID)
}
