package services

import (
	"context"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/repository"
)

// CatalogService is the read-mostly crop taxonomy listings reference.
type CatalogService struct {
	store repository.Store
}

func NewCatalogService(store repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, description string) (*domain.CropCategory, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "required"}
	}
	category := &domain.CropCategory{Name: name, Description: description}
	if err := s.store.Catalog().CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.CropCategory, error) {
	return s.store.Catalog().Categories(ctx)
}

// GetCategory returns the category with its varieties.
func (s *CatalogService) GetCategory(ctx context.Context, id uint64) (*domain.CropCategory, error) {
	c, err := s.store.Catalog().FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &domain.NotFoundError{Entity: "crop category"}
	}
	return c, nil
}

func (s *CatalogService) CreateVariety(ctx context.Context, categoryID uint64, name, description string) (*domain.CropVariety, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "required"}
	}
	category, err := s.store.Catalog().FindCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &domain.NotFoundError{Entity: "crop category"}
	}
	variety := &domain.CropVariety{CropCategoryID: categoryID, Name: name, Description: description}
	if err := s.store.Catalog().CreateVariety(ctx, variety); err != nil {
		return nil, err
	}
	return variety, nil
}

func (s *CatalogService) GetVariety(ctx context.Context, id uint64) (*domain.CropVariety, error) {
	v, err := s.store.Catalog().FindVariety(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &domain.NotFoundError{Entity: "crop variety"}
	}
	return v, nil
}

func (s *CatalogService) VarietiesByCategory(ctx context.Context, categoryID uint64) ([]domain.CropVariety, error) {
	return s.store.Catalog().VarietiesByCategory(ctx, categoryID)
}
