package services

import (
	"context"
	"testing"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testCategoryID = uint64(4)

func TestCatalogService_CreateCategory(t *testing.T) {
	t.Run("creates named category", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.CatalogRepo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *domain.CropCategory) bool {
			return c.Name == "Tubers"
		})).Return(nil)

		service := NewCatalogService(store)
		category, err := service.CreateCategory(context.Background(), "Tubers", "Root crops")

		assert.NoError(t, err)
		assert.Equal(t, "Tubers", category.Name)
		store.AssertExpectations(t)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		store := mocks.NewMockStore()
		service := NewCatalogService(store)

		_, err := service.CreateCategory(context.Background(), "", "Root crops")

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		store.CatalogRepo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_CreateVariety(t *testing.T) {
	t.Run("attaches variety to existing category", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.CatalogRepo.On("FindCategory", mock.Anything, testCategoryID).
			Return(&domain.CropCategory{ID: testCategoryID, Name: "Tubers"}, nil)
		store.CatalogRepo.On("CreateVariety", mock.Anything, mock.MatchedBy(func(v *domain.CropVariety) bool {
			return v.CropCategoryID == testCategoryID && v.Name == "Yellow Yam"
		})).Return(nil)

		service := NewCatalogService(store)
		variety, err := service.CreateVariety(context.Background(), testCategoryID, "Yellow Yam", "")

		assert.NoError(t, err)
		assert.Equal(t, testCategoryID, variety.CropCategoryID)
		store.AssertExpectations(t)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.CatalogRepo.On("FindCategory", mock.Anything, testCategoryID).Return(nil, nil)

		service := NewCatalogService(store)
		_, err := service.CreateVariety(context.Background(), testCategoryID, "Yellow Yam", "")

		var nf *domain.NotFoundError
		assert.ErrorAs(t, err, &nf)
		store.CatalogRepo.AssertNotCalled(t, "CreateVariety", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		store := mocks.NewMockStore()
		service := NewCatalogService(store)

		_, err := service.CreateVariety(context.Background(), testCategoryID, "", "")

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestCatalogService_GetCategory(t *testing.T) {
	t.Run("returns category with varieties", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.CatalogRepo.On("FindCategory", mock.Anything, testCategoryID).
			Return(&domain.CropCategory{ID: testCategoryID, Name: "Tubers",
				Varieties: []domain.CropVariety{{ID: 1, CropCategoryID: testCategoryID, Name: "Yellow Yam"}}}, nil)

		service := NewCatalogService(store)
		category, err := service.GetCategory(context.Background(), testCategoryID)

		assert.NoError(t, err)
		assert.Len(t, category.Varieties, 1)
	})

	t.Run("not found", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.CatalogRepo.On("FindCategory", mock.Anything, testCategoryID).Return(nil, nil)

		service := NewCatalogService(store)
		_, err := service.GetCategory(context.Background(), testCategoryID)

		var nf *domain.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}
