package services

import (
	"context"
	"testing"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListingService_CreateListing(t *testing.T) {
	tests := []struct {
		name    string
		listing *domain.ProductListing
		wantErr string
	}{
		{
			name:    "valid listing",
			listing: activeListing(0, testFarmerID, 10, 2, 100),
		},
		{
			name:    "non-positive price",
			listing: activeListing(0, testFarmerID, 10, 2, 0),
			wantErr: "pricePerUnit",
		},
		{
			name:    "non-positive minimum order",
			listing: activeListing(0, testFarmerID, 10, 0, 100),
			wantErr: "minOrderQuantity",
		},
		{
			name:    "negative stock",
			listing: activeListing(0, testFarmerID, -1, 2, 100),
			wantErr: "quantityAvailable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockStore()
			if tc.wantErr == "" {
				store.ListingsRepo.On("Create", mock.Anything, tc.listing).Return(nil)
			}

			err := NewListingService(store).CreateListing(context.Background(), tc.listing)

			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				var ve *domain.ValidationError
				if assert.ErrorAs(t, err, &ve) {
					assert.Equal(t, tc.wantErr, ve.Field)
				}
			}
			store.AssertExpectations(t)
		})
	}
}

func TestListingService_CreateListing_VarietyLink(t *testing.T) {
	t.Run("known variety accepted", func(t *testing.T) {
		store := mocks.NewMockStore()
		listing := activeListing(0, testFarmerID, 10, 2, 100)
		listing.CropVarietyID = 5
		store.CatalogRepo.On("FindVariety", mock.Anything, uint64(5)).
			Return(&domain.CropVariety{ID: 5, CropCategoryID: 4, Name: "Yellow Yam"}, nil)
		store.ListingsRepo.On("Create", mock.Anything, listing).Return(nil)

		assert.NoError(t, NewListingService(store).CreateListing(context.Background(), listing))
		store.AssertExpectations(t)
	})

	t.Run("unknown variety rejected", func(t *testing.T) {
		store := mocks.NewMockStore()
		listing := activeListing(0, testFarmerID, 10, 2, 100)
		listing.CropVarietyID = 5
		store.CatalogRepo.On("FindVariety", mock.Anything, uint64(5)).Return(nil, nil)

		err := NewListingService(store).CreateListing(context.Background(), listing)

		var ve *domain.ValidationError
		if assert.ErrorAs(t, err, &ve) {
			assert.Equal(t, "cropVarietyId", ve.Field)
		}
		store.ListingsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListingService_GetListing(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := mocks.NewMockStore()
		listing := activeListing(testListingID, testFarmerID, 10, 2, 100)
		store.ListingsRepo.On("FindByID", mock.Anything, testListingID).Return(listing, nil)

		got, err := NewListingService(store).GetListing(context.Background(), testListingID)

		assert.NoError(t, err)
		assert.Equal(t, listing, got)
	})

	t.Run("not found", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.ListingsRepo.On("FindByID", mock.Anything, testListingID).Return(nil, nil)

		_, err := NewListingService(store).GetListing(context.Background(), testListingID)

		var nf *domain.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestListingService_PauseUnpause(t *testing.T) {
	store := mocks.NewMockStore()
	listing := activeListing(testListingID, testFarmerID, 10, 2, 100)
	store.ListingsRepo.On("FindByID", mock.Anything, testListingID).Return(listing, nil)
	store.ListingsRepo.On("SetActive", mock.Anything, testListingID, false).Return(nil).Once()
	store.ListingsRepo.On("SetActive", mock.Anything, testListingID, true).Return(nil).Once()

	service := NewListingService(store)
	assert.NoError(t, service.PauseListing(context.Background(), testListingID))
	assert.NoError(t, service.UnpauseListing(context.Background(), testListingID))
	store.AssertExpectations(t)
}

func TestListingService_PauseMissingListing(t *testing.T) {
	store := mocks.NewMockStore()
	store.ListingsRepo.On("FindByID", mock.Anything, testListingID).Return(nil, nil)

	err := NewListingService(store).PauseListing(context.Background(), testListingID)

	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
	store.ListingsRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}
