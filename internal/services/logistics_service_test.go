package services

import (
	"context"
	"testing"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testAssignmentID = uint64(3)

func TestLogisticsService_AssignPartner(t *testing.T) {
	store := mocks.NewMockStore()
	store.OrdersRepo.On("FindByID", mock.Anything, testOrderID).Return(pendingOrder(), nil)
	store.LogisticsRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.LogisticsAssignment) bool {
		return a.OrderID == testOrderID && a.LogisticsPartnerID == uint64(30) &&
			a.Status == domain.AssignmentAssigned
	})).Return(nil)

	service := NewLogisticsService(store, nopNotifier{})
	assignment, err := service.AssignPartner(context.Background(), testOrderID, 30)

	assert.NoError(t, err)
	assert.Equal(t, domain.AssignmentAssigned, assignment.Status)
	store.AssertExpectations(t)
}

func TestLogisticsService_UpdateStatus(t *testing.T) {
	t.Run("delivery notifies the buyer", func(t *testing.T) {
		store := mocks.NewMockStore()
		notifier := new(mocks.MockNotifier)
		store.LogisticsRepo.On("FindByID", mock.Anything, testAssignmentID).
			Return(&domain.LogisticsAssignment{ID: testAssignmentID, OrderID: testOrderID,
				LogisticsPartnerID: 30, Status: domain.AssignmentInTransit}, nil)
		store.LogisticsRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.LogisticsAssignment) bool {
			return a.Status == domain.AssignmentDelivered && a.TrackingCode == "TRK-991"
		})).Return(nil)
		store.OrdersRepo.On("FindByID", mock.Anything, testOrderID).Return(pendingOrder(), nil)
		notifier.On("Notify", mock.Anything, testBuyerID, domain.NotifyOrderUpdate, mock.Anything, testOrderID).Return()

		service := NewLogisticsService(store, notifier)
		got, err := service.UpdateStatus(context.Background(), testAssignmentID, domain.AssignmentDelivered, "TRK-991")

		assert.NoError(t, err)
		assert.Equal(t, domain.AssignmentDelivered, got.Status)
		notifier.AssertNumberOfCalls(t, "Notify", 1)
	})

	t.Run("intermediate statuses stay quiet", func(t *testing.T) {
		store := mocks.NewMockStore()
		notifier := new(mocks.MockNotifier)
		store.LogisticsRepo.On("FindByID", mock.Anything, testAssignmentID).
			Return(&domain.LogisticsAssignment{ID: testAssignmentID, OrderID: testOrderID,
				Status: domain.AssignmentAssigned}, nil)
		store.LogisticsRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		service := NewLogisticsService(store, notifier)
		_, err := service.UpdateStatus(context.Background(), testAssignmentID, domain.AssignmentInTransit, "")

		assert.NoError(t, err)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status", func(t *testing.T) {
		service := NewLogisticsService(mocks.NewMockStore(), nopNotifier{})
		_, err := service.UpdateStatus(context.Background(), testAssignmentID, domain.AssignmentStatus("TELEPORTED"), "")

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}
