package services

import (
	"context"
	"testing"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:       testOrderID,
		BuyerID:  testBuyerID,
		FarmerID: testFarmerID,
		Status:   domain.OrderPending,
	}
}

func activeSession() *domain.NegotiationSession {
	return &domain.NegotiationSession{
		ID:      1,
		OrderID: testOrderID,
		Status:  domain.NegotiationActive,
	}
}

func TestNegotiationService_InitSession(t *testing.T) {
	t.Run("creates an active session", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.OrdersRepo.On("FindByID", mock.Anything, testOrderID).Return(pendingOrder(), nil)
		store.NegotiationsRepo.On("FindActiveByOrder", mock.Anything, testOrderID).Return(nil, nil)
		store.NegotiationsRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.NegotiationSession) bool {
			return s.OrderID == testOrderID && s.Status == domain.NegotiationActive
		})).Return(nil)

		service := NewNegotiationService(store, nopNotifier{})
		session, err := service.InitSession(context.Background(), testOrderID)

		assert.NoError(t, err)
		assert.Equal(t, domain.NegotiationActive, session.Status)
		store.AssertExpectations(t)
	})

	t.Run("rejects a second session while one is active", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.OrdersRepo.On("FindByID", mock.Anything, testOrderID).Return(pendingOrder(), nil)
		store.NegotiationsRepo.On("FindActiveByOrder", mock.Anything, testOrderID).Return(activeSession(), nil)

		service := NewNegotiationService(store, nopNotifier{})
		_, err := service.InitSession(context.Background(), testOrderID)

		var ce *domain.ConflictError
		assert.ErrorAs(t, err, &ce)
		store.NegotiationsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		store := mocks.NewMockStore()
		store.OrdersRepo.On("FindByID", mock.Anything, testOrderID).Return(nil, nil)

		service := NewNegotiationService(store, nopNotifier{})
		_, err := service.InitSession(context.Background(), testOrderID)

		var nf *domain.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestNegotiationService_AddMessage(t *testing.T) {
	t.Run("appends messages in send order", func(t *testing.T) {
		store := mocks.NewMockStore()
		notifier := new(mocks.MockNotifier)
		session := activeSession()
		store.NegotiationsRepo.On("FindByOrder", mock.Anything, testOrderID).Return(session, nil)
		store.NegotiationsRepo.On("AppendMessage", mock.Anything, session.ID, mock.Anything).Return(nil)
		store.OrdersRepo.On("FindByID", mock.Anything, testOrderID).Return(pendingOrder(), nil)
		notifier.On("Notify", mock.Anything, testFarmerID, domain.NotifyNewMessage, mock.Anything, testOrderID).Return()
		notifier.On("Notify", mock.Anything, testBuyerID, domain.NotifyNewMessage, mock.Anything, testOrderID).Return()

		service := NewNegotiationService(store, notifier)
		_, err := service.AddMessage(context.Background(), testOrderID, testBuyerID, "Can you do 90 per kg?")
		assert.NoError(t, err)
		got, err := service.AddMessage(context.Background(), testOrderID, testFarmerID, "95 is my floor.")
		assert.NoError(t, err)

		if assert.Len(t, got.Messages, 2) {
			assert.Equal(t, "Can you do 90 per kg?", got.Messages[0].Message)
			assert.Equal(t, testBuyerID, got.Messages[0].SenderID)
			assert.Equal(t, "95 is my floor.", got.Messages[1].Message)
			assert.Equal(t, testFarmerID, got.Messages[1].SenderID)
		}
		// Each message notifies the sender's counterparty.
		notifier.AssertNumberOfCalls(t, "Notify", 2)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		service := NewNegotiationService(mocks.NewMockStore(), nopNotifier{})
		_, err := service.AddMessage(context.Background(), testOrderID, testBuyerID, "")

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("rejects messages on a closed session", func(t *testing.T) {
		store := mocks.NewMockStore()
		closed := activeSession()
		closed.Status = domain.NegotiationAccepted
		store.NegotiationsRepo.On("FindByOrder", mock.Anything, testOrderID).Return(closed, nil)

		service := NewNegotiationService(store, nopNotifier{})
		_, err := service.AddMessage(context.Background(), testOrderID, testBuyerID, "one more thing")

		var ise *domain.InvalidStateError
		assert.ErrorAs(t, err, &ise)
		store.NegotiationsRepo.AssertNotCalled(t, "AppendMessage", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNegotiationService_UpdateStatus(t *testing.T) {
	t.Run("accepting notifies the counterparty exactly once", func(t *testing.T) {
		store := mocks.NewMockStore()
		notifier := new(mocks.MockNotifier)
		session := activeSession()
		store.NegotiationsRepo.On("FindByOrder", mock.Anything, testOrderID).Return(session, nil)
		store.NegotiationsRepo.On("SetStatus", mock.Anything, session.ID, domain.NegotiationAccepted).Return(nil)
		store.OrdersRepo.On("FindByID", mock.Anything, testOrderID).Return(pendingOrder(), nil)
		notifier.On("Notify", mock.Anything, testBuyerID, domain.NotifyOrderUpdate, mock.Anything, testOrderID).Return()

		service := NewNegotiationService(store, notifier)
		got, err := service.UpdateStatus(context.Background(), testOrderID, testFarmerID, domain.NegotiationAccepted)

		assert.NoError(t, err)
		assert.Equal(t, domain.NegotiationAccepted, got.Status)
		notifier.AssertNumberOfCalls(t, "Notify", 1)
		store.AssertExpectations(t)
	})

	t.Run("closed sessions cannot transition again", func(t *testing.T) {
		store := mocks.NewMockStore()
		closed := activeSession()
		closed.Status = domain.NegotiationRejected
		store.NegotiationsRepo.On("FindByOrder", mock.Anything, testOrderID).Return(closed, nil)

		service := NewNegotiationService(store, nopNotifier{})
		_, err := service.UpdateStatus(context.Background(), testOrderID, testFarmerID, domain.NegotiationAccepted)

		var ise *domain.InvalidStateError
		assert.ErrorAs(t, err, &ise)
		store.NegotiationsRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status value", func(t *testing.T) {
		service := NewNegotiationService(mocks.NewMockStore(), nopNotifier{})
		_, err := service.UpdateStatus(context.Background(), testOrderID, testFarmerID, domain.NegotiationStatus("MAYBE"))

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}
