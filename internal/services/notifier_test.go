package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_Notify(t *testing.T) {
	store := mocks.NewMockStore()
	publisher := new(mocks.MockPublisher)

	store.NotificationsRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == testBuyerID && n.Type == domain.NotifyOrderUpdate &&
			n.Content == "Order (1) has been delivered." && n.RelatedID == testOrderID
	})).Return(nil)

	published := make(chan struct{})
	publisher.On("Publish", mock.Anything, "notification.ORDER_UPDATE", mock.MatchedBy(func(evt domain.NotificationEvent) bool {
		return evt.UserID == testBuyerID && evt.Type == domain.NotifyOrderUpdate
	})).Run(func(mock.Arguments) { close(published) }).Return(nil)

	service := NewNotificationService(store, publisher)
	service.Notify(context.Background(), testBuyerID, domain.NotifyOrderUpdate, "Order (1) has been delivered.", testOrderID)

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("notification event was never published")
	}
	store.AssertExpectations(t)
}

func TestNotificationService_NotifySwallowsStoreFailure(t *testing.T) {
	store := mocks.NewMockStore()
	publisher := new(mocks.MockPublisher)
	store.NotificationsRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("table gone"))

	published := make(chan struct{})
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { close(published) }).Return(nil)

	service := NewNotificationService(store, publisher)

	// Must not panic or propagate; the bus event still goes out.
	service.Notify(context.Background(), testBuyerID, domain.NotifyPaymentStatus, "Payment received.", testOrderID)

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("notification event was never published")
	}
}

func TestNotificationService_UserNotifications(t *testing.T) {
	store := mocks.NewMockStore()
	rows := []domain.Notification{{ID: 1, UserID: testBuyerID, Type: domain.NotifyOrderUpdate}}
	store.NotificationsRepo.On("FindByUser", mock.Anything, testBuyerID).Return(rows, nil)

	got, err := NewNotificationService(store, new(mocks.MockPublisher)).UserNotifications(context.Background(), testBuyerID)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}
