package services

import (
	"context"
	"log"
	"time"

	"harvestmarket/internal/domain"
	rabbit "harvestmarket/internal/infra/rabbitmq"
	"harvestmarket/internal/repository"
)

// Notifier is the fire-and-forget side channel for lifecycle events.
// Implementations must never fail the calling operation.
type Notifier interface {
	Notify(ctx context.Context, userID uint64, typ domain.NotificationType, content string, relatedID uint64)
}

// NotificationService writes the in-app record and hands the event to the
// message bus for out-of-process delivery (email, push). Errors are logged
// and swallowed; notification failures never block the primary operation.
type NotificationService struct {
	store     repository.Store
	publisher rabbit.PublisherInterface
}

func NewNotificationService(store repository.Store, publisher rabbit.PublisherInterface) *NotificationService {
	return &NotificationService{store: store, publisher: publisher}
}

func (s *NotificationService) Notify(ctx context.Context, userID uint64, typ domain.NotificationType, content string, relatedID uint64) {
	record := &domain.Notification{
		UserID:    userID,
		Type:      typ,
		Content:   content,
		RelatedID: relatedID,
	}
	if err := s.store.Notifications().Create(ctx, record); err != nil {
		log.Printf("failed to record notification for user %d: %v", userID, err)
	}

	evt := domain.NotificationEvent{
		UserID:    userID,
		Type:      typ,
		Content:   content,
		RelatedID: relatedID,
		CreatedAt: time.Now(),
	}
	go func() {
		if err := s.publisher.Publish(context.Background(), "notification."+string(typ), evt); err != nil {
			log.Printf("failed to publish notification event: %v", err)
		}
	}()
}

func (s *NotificationService) UserNotifications(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	return s.store.Notifications().FindByUser(ctx, userID)
}
