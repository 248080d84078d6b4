package services

import (
	"context"
	"fmt"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/repository"
)

// NegotiationService manages the per-order message thread. Sessions move
// ACTIVE -> ACCEPTED | REJECTED and are immutable once closed.
type NegotiationService struct {
	store    repository.Store
	notifier Notifier
}

func NewNegotiationService(store repository.Store, notifier Notifier) *NegotiationService {
	return &NegotiationService{store: store, notifier: notifier}
}

func (s *NegotiationService) InitSession(ctx context.Context, orderID uint64) (*domain.NegotiationSession, error) {
	order, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Entity: "order"}
	}

	active, err := s.store.Negotiations().FindActiveByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, &domain.ConflictError{Message: "an active negotiation session already exists for this order"}
	}

	session := &domain.NegotiationSession{
		OrderID: orderID,
		Status:  domain.NegotiationActive,
	}
	if err := s.store.Negotiations().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *NegotiationService) AddMessage(ctx context.Context, orderID, senderID uint64, message string) (*domain.NegotiationSession, error) {
	if message == "" {
		return nil, &domain.ValidationError{Field: "message", Message: "required"}
	}

	session, err := s.store.Negotiations().FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &domain.NotFoundError{Entity: "negotiation session"}
	}
	if session.Status != domain.NegotiationActive {
		return nil, &domain.InvalidStateError{Message: "negotiation session is closed"}
	}

	msg := &domain.NegotiationMessage{SenderID: senderID, Message: message}
	if err := s.store.Negotiations().AppendMessage(ctx, session.ID, msg); err != nil {
		return nil, err
	}
	session.Messages = append(session.Messages, *msg)

	order, err := s.store.Orders().FindByID(ctx, orderID)
	if err == nil && order != nil {
		s.notifier.Notify(ctx, order.Counterparty(senderID), domain.NotifyNewMessage,
			fmt.Sprintf("You received a new message about order (%d).", orderID), orderID)
	}

	return session, nil
}

// UpdateStatus transitions the session. Closing it (ACCEPTED or REJECTED)
// notifies the counterparty of the actor exactly once.
func (s *NegotiationService) UpdateStatus(ctx context.Context, orderID, actorID uint64, status domain.NegotiationStatus) (*domain.NegotiationSession, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Message: "must be ACTIVE, ACCEPTED or REJECTED"}
	}

	session, err := s.store.Negotiations().FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &domain.NotFoundError{Entity: "negotiation session"}
	}
	if session.Status.Terminal() {
		return nil, &domain.InvalidStateError{Message: "negotiation session is closed"}
	}

	if err := s.store.Negotiations().SetStatus(ctx, session.ID, status); err != nil {
		return nil, err
	}
	session.Status = status

	if status.Terminal() {
		order, err := s.store.Orders().FindByID(ctx, orderID)
		if err == nil && order != nil {
			s.notifier.Notify(ctx, order.Counterparty(actorID), domain.NotifyOrderUpdate,
				fmt.Sprintf("Negotiation on order (%d) was %s.", orderID, status), orderID)
		}
	}

	return session, nil
}
