package services

import (
	"context"
	"fmt"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/repository"
)

// LogisticsService assigns delivery partners to orders and tracks the
// assignment through to delivery.
type LogisticsService struct {
	store    repository.Store
	notifier Notifier
}

func NewLogisticsService(store repository.Store, notifier Notifier) *LogisticsService {
	return &LogisticsService{store: store, notifier: notifier}
}

func (s *LogisticsService) AssignPartner(ctx context.Context, orderID, partnerID uint64) (*domain.LogisticsAssignment, error) {
	order, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Entity: "order"}
	}

	assignment := &domain.LogisticsAssignment{
		OrderID:            orderID,
		LogisticsPartnerID: partnerID,
		Status:             domain.AssignmentAssigned,
	}
	if err := s.store.Logistics().Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *LogisticsService) UpdateStatus(ctx context.Context, assignmentID uint64, status domain.AssignmentStatus, trackingCode string) (*domain.LogisticsAssignment, error) {
	if !status.ValidTransitionTarget() {
		return nil, &domain.ValidationError{Field: "status", Message: "unrecognized assignment status"}
	}

	assignment, err := s.store.Logistics().FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, &domain.NotFoundError{Entity: "logistics assignment"}
	}

	assignment.Status = status
	if trackingCode != "" {
		assignment.TrackingCode = trackingCode
	}
	if err := s.store.Logistics().Update(ctx, assignment); err != nil {
		return nil, err
	}

	if status == domain.AssignmentDelivered {
		order, err := s.store.Orders().FindByID(ctx, assignment.OrderID)
		if err == nil && order != nil {
			s.notifier.Notify(ctx, order.BuyerID, domain.NotifyOrderUpdate,
				fmt.Sprintf("Order (%d) has been delivered.", order.ID), order.ID)
		}
	}

	return assignment, nil
}

func (s *LogisticsService) PartnerAssignments(ctx context.Context, partnerID uint64) ([]domain.LogisticsAssignment, error) {
	return s.store.Logistics().FindByPartner(ctx, partnerID)
}
