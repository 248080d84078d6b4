package services

import (
	"context"
	"fmt"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/infra/paystack"
	"harvestmarket/internal/repository"
)

// DisputeService resolves disputes by reversing escrow and cancelling the
// order.
type DisputeService struct {
	store    repository.Store
	gateway  paystack.ClientInterface
	notifier Notifier
}

func NewDisputeService(store repository.Store, gateway paystack.ClientInterface, notifier Notifier) *DisputeService {
	return &DisputeService{store: store, gateway: gateway, notifier: notifier}
}

func (s *DisputeService) OpenDispute(ctx context.Context, orderID, raisedByID uint64, reason string) (*domain.Dispute, error) {
	order, err := s.store.Orders().FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Entity: "order"}
	}

	dispute := &domain.Dispute{
		OrderID:    orderID,
		RaisedByID: raisedByID,
		Reason:     reason,
		Status:     domain.DisputeOpen,
	}
	if err := s.store.Disputes().Create(ctx, dispute); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, order.Counterparty(raisedByID), domain.NotifyDisputeUpdate,
		fmt.Sprintf("A dispute (%d) was opened on order (%d).", dispute.ID, orderID), dispute.ID)

	return dispute, nil
}

// ResolveDispute marks the dispute resolved, cancels and refunds the order,
// and records the REFUND transaction correlated to the original payment's
// gateway reference. The store mutations and the gateway refund sit inside
// one transaction: a refund failure rolls everything back, so the order is
// never marked REFUNDED without a gateway-side refund.
func (s *DisputeService) ResolveDispute(ctx context.Context, disputeID uint64, resolutionNotes string) (*domain.Dispute, error) {
	var dispute *domain.Dispute

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		d, err := tx.Disputes().FindByID(ctx, disputeID)
		if err != nil {
			return err
		}
		if d == nil {
			return &domain.NotFoundError{Entity: "dispute"}
		}
		if d.Status == domain.DisputeResolved {
			return &domain.ConflictError{Message: "dispute already resolved"}
		}

		payment, err := tx.Transactions().FindSuccessfulPayment(ctx, d.OrderID)
		if err != nil {
			return err
		}
		if payment == nil {
			return &domain.NotFoundError{Entity: "successful payment transaction"}
		}

		d.Status = domain.DisputeResolved
		d.ResolutionNotes = resolutionNotes
		if err := tx.Disputes().Update(ctx, d); err != nil {
			return err
		}

		if err := tx.Orders().SetStatus(ctx, d.OrderID, domain.OrderCancelled, domain.PaymentRefunded); err != nil {
			return err
		}

		if _, err := s.gateway.Refund(ctx, payment.GatewayReference); err != nil {
			return &domain.GatewayError{Op: "refund", Err: err}
		}

		err = tx.Transactions().Create(ctx, &domain.Transaction{
			UserID:           d.RaisedByID,
			OrderID:          d.OrderID,
			Amount:           payment.Amount,
			Type:             domain.TxRefund,
			Status:           domain.TxPending,
			GatewayReference: payment.GatewayReference,
		})
		if err != nil {
			return err
		}

		dispute = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, dispute.RaisedByID, domain.NotifyDisputeUpdate,
		fmt.Sprintf("Dispute (%d) status updated to: RESOLVED.", dispute.ID), dispute.ID)

	return dispute, nil
}
