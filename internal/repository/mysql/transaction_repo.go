package mysql

import (
	"context"
	"errors"
	"log"

	"harvestmarket/internal/domain"

	"gorm.io/gorm"
)

type transactionRepo struct {
	db *gorm.DB
}

func (r *transactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		log.Printf("transaction create error: %v", err)
		return err
	}
	return nil
}

func (r *transactionRepo) Update(ctx context.Context, t *domain.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *transactionRepo) FindPayment(ctx context.Context, reference string) (*domain.Transaction, error) {
	return r.findOne(ctx, "gateway_reference = ? AND type = ?", reference, domain.TxPayment)
}

func (r *transactionRepo) FindPendingPayment(ctx context.Context, orderID uint64) (*domain.Transaction, error) {
	return r.findOne(ctx, "order_id = ? AND type = ? AND status = ?", orderID, domain.TxPayment, domain.TxPending)
}

func (r *transactionRepo) FindSuccessfulPayment(ctx context.Context, orderID uint64) (*domain.Transaction, error) {
	return r.findOne(ctx, "order_id = ? AND type = ? AND status = ?", orderID, domain.TxPayment, domain.TxSuccessful)
}

func (r *transactionRepo) FindPayout(ctx context.Context, orderID uint64) (*domain.Transaction, error) {
	return r.findOne(ctx, "order_id = ? AND type = ?", orderID, domain.TxPayout)
}

func (r *transactionRepo) findOne(ctx context.Context, query string, args ...interface{}) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := r.db.WithContext(ctx).Where(query, args...).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) FindByUser(ctx context.Context, userID uint64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("transaction history error: %v", err)
		return nil, err
	}
	return out, nil
}

// SetStatusByReference is an idempotent set: re-applying the same status for
// the same gateway reference is a no-op.
func (r *transactionRepo) SetStatusByReference(ctx context.Context, reference string, status domain.TransactionStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("gateway_reference = ?", reference).
		UpdateColumn("status", status).Error
}
