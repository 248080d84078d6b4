package mysql

import (
	"context"
	"errors"
	"log"

	"harvestmarket/internal/domain"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func (r *orderRepo) Create(ctx context.Context, o *domain.Order) error {
	// Create cascades into Items through the association.
	result := r.db.WithContext(ctx).Create(o)
	if result.Error != nil {
		log.Printf("order create error: %v", result.Error)
		return result.Error
	}
	if o.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByBuyer(ctx context.Context, buyerID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("buyer orders error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByFarmer(ctx context.Context, farmerID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("farmer orders error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) SetPaymentStatus(ctx context.Context, id uint64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		UpdateColumn("payment_status", status).Error
}

func (r *orderRepo) SetStatus(ctx context.Context, id uint64, status domain.OrderStatus, payment domain.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"status":         status,
			"payment_status": payment,
		}).Error
}

func (r *orderRepo) SetLogisticsType(ctx context.Context, id uint64, t domain.LogisticsType) error {
	return r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		UpdateColumn("logistics_type", t).Error
}
