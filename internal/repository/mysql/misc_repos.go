package mysql

import (
	"context"
	"errors"

	"harvestmarket/internal/domain"

	"gorm.io/gorm"
)

type disputeRepo struct {
	db *gorm.DB
}

func (r *disputeRepo) Create(ctx context.Context, d *domain.Dispute) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *disputeRepo) FindByID(ctx context.Context, id uint64) (*domain.Dispute, error) {
	var d domain.Dispute
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *disputeRepo) Update(ctx context.Context, d *domain.Dispute) error {
	return r.db.WithContext(ctx).Save(d).Error
}

type cartRepo struct {
	db *gorm.DB
}

func (r *cartRepo) AddItem(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepo) ItemsByBuyer(ctx context.Context, buyerID uint64) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) Clear(ctx context.Context, buyerID uint64) error {
	return r.db.WithContext(ctx).Where("buyer_id = ?", buyerID).Delete(&domain.CartItem{}).Error
}

type savedSearchRepo struct {
	db *gorm.DB
}

func (r *savedSearchRepo) Create(ctx context.Context, s *domain.SavedSearch) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *savedSearchRepo) FindByUser(ctx context.Context, userID uint64) ([]domain.SavedSearch, error) {
	var out []domain.SavedSearch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type logisticsRepo struct {
	db *gorm.DB
}

func (r *logisticsRepo) Create(ctx context.Context, a *domain.LogisticsAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *logisticsRepo) FindByID(ctx context.Context, id uint64) (*domain.LogisticsAssignment, error) {
	var a domain.LogisticsAssignment
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *logisticsRepo) Update(ctx context.Context, a *domain.LogisticsAssignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *logisticsRepo) FindByPartner(ctx context.Context, partnerID uint64) ([]domain.LogisticsAssignment, error) {
	var out []domain.LogisticsAssignment
	err := r.db.WithContext(ctx).
		Where("logistics_partner_id = ?", partnerID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type notificationRepo struct {
	db *gorm.DB
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) FindByUser(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	var out []domain.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
