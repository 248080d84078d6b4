package mysql

import (
	"context"
	"errors"

	"harvestmarket/internal/domain"

	"gorm.io/gorm"
)

type negotiationRepo struct {
	db *gorm.DB
}

func (r *negotiationRepo) Create(ctx context.Context, s *domain.NegotiationSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *negotiationRepo) FindByOrder(ctx context.Context, orderID uint64) (*domain.NegotiationSession, error) {
	var s domain.NegotiationSession
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *negotiationRepo) FindActiveByOrder(ctx context.Context, orderID uint64) (*domain.NegotiationSession, error) {
	var s domain.NegotiationSession
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID, domain.NegotiationActive).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// AppendMessage assigns the next position inside a transaction so the log
// stays densely ordered under concurrent senders.
func (r *negotiationRepo) AppendMessage(ctx context.Context, sessionID uint64, m *domain.NegotiationMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.NegotiationMessage{}).
			Where("negotiation_session_id = ?", sessionID).
			Count(&count).Error; err != nil {
			return err
		}
		m.NegotiationSessionID = sessionID
		m.Position = int(count) + 1
		return tx.Create(m).Error
	})
}

func (r *negotiationRepo) SetStatus(ctx context.Context, sessionID uint64, status domain.NegotiationStatus) error {
	return r.db.WithContext(ctx).Model(&domain.NegotiationSession{}).
		Where("id = ?", sessionID).
		UpdateColumn("status", status).Error
}
