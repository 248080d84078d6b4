package mysql

import (
	"context"
	"errors"

	"harvestmarket/internal/domain"

	"gorm.io/gorm"
)

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

type farmerRepo struct {
	db *gorm.DB
}

func (r *farmerRepo) Create(ctx context.Context, p *domain.FarmerProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *farmerRepo) FindByUser(ctx context.Context, userID uint64) (*domain.FarmerProfile, error) {
	var p domain.FarmerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *farmerRepo) SetRecipientCode(ctx context.Context, userID uint64, code string) error {
	return r.db.WithContext(ctx).Model(&domain.FarmerProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("recipient_code", code).Error
}
