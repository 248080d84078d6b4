package mysql

import (
	"context"
	"errors"

	"harvestmarket/internal/domain"

	"gorm.io/gorm"
)

type catalogRepo struct {
	db *gorm.DB
}

func (r *catalogRepo) CreateCategory(ctx context.Context, c *domain.CropCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogRepo) FindCategory(ctx context.Context, id uint64) (*domain.CropCategory, error) {
	var c domain.CropCategory
	if err := r.db.WithContext(ctx).Preload("Varieties").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepo) Categories(ctx context.Context) ([]domain.CropCategory, error) {
	var out []domain.CropCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepo) CreateVariety(ctx context.Context, v *domain.CropVariety) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *catalogRepo) FindVariety(ctx context.Context, id uint64) (*domain.CropVariety, error) {
	var v domain.CropVariety
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *catalogRepo) VarietiesByCategory(ctx context.Context, categoryID uint64) ([]domain.CropVariety, error) {
	var out []domain.CropVariety
	err := r.db.WithContext(ctx).
		Where("crop_category_id = ?", categoryID).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type walletRepo struct {
	db *gorm.DB
}

func (r *walletRepo) FindOrCreate(ctx context.Context, userID uint64) (*domain.Wallet, error) {
	w := domain.Wallet{UserID: userID}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).FirstOrCreate(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Credit adds amount to the balance in place, creating the wallet row when
// the user has none yet.
func (r *walletRepo) Credit(ctx context.Context, userID uint64, amount float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w := domain.Wallet{UserID: userID}
		if err := tx.Where("user_id = ?", userID).FirstOrCreate(&w).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Wallet{}).
			Where("user_id = ?", userID).
			UpdateColumn("balance", gorm.Expr("balance + ?", amount)).Error
	})
}
