package mysql

import (
	"context"
	"errors"
	"log"
	"time"

	"harvestmarket/internal/domain"

	"gorm.io/gorm"
)

type listingRepo struct {
	db *gorm.DB
}

func (r *listingRepo) Create(ctx context.Context, l *domain.ProductListing) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		log.Printf("listing create error: %v", err)
		return err
	}
	return nil
}

func (r *listingRepo) FindByID(ctx context.Context, id uint64) (*domain.ProductListing, error) {
	var l domain.ProductListing
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *listingRepo) Update(ctx context.Context, l *domain.ProductListing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *listingRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.ProductListing{}, id).Error
}

func (r *listingRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.ProductListing{}).
		Where("id = ?", id).
		UpdateColumn("is_active", active).Error
}

// DecrementStock is the serialization point for concurrent order placement.
// The conditional UPDATE guards the invariant quantity_available >= 0; the
// row lock it takes serializes competing decrements.
func (r *listingRepo) DecrementStock(ctx context.Context, id uint64, qty float64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.ProductListing{}).
		Where("id = ? AND quantity_available >= ?", id, qty).
		UpdateColumn("quantity_available", gorm.Expr("quantity_available - ?", qty))
	if res.Error != nil {
		log.Printf("decrement stock error: %v", res.Error)
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *listingRepo) Search(ctx context.Context, f domain.ListingFilter) ([]domain.ProductListing, error) {
	now := time.Now()
	q := r.db.WithContext(ctx).Model(&domain.ProductListing{}).
		Where("is_active = ?", true).
		Where("available_from <= ? AND available_to >= ?", now, now)

	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", kw, kw)
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.MinQuantity > 0 {
		q = q.Where("quantity_available >= ?", f.MinQuantity)
	}
	if f.MaxQuantity > 0 {
		q = q.Where("quantity_available <= ?", f.MaxQuantity)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_per_unit >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_unit <= ?", f.MaxPrice)
	}

	switch f.SortBy {
	case "price":
		q = q.Order("price_per_unit ASC")
	case "newest":
		q = q.Order("created_at DESC")
	default:
		q = q.Order("id ASC")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	q = q.Limit(limit).Offset((page - 1) * limit)

	var out []domain.ProductListing
	if err := q.Find(&out).Error; err != nil {
		log.Printf("listing search error: %v", err)
		return nil, err
	}
	return out, nil
}
