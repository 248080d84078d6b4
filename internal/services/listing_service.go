package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

const listingCacheTTL = time.Minute

// ListingService manages the catalog of farmer listings with a
// read-through Redis cache on single-listing lookups.
type ListingService struct {
	store       repository.Store
	redisClient *redis.Client
}

func NewListingService(store repository.Store) *ListingService {
	return &ListingService{store: store}
}

func (s *ListingService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func listingCacheKey(id uint64) string {
	return fmt.Sprintf("listing:%d", id)
}

func (s *ListingService) CreateListing(ctx context.Context, l *domain.ProductListing) error {
	if l.PricePerUnit <= 0 {
		return &domain.ValidationError{Field: "pricePerUnit", Message: "must be positive"}
	}
	if l.MinOrderQuantity <= 0 {
		return &domain.ValidationError{Field: "minOrderQuantity", Message: "must be positive"}
	}
	if l.QuantityAvailable < 0 {
		return &domain.ValidationError{Field: "quantityAvailable", Message: "must not be negative"}
	}
	if l.CropVarietyID != 0 {
		variety, err := s.store.Catalog().FindVariety(ctx, l.CropVarietyID)
		if err != nil {
			return err
		}
		if variety == nil {
			return &domain.ValidationError{Field: "cropVarietyId", Message: "unknown crop variety"}
		}
	}
	return s.store.Listings().Create(ctx, l)
}

func (s *ListingService) GetListing(ctx context.Context, id uint64) (*domain.ProductListing, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, listingCacheKey(id)).Result()
		if err == nil {
			var l domain.ProductListing
			if err := json.Unmarshal([]byte(cached), &l); err == nil {
				return &l, nil
			}
		}
	}

	l, err := s.store.Listings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, &domain.NotFoundError{Entity: "product listing"}
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(l); err == nil {
			s.redisClient.Set(ctx, listingCacheKey(id), data, listingCacheTTL)
		}
	}

	return l, nil
}

func (s *ListingService) UpdateListing(ctx context.Context, l *domain.ProductListing) error {
	existing, err := s.store.Listings().FindByID(ctx, l.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return &domain.NotFoundError{Entity: "product listing"}
	}
	if err := s.store.Listings().Update(ctx, l); err != nil {
		return err
	}
	s.invalidate(ctx, l.ID)
	return nil
}

func (s *ListingService) DeleteListing(ctx context.Context, id uint64) error {
	if err := s.store.Listings().Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ListingService) PauseListing(ctx context.Context, id uint64) error {
	return s.setActive(ctx, id, false)
}

func (s *ListingService) UnpauseListing(ctx context.Context, id uint64) error {
	return s.setActive(ctx, id, true)
}

func (s *ListingService) setActive(ctx context.Context, id uint64, active bool) error {
	existing, err := s.store.Listings().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &domain.NotFoundError{Entity: "product listing"}
	}
	if err := s.store.Listings().SetActive(ctx, id, active); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ListingService) invalidate(ctx context.Context, id uint64) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, listingCacheKey(id))
	}
}

// WarmupListingCache preloads hot listings concurrently at startup.
func (s *ListingService) WarmupListingCache(ctx context.Context, ids []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			l, err := s.store.Listings().FindByID(gctx, id)
			if err != nil {
				log.Printf("failed to warm up cache for listing %d: %v", id, err)
				return nil
			}
			if l != nil {
				if data, err := json.Marshal(l); err == nil {
					s.redisClient.Set(gctx, listingCacheKey(id), data, 5*time.Minute)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
