package http

import (
	"context"
	"encoding/json"
	"time"

	"harvestmarket/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateListing(c *gin.Context) {
	var listing domain.ProductListing
	if err := c.ShouldBindJSON(&listing); err != nil {
		badRequest(c, err)
		return
	}
	listing.FarmerID = currentUserID(c)
	if err := h.listings.CreateListing(c.Request.Context(), &listing); err != nil {
		fail(c, err)
		return
	}
	created(c, "Product listing created", listing)
}

func (h *Handler) GetListing(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	listing, err := h.listings.GetListing(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Listing fetched", listing)
}

func (h *Handler) UpdateListing(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var listing domain.ProductListing
	if err := c.ShouldBindJSON(&listing); err != nil {
		badRequest(c, err)
		return
	}
	listing.ID = id
	listing.FarmerID = currentUserID(c)
	if err := h.listings.UpdateListing(c.Request.Context(), &listing); err != nil {
		fail(c, err)
		return
	}
	success(c, "Listing updated", listing)
}

func (h *Handler) DeleteListing(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.listings.DeleteListing(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	success(c, "Listing deleted", nil)
}

func (h *Handler) PauseListing(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.listings.PauseListing(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	success(c, "Listing paused", nil)
}

func (h *Handler) UnpauseListing(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.listings.UnpauseListing(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	success(c, "Listing unpaused", nil)
}

// SearchProducts caches results briefly per raw query string; listings
// change often enough that a short TTL is all the staleness budget allows.
func (h *Handler) SearchProducts(c *gin.Context) {
	var filter domain.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}

	cacheKey := "search:" + c.Request.URL.RawQuery
	if h.rdb != nil {
		if b, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var listings []domain.ProductListing
			if json.Unmarshal([]byte(b), &listings) == nil {
				success(c, "Listings fetched", listings)
				return
			}
		}
	}

	listings, err := h.search.SearchProducts(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(listings); err == nil {
			h.rdb.Set(context.Background(), cacheKey, data, 10*time.Second)
		}
	}

	success(c, "Listings fetched", listings)
}

func (h *Handler) SaveSearch(c *gin.Context) {
	var req SaveSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	saved, err := h.search.SaveSearch(c.Request.Context(), currentUserID(c), req.Name, domain.ListingFilter{
		Keyword:     req.Keyword,
		Location:    req.Location,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.MaxQuantity,
	})
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Search saved", saved)
}

func (h *Handler) SavedSearches(c *gin.Context) {
	searches, err := h.search.SavedSearches(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Saved searches fetched", searches)
}
