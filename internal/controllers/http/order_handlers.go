package http

import (
	"harvestmarket/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	buyerID := currentUserID(c)
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), buyerID, req.ProductListingID,
		req.Quantity, req.DeliveryAddressID, domain.LogisticsType(req.LogisticsType))
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Order placed successfully", order)
}

func (h *Handler) OrderSummary(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetOrderSummary(c.Request.Context(), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Order fetched", order)
}

func (h *Handler) BuyerOrders(c *gin.Context) {
	buyerID := currentUserID(c)
	orders, err := h.orders.BuyerOrderHistory(c.Request.Context(), buyerID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Orders fetched", orders)
}

func (h *Handler) FarmerOrders(c *gin.Context) {
	orders, err := h.orders.FarmerOrderHistory(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Orders fetched", orders)
}

func (h *Handler) SetLogisticsPreference(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req LogisticsPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.orders.SetLogisticsPreference(c.Request.Context(), orderID, domain.LogisticsType(req.LogisticsType)); err != nil {
		fail(c, err)
		return
	}
	success(c, "Logistics preference updated", nil)
}

func (h *Handler) AddToCart(c *gin.Context) {
	buyerID := currentUserID(c)
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := h.orders.AddToCart(c.Request.Context(), buyerID, req.ProductListingID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Item added to cart", item)
}

func (h *Handler) GetCart(c *gin.Context) {
	buyerID := currentUserID(c)
	items, err := h.orders.GetCart(c.Request.Context(), buyerID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Cart fetched", items)
}

func (h *Handler) Checkout(c *gin.Context) {
	buyerID := currentUserID(c)
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	orders, err := h.orders.Checkout(c.Request.Context(), buyerID, req.DeliveryAddressID, domain.LogisticsType(req.LogisticsType))
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "Checkout complete", orders)
}
