package http

import (
	"net/http"
	"strconv"
	"strings"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	auth         *services.AuthService
	catalog      *services.CatalogService
	listings     *services.ListingService
	search       *services.SearchService
	orders       *services.OrderService
	payments     *services.PaymentService
	negotiations *services.NegotiationService
	disputes     *services.DisputeService
	logistics    *services.LogisticsService
	notifier     *services.NotificationService
	rdb          *redis.Client
}

func NewHandler(
	auth *services.AuthService,
	catalog *services.CatalogService,
	listings *services.ListingService,
	search *services.SearchService,
	orders *services.OrderService,
	payments *services.PaymentService,
	negotiations *services.NegotiationService,
	disputes *services.DisputeService,
	logistics *services.LogisticsService,
	notifier *services.NotificationService,
	rdb *redis.Client,
) *Handler {
	return &Handler{
		auth:         auth,
		catalog:      catalog,
		listings:     listings,
		search:       search,
		orders:       orders,
		payments:     payments,
		negotiations: negotiations,
		disputes:     disputes,
		logistics:    logistics,
		notifier:     notifier,
		rdb:          rdb,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Public surface: registration, browsing and the gateway callback.
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	r.GET("/listings/:id", h.GetListing)
	r.GET("/search/products", h.SearchProducts)

	r.GET("/catalog/categories", h.ListCategories)
	r.GET("/catalog/categories/:id", h.GetCategory)
	r.GET("/catalog/categories/:id/varieties", h.CategoryVarieties)
	r.GET("/catalog/varieties/:id", h.GetVariety)

	r.POST("/payments/webhook", h.PaymentWebhook)
	r.GET("/payments/verify", h.VerifyPayment)

	// Everything below acts as the token's user; identity never comes
	// from the request body or path.
	auth := r.Group("/", h.RequireAuth)

	auth.GET("/profile", h.Profile)
	auth.PUT("/profile", h.UpdateProfile)

	auth.POST("/orders", h.PlaceOrder)
	auth.GET("/orders", h.BuyerOrders)
	auth.GET("/orders/:id", h.OrderSummary)
	auth.PATCH("/orders/:id/logistics", h.SetLogisticsPreference)
	auth.POST("/orders/:id/release-escrow", h.ReleaseEscrow)

	auth.POST("/orders/:id/negotiation", h.InitNegotiation)
	auth.POST("/orders/:id/negotiation/messages", h.AddNegotiationMessage)
	auth.PATCH("/orders/:id/negotiation", h.UpdateNegotiation)

	auth.POST("/cart", h.AddToCart)
	auth.GET("/cart", h.GetCart)
	auth.POST("/cart/checkout", h.Checkout)

	auth.POST("/disputes", h.OpenDispute)

	auth.POST("/payments/initialize", h.InitializePayment)
	auth.GET("/payments/history", h.TransactionHistory)
	auth.GET("/wallet", h.WalletBalance)
	auth.POST("/wallet/topup", h.WalletTopUp)

	auth.GET("/search/saved", h.SavedSearches)
	auth.POST("/search/saved", h.SaveSearch)
	auth.GET("/notifications", h.Notifications)

	auth.PATCH("/logistics/assignments/:id", h.UpdateAssignment)
	auth.GET("/logistics/partners/:partnerId/assignments", h.PartnerAssignments)

	farmer := auth.Group("/", h.RequireRole(domain.RoleFarmer, domain.RoleAdmin))
	farmer.POST("/listings", h.CreateListing)
	farmer.PUT("/listings/:id", h.UpdateListing)
	farmer.DELETE("/listings/:id", h.DeleteListing)
	farmer.PATCH("/listings/:id/pause", h.PauseListing)
	farmer.PATCH("/listings/:id/unpause", h.UnpauseListing)
	farmer.GET("/farmers/orders", h.FarmerOrders)
	farmer.POST("/payments/recipient", h.CreateRecipient)

	admin := auth.Group("/", h.RequireRole(domain.RoleAdmin))
	admin.PATCH("/disputes/:id/resolve", h.ResolveDispute)
	admin.POST("/logistics/assignments", h.AssignPartner)
	admin.POST("/catalog/categories", h.CreateCategory)
	admin.POST("/catalog/categories/:id/varieties", h.CreateVariety)
}

// RequireAuth extracts the user from the bearer token and stores id, email
// and role on the request context.
func (h *Handler) RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "missing bearer token"})
		return
	}
	userID, email, role, err := h.auth.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid token"})
		return
	}
	c.Set("userId", userID)
	c.Set("email", email)
	c.Set("role", string(role))
	c.Next()
}

// RequireRole gates a route to the listed roles. Runs after RequireAuth.
func (h *Handler) RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := currentRole(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "error", "message": "insufficient permissions"})
	}
}

func currentUserID(c *gin.Context) uint64 {
	v, _ := c.Get("userId")
	id, _ := v.(uint64)
	return id
}

func currentEmail(c *gin.Context) string {
	v, _ := c.Get("email")
	email, _ := v.(string)
	return email
}

func currentRole(c *gin.Context) domain.UserRole {
	v, _ := c.Get("role")
	role, _ := v.(string)
	return domain.UserRole(role)
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
