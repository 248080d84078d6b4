package http

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PlaceOrderRequest struct {
	ProductListingID  uint64  `json:"productListingId" binding:"required"`
	Quantity          float64 `json:"quantity" binding:"required"`
	DeliveryAddressID uint64  `json:"deliveryAddressId"`
	LogisticsType     string  `json:"logisticsType" binding:"required"`
}

type LogisticsPreferenceRequest struct {
	LogisticsType string `json:"logisticsType" binding:"required"`
}

type AddToCartRequest struct {
	ProductListingID uint64  `json:"productListingId" binding:"required"`
	Quantity         float64 `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	DeliveryAddressID uint64 `json:"deliveryAddressId"`
	LogisticsType     string `json:"logisticsType" binding:"required"`
}

type InitializePaymentRequest struct {
	Amount   int64    `json:"amount" binding:"required,min=1"` // minor units
	OrderID  uint64   `json:"orderId"`
	Channels []string `json:"channels"`
}

type TopUpRequest struct {
	Amount   int64    `json:"amount" binding:"required,min=1"` // minor units
	Channels []string `json:"channels"`
}

type CreateRecipientRequest struct {
	AccountName   string `json:"accountName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	BankCode      string `json:"bankCode" binding:"required"`
}

type AddMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type UpdateNegotiationRequest struct {
	Status string `json:"status" binding:"required"`
}

type OpenDisputeRequest struct {
	OrderID uint64 `json:"orderId" binding:"required"`
	Reason  string `json:"reason"`
}

type ResolveDisputeRequest struct {
	ResolutionNotes string `json:"resolutionNotes" binding:"required"`
}

type AssignPartnerRequest struct {
	OrderID            uint64 `json:"orderId" binding:"required"`
	LogisticsPartnerID uint64 `json:"logisticsPartnerId" binding:"required"`
}

type UpdateAssignmentRequest struct {
	Status       string `json:"status" binding:"required"`
	TrackingCode string `json:"trackingCode"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateVarietyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type SaveSearchRequest struct {
	Name        string  `json:"name" binding:"required"`
	Keyword     string  `json:"keyword"`
	Location    string  `json:"location"`
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	MinQuantity float64 `json:"minQuantity"`
	MaxQuantity float64 `json:"maxQuantity"`
}
