package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "x-paystack-signature"

func (h *Handler) InitializePayment(c *gin.Context) {
	var req InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	init, err := h.payments.InitializePayment(c.Request.Context(), currentUserID(c), currentEmail(c), req.Amount, req.OrderID, req.Channels)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Payment initialized", init)
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	reference := c.Query("reference")
	status, err := h.payments.VerifyPayment(c.Request.Context(), reference)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Payment verified", status)
}

// PaymentWebhook reads the raw body before any parsing so the signature is
// computed over exactly what the gateway signed.
func (h *Handler) PaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := h.payments.HandleWebhook(c.Request.Context(), body, c.GetHeader(signatureHeader)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) ReleaseEscrow(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	payout, err := h.payments.ReleaseEscrow(c.Request.Context(), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Escrow released", payout)
}

func (h *Handler) TransactionHistory(c *gin.Context) {
	txns, err := h.payments.TransactionHistory(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Transaction history fetched", txns)
}

func (h *Handler) CreateRecipient(c *gin.Context) {
	var req CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	code, err := h.payments.CreateRecipient(c.Request.Context(), currentUserID(c), req.AccountName, req.AccountNumber, req.BankCode)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Recipient created", gin.H{"recipientCode": code})
}

func (h *Handler) WalletTopUp(c *gin.Context) {
	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	init, err := h.payments.InitiateTopUp(c.Request.Context(), currentUserID(c), currentEmail(c), req.Amount, req.Channels)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Top-up initiated", init)
}

func (h *Handler) WalletBalance(c *gin.Context) {
	wallet, err := h.payments.WalletBalance(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	success(c, "Wallet fetched", wallet)
}
