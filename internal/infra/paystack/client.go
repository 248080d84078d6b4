package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the Paystack REST API. Amounts cross this boundary in
// minor currency units (kobo); callers convert from major units.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type ChargeMetadata struct {
	OrderID uint64 `json:"orderId"`
	Purpose string `json:"purpose,omitempty"`
}

// ChargeInit is the client-facing initialization payload, returned to the
// caller unmodified.
type ChargeInit struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type ChargeStatus struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
}

type TransferResult struct {
	Reference    string `json:"reference"`
	TransferCode string `json:"transfer_code"`
	Status       string `json:"status"`
}

type RefundResult struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// WebhookEvent is the delivered webhook payload, signed via HMAC-SHA512
// over the raw body.
type WebhookEvent struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

type WebhookData struct {
	Reference string         `json:"reference"`
	Amount    int64          `json:"amount"`
	Metadata  ChargeMetadata `json:"metadata"`
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !env.Status {
		return fmt.Errorf("paystack returned status %d: %s", resp.StatusCode, env.Message)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) InitializeCharge(ctx context.Context, email string, amountMinor int64, metadata ChargeMetadata, channels []string) (*ChargeInit, error) {
	payload := map[string]interface{}{
		"email":    email,
		"amount":   amountMinor,
		"metadata": metadata,
	}
	if len(channels) > 0 {
		payload["channels"] = channels
	}
	var init ChargeInit
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", payload, &init); err != nil {
		return nil, err
	}
	return &init, nil
}

func (c *Client) VerifyCharge(ctx context.Context, reference string) (*ChargeStatus, error) {
	var status ChargeStatus
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) CreateRecipient(ctx context.Context, accountName, accountNumber, bankCode string) (string, error) {
	payload := map[string]string{
		"type":           "nuban",
		"name":           accountName,
		"account_number": accountNumber,
		"bank_code":      bankCode,
		"currency":       "NGN",
	}
	var data struct {
		RecipientCode string `json:"recipient_code"`
	}
	if err := c.do(ctx, http.MethodPost, "/transferrecipient", payload, &data); err != nil {
		return "", err
	}
	return data.RecipientCode, nil
}

func (c *Client) Transfer(ctx context.Context, recipientCode string, amountMinor int64, reason string) (*TransferResult, error) {
	payload := map[string]interface{}{
		"source":    "balance",
		"recipient": recipientCode,
		"amount":    amountMinor,
		"reason":    reason,
	}
	var res TransferResult
	if err := c.do(ctx, http.MethodPost, "/transfer", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Refund(ctx context.Context, reference string) (*RefundResult, error) {
	payload := map[string]string{"transaction": reference}
	var res RefundResult
	if err := c.do(ctx, http.MethodPost, "/refund", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ValidateSignature checks the webhook signature header against an
// HMAC-SHA512 of the raw body keyed with the secret.
func (c *Client) ValidateSignature(body []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
