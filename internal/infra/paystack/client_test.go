package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestClient_ValidateSignature(t *testing.T) {
	client := NewClient("http://unused", "sk_test_secret", time.Second)
	body := []byte(`{"event":"charge.success","data":{"reference":"ref_1"}}`)

	assert.True(t, client.ValidateSignature(body, sign("sk_test_secret", body)))
	assert.False(t, client.ValidateSignature(body, sign("sk_other_secret", body)))
	assert.False(t, client.ValidateSignature(body, ""))

	// A single flipped byte in the payload invalidates the signature.
	tampered := append([]byte(nil), body...)
	tampered[len(tampered)-2] = '2'
	assert.False(t, client.ValidateSignature(tampered, sign("sk_test_secret", body)))
}

func TestClient_InitializeCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.example/x","access_code":"ac_1","reference":"ref_1"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_secret", time.Second)
	init, err := client.InitializeCharge(context.Background(), "buyer@example.com", 52500, ChargeMetadata{OrderID: 1}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "ref_1", init.Reference)
	assert.Equal(t, "https://checkout.example/x", init.AuthorizationURL)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false,"message":"Invalid amount"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test_secret", time.Second)
	_, err := client.InitializeCharge(context.Background(), "buyer@example.com", -1, ChargeMetadata{OrderID: 1}, nil)

	assert.ErrorContains(t, err, "Invalid amount")
}
