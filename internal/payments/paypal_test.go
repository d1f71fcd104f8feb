package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paypalTestServer(t *testing.T, orders http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "test-token"})
	})
	mux.HandleFunc("/v2/checkout/orders", orders)
	mux.HandleFunc("/v2/checkout/orders/", orders)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) PayPalClient {
	return PayPalClient{
		BaseURL:   srv.URL,
		ClientID:  "client",
		Secret:    "secret",
		ReturnURL: "http://localhost:3000/payment/payment-success",
		CancelURL: "http://localhost:3000/payment/payment-cancel",
		HTTP:      srv.Client(),
	}
}

func TestCreateOrderReturnsApprovalLink(t *testing.T) {
	srv := paypalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var payload struct {
			Intent             string `json:"intent"`
			ApplicationContext struct {
				ReturnURL string `json:"return_url"`
			} `json:"application_context"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "CAPTURE", payload.Intent)
		assert.Contains(t, payload.ApplicationContext.ReturnURL, "userId=9")

		json.NewEncoder(w).Encode(map[string]any{
			"id": "ORDER-1",
			"links": []map[string]string{
				{"rel": "self", "href": "https://example.test/self"},
				{"rel": "approve", "href": "https://example.test/approve"},
			},
		})
	})

	order, err := newTestClient(srv).CreateOrder("25.00", 9)
	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", order.OrderID)
	assert.Equal(t, "https://example.test/approve", order.ApprovalLink)
}

func TestCaptureOrderCompleted(t *testing.T) {
	srv := paypalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": "COMPLETED",
			"purchase_units": []map[string]any{
				{"payments": map[string]any{
					"captures": []map[string]any{
						{"id": "TX-1", "amount": map[string]string{"value": "25.00"}},
					},
				}},
			},
		})
	})

	capture, err := newTestClient(srv).CaptureOrder("ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, capture.Amount)
	assert.Equal(t, "TX-1", capture.TransactionID)
}

func TestCaptureOrderNotCompleted(t *testing.T) {
	srv := paypalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "DECLINED"})
	})

	_, err := newTestClient(srv).CaptureOrder("ORDER-1")
	assert.True(t, domain.IsPaymentFailed(err), "expected payment failed error, got %v", err)
}

func TestCaptureOrderMalformedResponse(t *testing.T) {
	srv := paypalTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "COMPLETED"})
	})

	_, err := newTestClient(srv).CaptureOrder("ORDER-1")
	assert.True(t, domain.IsPaymentFailed(err), "expected payment failed error, got %v", err)
}

func TestAccessTokenFailureSurfaces(t *testing.T) {
	srv := paypalTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	client := newTestClient(srv)
	client.Secret = "wrong"

	_, err := client.CreateOrder("10.00", 1)
	assert.Error(t, err)
}
