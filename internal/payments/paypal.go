package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/domain"
)

// PayPalClient talks to the PayPal REST API (client-credentials flow, orders
// v2). The base URL points at sandbox or live.
type PayPalClient struct {
	BaseURL   string
	ClientID  string
	Secret    string
	ReturnURL string
	CancelURL string
	HTTP      *http.Client
}

type PayPalOrder struct {
	OrderID      string `json:"orderId"`
	ApprovalLink string `json:"approvalLink"`
}

type PayPalCapture struct {
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
}

func (c PayPalClient) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c PayPalClient) accessToken() (string, error) {
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/v1/oauth2/token",
		strings.NewReader(url.Values{"grant_type": {"client_credentials"}}.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.ClientID, c.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token request failed with status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("paypal token response missing access_token")
	}
	return body.AccessToken, nil
}

func (c PayPalClient) post(token, path string, payload any, out any) error {
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("paypal request %s failed with status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CreateOrder opens a CAPTURE-intent order and returns the approval link the
// frontend redirects the buyer to.
func (c PayPalClient) CreateOrder(amount string, userID int64) (PayPalOrder, error) {
	token, err := c.accessToken()
	if err != nil {
		return PayPalOrder{}, err
	}

	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{"amount": map[string]string{"currency_code": "USD", "value": amount}},
		},
		"application_context": map[string]string{
			"return_url": fmt.Sprintf("%s?userId=%d", c.ReturnURL, userID),
			"cancel_url": c.CancelURL,
		},
	}

	var body struct {
		ID    string `json:"id"`
		Links []struct {
			Rel  string `json:"rel"`
			Href string `json:"href"`
		} `json:"links"`
	}
	if err := c.post(token, "/v2/checkout/orders", payload, &body); err != nil {
		return PayPalOrder{}, err
	}

	order := PayPalOrder{OrderID: body.ID}
	for _, link := range body.Links {
		if link.Rel == "approve" {
			order.ApprovalLink = link.Href
			break
		}
	}
	return order, nil
}

// CaptureOrder settles an approved order. A non-COMPLETED status, or a
// response without a capture amount, fails the payment.
func (c PayPalClient) CaptureOrder(orderID string) (PayPalCapture, error) {
	token, err := c.accessToken()
	if err != nil {
		return PayPalCapture{}, err
	}

	var body struct {
		Status        string `json:"status"`
		PurchaseUnits []struct {
			Payments struct {
				Captures []struct {
					ID     string `json:"id"`
					Amount struct {
						Value string `json:"value"`
					} `json:"amount"`
				} `json:"captures"`
			} `json:"payments"`
		} `json:"purchase_units"`
	}
	if err := c.post(token, "/v2/checkout/orders/"+orderID+"/capture", map[string]any{}, &body); err != nil {
		return PayPalCapture{}, err
	}

	if body.Status != "COMPLETED" {
		return PayPalCapture{}, domain.PaymentFailedError{Gateway: "PayPal", Msg: "PayPal payment failed"}
	}

	if len(body.PurchaseUnits) == 0 || len(body.PurchaseUnits[0].Payments.Captures) == 0 {
		return PayPalCapture{}, domain.PaymentFailedError{Gateway: "PayPal", Msg: "invalid response structure from PayPal"}
	}
	capture := body.PurchaseUnits[0].Payments.Captures[0]

	amount, err := strconv.ParseFloat(capture.Amount.Value, 64)
	if err != nil {
		return PayPalCapture{}, domain.PaymentFailedError{Gateway: "PayPal", Msg: "invalid response structure from PayPal", Err: err}
	}
	return PayPalCapture{Amount: amount, TransactionID: capture.ID}, nil
}
