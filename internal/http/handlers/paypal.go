package handlers

import (
	"net/http"

	"eventhub/internal/http/middleware"
	"eventhub/internal/payments"

	"github.com/gin-gonic/gin"
)

type PayPalHandler struct {
	PayPal payments.PayPalClient
}

type createPaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type capturePaymentRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// CreatePayment opens a PayPal order and hands the approval link back to
// the frontend for the redirect.
func (h PayPalHandler) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.PayPal.CreateOrder(req.Amount, middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	Created(c, "paypal order created successfully", order)
}

func (h PayPalHandler) CapturePayment(c *gin.Context) {
	var req capturePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	capture, err := h.PayPal.CaptureOrder(req.OrderID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	OK(c, "paypal payment captured successfully", capture)
}
