package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"course-payment-service/services"
	"course-payment-service/wayforpay"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type PaymentController struct {
	Purchases services.PurchaseService
	Callbacks services.CallbackService
	Logger    *zap.Logger
}

// CreatePurchase returns the signed payment-initiation payload for a
// pricing tier. The caller auto-submits it as a form to the gateway.
func (pc *PaymentController) CreatePurchase(c *gin.Context) {
	var req struct {
		Tier string `json:"tier" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		pc.respondError(c, http.StatusBadRequest, "Invalid tier", err)
		return
	}

	purchase, svcErr := pc.Purchases.BuildPurchaseRequest(c.Request.Context(), req.Tier)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, purchase)
}

// Callback handles the gateway's asynchronous payment notification.
// Binding is the structural phase: a malformed shape is rejected here,
// before any signature computation can happen on it.
func (pc *PaymentController) Callback(c *gin.Context) {
	var cb wayforpay.CallbackPayload
	if err := c.ShouldBindJSON(&cb); err != nil {
		pc.Logger.Warn("Malformed callback payload",
			zap.String("first_failing_field", firstFailingField(err)),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback"})
		return
	}

	ack, svcErr := pc.Callbacks.HandleCallback(c.Request.Context(), &cb)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, ack)
}

// firstFailingField names the field that failed structural validation, for
// server-side logs only.
func firstFailingField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	var jerr *json.UnmarshalTypeError
	if errors.As(err, &jerr) {
		return jerr.Field
	}
	return ""
}

// respondError logs a warning and writes a generic JSON error response.
func (pc *PaymentController) respondError(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		pc.Logger.Warn(msg, zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}
