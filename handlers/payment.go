package handlers

import (
	"io"
	"net/http"

	"glowbook/config"
	paymentSvc "glowbook/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// Stripe recommends capping webhook bodies to guard against abuse.
const maxWebhookBodyBytes = int64(65536)

// StripeWebhook verifies the event signature and applies the event.
func StripeWebhook(svc paymentSvc.WebhookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}

		event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
		if err != nil {
			logger.Warn("Stripe signature verification failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
			return
		}

		if err := svc.HandleEvent(c.Request.Context(), event); err != nil {
			logger.Error("Failed to apply stripe event",
				zap.String("type", string(event.Type)),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
