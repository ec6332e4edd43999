package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/application/billing/usecases"
	"github.com/resumelift/resumelift/internal/shared/logger"
	"github.com/resumelift/resumelift/internal/shared/utils"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Webhook-Signature"

// maxWebhookBodySize bounds inbound payment event payloads.
const maxWebhookBodySize = 1 << 20

// WebhookHandler receives payment events from the external payment provider.
type WebhookHandler struct {
	handleEventUC handlePaymentEventUseCase
	logger        logger.Interface
}

func NewWebhookHandler(handleEventUC handlePaymentEventUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		handleEventUC: handleEventUC,
		logger:        logger,
	}
}

// HandlePaymentEvent verifies and applies a provider payment event. The raw
// body is passed through untouched so the HMAC covers the exact bytes sent.
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodySize))
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := h.handleEventUC.Execute(c.Request.Context(), usecases.HandlePaymentEventCommand{
		Payload:   payload,
		Signature: c.GetHeader(SignatureHeader),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"received": true})
}
