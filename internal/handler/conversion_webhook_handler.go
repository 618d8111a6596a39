package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"hissaback/config"
	"hissaback/internal/models"
	"hissaback/internal/repository"
	"hissaback/internal/service"

	"github.com/gin-gonic/gin"
)

// ConversionWebhookHandler receives the advertiser network's conversion
// postbacks. Redelivery of the same order id is answered 409 and changes
// nothing.
type ConversionWebhookHandler struct {
	conversionSvc *service.ConversionService
	auditRepo     *repository.AuditLogRepository
	cfg           *config.Config
}

func NewConversionWebhookHandler(conversionSvc *service.ConversionService, auditRepo *repository.AuditLogRepository, cfg *config.Config) *ConversionWebhookHandler {
	return &ConversionWebhookHandler{conversionSvc: conversionSvc, auditRepo: auditRepo, cfg: cfg}
}

func (h *ConversionWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if h.cfg.Webhook.Secret != "" {
		if !h.verifySignature(body, c.GetHeader("X-Webhook-Signature")) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}
	var ev service.ConversionEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if ev.ClickID == "" || ev.OrderID == "" || ev.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "click_id, order_id and status are required"})
		return
	}
	entry, err := h.conversionSvc.Process(ev)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.auditRepo != nil {
		_ = h.auditRepo.Create(&models.AuditLog{
			Action:     "conversion_received",
			Resource:   "ledger_entry",
			ResourceID: entry.ID,
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Metadata:   `{"order_id":"` + ev.OrderID + `"}`,
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ledger_id": entry.ID})
}

func (h *ConversionWebhookHandler) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.cfg.Webhook.Secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
