package handler

import (
	"net/http"
	"strconv"

	"hissaback/internal/repository"
	"hissaback/internal/service"

	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	payoutSvc     *service.PayoutService
	conversionSvc *service.ConversionService
	payoutRepo    *repository.PayoutRepository
	ledgerRepo    *repository.LedgerRepository
}

func NewPayoutHandler(
	payoutSvc *service.PayoutService,
	conversionSvc *service.ConversionService,
	payoutRepo *repository.PayoutRepository,
	ledgerRepo *repository.LedgerRepository,
) *PayoutHandler {
	return &PayoutHandler{
		payoutSvc:     payoutSvc,
		conversionSvc: conversionSvc,
		payoutRepo:    payoutRepo,
		ledgerRepo:    ledgerRepo,
	}
}

// Run triggers one payout batch and reports who got paid.
func (h *PayoutHandler) Run(c *gin.Context) {
	result, err := h.payoutSvc.Run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"paid_count": result.PaidCount,
		"recipients": result.Recipients,
	})
}

// UserRewards lists payouts for an end-user.
func (h *PayoutHandler) UserRewards(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	payouts, err := h.payoutRepo.ListByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts, "count": len(payouts)})
}

// Ledger is an admin listing of recent ledger entries.
func (h *PayoutHandler) Ledger(c *gin.Context) {
	limit := 200
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	entries, err := h.ledgerRepo.List(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ledger": entries, "count": len(entries)})
}

// RejectEntry applies an external rejection (return/cancellation) to a
// queued ledger entry.
func (h *PayoutHandler) RejectEntry(c *gin.Context) {
	if err := h.conversionSvc.Reject(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "rejected"})
}
