package handler

import (
	"errors"
	"net/http"
	"time"

	"hissaback/internal/middleware"
	"hissaback/internal/models"
	"hissaback/internal/repository"
	"hissaback/internal/service"

	"github.com/gin-gonic/gin"
)

type CreatorHandler struct {
	authSvc      *service.AuthService
	tenantRepo   *repository.TenantRepository
	campaignRepo *repository.CampaignRepository
	linkRepo     *repository.LinkRepository
	clickRepo    *repository.ClickRepository
	ledgerRepo   *repository.LedgerRepository
	payoutRepo   *repository.PayoutRepository
	auditRepo    *repository.AuditLogRepository
}

func NewCreatorHandler(
	authSvc *service.AuthService,
	tenantRepo *repository.TenantRepository,
	campaignRepo *repository.CampaignRepository,
	linkRepo *repository.LinkRepository,
	clickRepo *repository.ClickRepository,
	ledgerRepo *repository.LedgerRepository,
	payoutRepo *repository.PayoutRepository,
	auditRepo *repository.AuditLogRepository,
) *CreatorHandler {
	return &CreatorHandler{
		authSvc:      authSvc,
		tenantRepo:   tenantRepo,
		campaignRepo: campaignRepo,
		linkRepo:     linkRepo,
		clickRepo:    clickRepo,
		ledgerRepo:   ledgerRepo,
		payoutRepo:   payoutRepo,
		auditRepo:    auditRepo,
	}
}

// Signup onboards a creator and returns the new tenant.
func (h *CreatorHandler) Signup(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone" binding:"required"`
		BrandName string `json:"brand_name"`
		Password  string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenant, err := h.authSvc.Signup(req.Name, req.Email, req.Phone, req.BrandName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrPhoneExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	h.audit(c, tenant.ID, "creator_signup", "tenant", tenant.ID)
	c.JSON(http.StatusCreated, gin.H{
		"tenant_id":         tenant.ID,
		"name":              tenant.Name,
		"publisher_id":      tenant.PublisherID,
		"default_share_pct": tenant.DefaultSharePct,
		"api_key":           tenant.APIKey,
	})
}

func (h *CreatorHandler) Login(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenant, access, refresh, err := h.authSvc.Login(req.Phone, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid phone or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tenant_id":     tenant.ID,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// LoginOTPRequest starts a phone-code login.
func (h *CreatorHandler) LoginOTPRequest(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	otp, err := h.authSvc.RequestLoginOTP(c.Request.Context(), req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request_id": otp.ID, "message": "OTP sent"})
}

func (h *CreatorHandler) LoginOTPVerify(c *gin.Context) {
	var req struct {
		RequestID string `json:"request_id" binding:"required"`
		Code      string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenant, access, refresh, err := h.authSvc.VerifyLoginOTP(req.RequestID, req.Code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tenant_id":     tenant.ID,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *CreatorHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	access, refresh, err := h.authSvc.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": access, "refresh_token": refresh})
}

func (h *CreatorHandler) GetProfile(c *gin.Context) {
	tenant, err := h.tenantRepo.GetByID(middleware.GetTenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (h *CreatorHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		DisplayName *string `json:"display_name"`
		Phone       *string `json:"phone"`
		Email       *string `json:"email"`
		ThemeHex    *string `json:"theme_hex"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenant, err := h.tenantRepo.GetByID(middleware.GetTenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if req.DisplayName != nil {
		tenant.BrandName = *req.DisplayName
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.ThemeHex != nil {
		tenant.ThemeColor = *req.ThemeHex
	}
	if err := h.tenantRepo.Update(tenant); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// Stats returns today's clicks/conversions and the pending creator amount.
func (h *CreatorHandler) Stats(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	clicks, err := h.clickRepo.CountForTenantSince(tenantID, midnight)
	if err != nil {
		respondError(c, err)
		return
	}
	conversions, err := h.ledgerRepo.CountForTenantSince(tenantID, midnight)
	if err != nil {
		respondError(c, err)
		return
	}
	pending, err := h.ledgerRepo.PendingCreatorAmount(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clicks_today":      clicks,
		"conversions_today": conversions,
		"pending_payout":    pending,
		"period":            "today",
	})
}

// Campaigns lists the tenant's campaigns with per-campaign click and
// conversion counts.
func (h *CreatorHandler) Campaigns(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	campaigns, err := h.campaignRepo.ListByTenant(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	entries, err := h.ledgerRepo.ListByTenant(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	convByCampaign := make(map[string]int)
	for _, e := range entries {
		convByCampaign[e.CampaignID]++
	}
	out := make([]gin.H, 0, len(campaigns))
	for _, camp := range campaigns {
		links, err := h.linkRepo.ListByCampaign(camp.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		var clicks int64
		for _, l := range links {
			n, err := h.clickRepo.CountByLink(l.ID)
			if err != nil {
				respondError(c, err)
				return
			}
			clicks += n
		}
		out = append(out, gin.H{
			"campaign_id":       camp.ID,
			"name":              camp.Name,
			"status":            camp.Status,
			"created_at":        camp.CreatedAt,
			"share_pct":         camp.SharePct,
			"total_clicks":      clicks,
			"total_conversions": convByCampaign[camp.ID],
		})
	}
	c.JSON(http.StatusOK, out)
}

// Payouts lists payouts that settled entries from the tenant's campaigns.
func (h *CreatorHandler) Payouts(c *gin.Context) {
	payouts, err := h.payoutRepo.ListForTenant(middleware.GetTenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payouts)
}

// Analytics summarizes the tenant's funnel from real click and ledger rows.
func (h *CreatorHandler) Analytics(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	var start time.Time
	period := c.DefaultQuery("period", "30d")
	switch period {
	case "7d":
		start = time.Now().UTC().AddDate(0, 0, -7)
	case "30d":
		start = time.Now().UTC().AddDate(0, 0, -30)
	default:
		period = "all"
	}
	clicks, err := h.clickRepo.CountForTenantSince(tenantID, start)
	if err != nil {
		respondError(c, err)
		return
	}
	conversions, err := h.ledgerRepo.CountForTenantSince(tenantID, start)
	if err != nil {
		respondError(c, err)
		return
	}
	earned, shared, err := h.ledgerRepo.TenantTotals(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clicks":      clicks,
		"conversions": conversions,
		"earnings":    earned,
		"shared":      shared,
		"period":      period,
	})
}

func (h *CreatorHandler) audit(c *gin.Context, tenantID, action, resource, resourceID string) {
	if h.auditRepo == nil {
		return
	}
	_ = h.auditRepo.Create(&models.AuditLog{
		TenantID:   tenantID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
}
