package handler

import (
	"net/http"

	"hissaback/internal/middleware"
	"hissaback/internal/repository"
	"hissaback/internal/service"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignSvc  *service.CampaignService
	campaignRepo *repository.CampaignRepository
	linkRepo     *repository.LinkRepository
}

func NewCampaignHandler(
	campaignSvc *service.CampaignService,
	campaignRepo *repository.CampaignRepository,
	linkRepo *repository.LinkRepository,
) *CampaignHandler {
	return &CampaignHandler{
		campaignSvc:  campaignSvc,
		campaignRepo: campaignRepo,
		linkRepo:     linkRepo,
	}
}

// Create makes a campaign for the authenticated tenant. share_pct is
// optional; the tenant default applies when omitted.
func (h *CampaignHandler) Create(c *gin.Context) {
	var req struct {
		Name     string   `json:"name" binding:"required"`
		SharePct *float64 `json:"share_pct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	campaign, err := h.campaignSvc.CreateCampaign(middleware.GetTenantID(c), req.Name, req.SharePct)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

// CreateLink mints a smart link binding one campaign to one offer.
func (h *CampaignHandler) CreateLink(c *gin.Context) {
	var req struct {
		CampaignID string `json:"campaign_id" binding:"required"`
		OfferID    string `json:"offer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// the campaign must belong to the caller
	campaign, err := h.campaignRepo.GetByID(req.CampaignID)
	if err != nil {
		respondError(c, err)
		return
	}
	if campaign.TenantID != middleware.GetTenantID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "campaign belongs to another tenant"})
		return
	}
	link, err := h.campaignSvc.GenerateSmartLink(req.CampaignID, req.OfferID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// List returns the authenticated tenant's campaigns.
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.campaignRepo.ListByTenant(middleware.GetTenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "count": len(campaigns)})
}

// ListLinks returns the authenticated tenant's smart links.
func (h *CampaignHandler) ListLinks(c *gin.Context) {
	links, err := h.linkRepo.ListByTenant(middleware.GetTenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links, "count": len(links)})
}
