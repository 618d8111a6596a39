package handler

import (
	"fmt"
	"net/http"

	"hissaback/internal/domain"
	"hissaback/internal/models"
	"hissaback/internal/repository"
	"hissaback/internal/service"

	"github.com/gin-gonic/gin"
)

type ClickHandler struct {
	linkRepo  *repository.LinkRepository
	offerRepo *repository.OfferRepository
	clickRepo *repository.ClickRepository
	otpSvc    *service.OTPService
}

func NewClickHandler(
	linkRepo *repository.LinkRepository,
	offerRepo *repository.OfferRepository,
	clickRepo *repository.ClickRepository,
	otpSvc *service.OTPService,
) *ClickHandler {
	return &ClickHandler{
		linkRepo:  linkRepo,
		offerRepo: offerRepo,
		clickRepo: clickRepo,
		otpSvc:    otpSvc,
	}
}

func (h *ClickHandler) merchantURL(offer *models.Offer, clickID string) string {
	base := offer.PreviewURL
	if base == "" {
		base = "https://" + offer.AdvertiserID + ".example.com"
	}
	return fmt.Sprintf("%s?utm_source=hissaback&click_id=%s", base, clickID)
}

// Redirect is the smart-link entry point: records the click and sends the
// visitor on to the merchant with tracking params attached.
func (h *ClickHandler) Redirect(c *gin.Context) {
	link, err := h.linkRepo.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	offer, err := h.offerRepo.GetByID(link.OfferID)
	if err != nil {
		respondError(c, err)
		return
	}
	click := &models.Click{
		ID:        models.NewID("click"),
		LinkID:    link.ID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}
	if err := h.clickRepo.Create(click); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.merchantURL(offer, click.ID))
}

// Track records a click explicitly (API partners without the redirect).
func (h *ClickHandler) Track(c *gin.Context) {
	var req struct {
		LinkID string `json:"link_id" binding:"required"`
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link, err := h.linkRepo.GetByID(req.LinkID)
	if err != nil {
		respondError(c, err)
		return
	}
	click := &models.Click{
		ID:        models.NewID("click"),
		LinkID:    link.ID,
		UserID:    req.UserID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.clickRepo.Create(click); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"click_id":  click.ID,
		"link_id":   click.LinkID,
		"user_id":   click.UserID,
		"timestamp": click.CreatedAt,
	})
}

// OTPRequest sends a verification code to an end-user for a given link.
func (h *ClickHandler) OTPRequest(c *gin.Context) {
	var req struct {
		Phone  string `json:"phone" binding:"required"`
		LinkID string `json:"link_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.linkRepo.GetByID(req.LinkID); err != nil {
		respondError(c, err)
		return
	}
	otp, err := h.otpSvc.Request(c.Request.Context(), req.Phone, req.LinkID, domain.OTPPurposeEndUser)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request_id": otp.ID, "message": "OTP sent successfully"})
}

// OTPVerify checks the code and returns the merchant redirect URL.
func (h *ClickHandler) OTPVerify(c *gin.Context) {
	var req struct {
		RequestID string `json:"request_id" binding:"required"`
		Code      string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	otp, err := h.otpSvc.Verify(req.RequestID, req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link, err := h.linkRepo.GetByID(otp.LinkID)
	if err != nil {
		respondError(c, err)
		return
	}
	offer, err := h.offerRepo.GetByID(link.OfferID)
	if err != nil {
		respondError(c, err)
		return
	}
	// the verified phone becomes the user identity on the click
	click := &models.Click{
		ID:        models.NewID("click"),
		LinkID:    link.ID,
		UserID:    otp.Phone,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.clickRepo.Create(click); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"verified":     true,
		"click_id":     click.ID,
		"merchant_url": h.merchantURL(offer, click.ID),
	})
}
