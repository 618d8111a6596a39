package handler

import (
	"net/http"
	"strconv"

	"hissaback/internal/repository"
	"hissaback/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogueHandler struct {
	catalogueSvc *service.CatalogueService
}

func NewCatalogueHandler(catalogueSvc *service.CatalogueService) *CatalogueHandler {
	return &CatalogueHandler{catalogueSvc: catalogueSvc}
}

// ListOffers returns active offers for campaign creation. Filters compose:
// category, brand, free-text q, min_commission, and a result cap.
func (h *CatalogueHandler) ListOffers(c *gin.Context) {
	filters := repository.OfferFilters{
		ActiveOnly:     true,
		APIExposedOnly: true,
		Category:       c.Query("category"),
		AdvertiserID:   c.Query("brand_id"),
		Query:          c.Query("q"),
		Limit:          50,
	}
	if v := c.Query("min_commission"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_commission"})
			return
		}
		filters.MinCommission = f
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filters.Limit = n
	}
	offers, err := h.catalogueSvc.ListOffers(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// Sync triggers a catalogue pull from the advertiser network.
func (h *CatalogueHandler) Sync(c *gin.Context) {
	stats, err := h.catalogueSvc.SyncOffers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalogue sync failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"offers_processed": stats.Processed,
		"added":            stats.Added,
		"updated":          stats.Updated,
	})
}

func (h *CatalogueHandler) Categories(c *gin.Context) {
	cats, err := h.catalogueSvc.Categories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *CatalogueHandler) Advertisers(c *gin.Context) {
	brands, err := h.catalogueSvc.Advertisers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "advertiser fetch failed"})
		return
	}
	c.JSON(http.StatusOK, brands)
}
