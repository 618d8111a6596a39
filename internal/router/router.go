package router

import (
	"net/http"
	"time"

	"hissaback/config"
	"hissaback/internal/handler"
	"hissaback/internal/middleware"
	"hissaback/internal/repository"
	"hissaback/internal/service"
	"hissaback/pkg/network"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps bundles the wired services the entrypoint also needs (cron runner).
type Deps struct {
	Engine    *gin.Engine
	PayoutSvc *service.PayoutService
}

func Setup(cfg *config.Config, db *gorm.DB, source network.CampaignSource, notifier service.Notifier) *Deps {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewSlidingWindowLimiter(100, 60*time.Second)))

	// Repositories
	tenantRepo := repository.NewTenantRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	clickRepo := repository.NewClickRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Services
	otpSvc := service.NewOTPService(otpRepo, notifier, cfg.OTP.Expiry)
	authSvc := service.NewAuthService(cfg, tenantRepo, otpSvc)
	catalogueSvc := service.NewCatalogueService(offerRepo, source, cfg.Commission.DefaultCoolOffDays)
	campaignSvc := service.NewCampaignService(tenantRepo, campaignRepo, offerRepo, linkRepo, cfg.Links.PublicBaseURL)
	attributionSvc := service.NewAttributionService(clickRepo, linkRepo, campaignRepo, offerRepo)
	conversionSvc := service.NewConversionService(attributionSvc, offerRepo, ledgerRepo)
	payoutSvc := service.NewPayoutService(ledgerRepo, payoutRepo, settingRepo, notifier, cfg.Payout.MinAmount, cfg.Payout.Method)

	// Handlers
	creatorHandler := handler.NewCreatorHandler(authSvc, tenantRepo, campaignRepo, linkRepo, clickRepo, ledgerRepo, payoutRepo, auditRepo)
	catalogueHandler := handler.NewCatalogueHandler(catalogueSvc)
	campaignHandler := handler.NewCampaignHandler(campaignSvc, campaignRepo, linkRepo)
	clickHandler := handler.NewClickHandler(linkRepo, offerRepo, clickRepo, otpSvc)
	webhookHandler := handler.NewConversionWebhookHandler(conversionSvc, auditRepo, cfg)
	payoutHandler := handler.NewPayoutHandler(payoutSvc, conversionSvc, payoutRepo, ledgerRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/go/:slug", clickHandler.Redirect)

	api := r.Group("/v1")
	{
		api.POST("/creators/signup", creatorHandler.Signup)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/creator/login", creatorHandler.Login)
			authGroup.POST("/creator/otp/request", creatorHandler.LoginOTPRequest)
			authGroup.POST("/creator/otp/verify", creatorHandler.LoginOTPVerify)
			authGroup.POST("/refresh", creatorHandler.Refresh)
			authGroup.POST("/enduser/otp/request", clickHandler.OTPRequest)
			authGroup.POST("/enduser/otp/verify", clickHandler.OTPVerify)
		}

		api.GET("/offers", catalogueHandler.ListOffers)
		api.GET("/categories", catalogueHandler.Categories)
		api.GET("/brands", catalogueHandler.Advertisers)
		api.POST("/sync/offers", catalogueHandler.Sync)

		creator := api.Group("/creator")
		creator.Use(authMw)
		{
			creator.GET("/profile", creatorHandler.GetProfile)
			creator.PUT("/profile", creatorHandler.UpdateProfile)
			creator.GET("/stats", creatorHandler.Stats)
			creator.GET("/campaigns", creatorHandler.Campaigns)
			creator.GET("/payouts", creatorHandler.Payouts)
			creator.GET("/analytics", creatorHandler.Analytics)
		}

		api.POST("/campaigns", authMw, campaignHandler.Create)
		api.GET("/campaigns", authMw, campaignHandler.List)
		api.POST("/links", authMw, campaignHandler.CreateLink)
		api.GET("/links", authMw, campaignHandler.ListLinks)

		api.POST("/events/click", clickHandler.Track)
		api.POST("/events/conversion", webhookHandler.Handle)

		api.GET("/ledger", payoutHandler.Ledger)
		api.POST("/ledger/:id/reject", payoutHandler.RejectEntry)
		api.POST("/rewards/payout/run", payoutHandler.Run)
		api.GET("/rewards/user", payoutHandler.UserRewards)
	}

	return &Deps{Engine: r, PayoutSvc: payoutSvc}
}
