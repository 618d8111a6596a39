package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"hissaback/config"
	"hissaback/internal/database"
	"hissaback/internal/domain"
	"hissaback/internal/repository"
	"hissaback/internal/router"
	"hissaback/internal/service"
	"hissaback/pkg/network"

	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	settingRepo := repository.NewSettingRepository(db)
	if err := settingRepo.SeedDefaults(map[string]string{
		domain.SettingMinPayoutAmount: strconv.FormatFloat(cfg.Payout.MinAmount, 'f', -1, 64),
		domain.SettingDefaultSharePct: strconv.FormatFloat(cfg.Commission.DefaultSharePct, 'f', -1, 64),
	}); err != nil {
		log.Printf("settings seed: %v", err)
	}

	source := network.NewTrackierClient(cfg.Network.BaseURL, cfg.Network.APIKey)
	deps := router.Setup(cfg, db, source, service.LogNotifier{})

	// Scheduled payout batching; the HTTP trigger stays available either way.
	var sched *cron.Cron
	if cfg.Payout.Schedule != "" {
		sched = cron.New()
		_, err := sched.AddFunc(cfg.Payout.Schedule, func() {
			res, err := deps.PayoutSvc.Run(context.Background())
			if err != nil {
				log.Printf("[payout] scheduled run failed: %v", err)
				return
			}
			if res.PaidCount > 0 {
				log.Printf("[payout] scheduled run paid %d recipients", res.PaidCount)
			}
		})
		if err != nil {
			log.Fatalf("payout schedule %q: %v", cfg.Payout.Schedule, err)
		}
		sched.Start()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      deps.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	if sched != nil {
		sched.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}
