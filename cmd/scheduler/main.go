package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"CoBag/config"
	"CoBag/internal/schedule"
	"CoBag/pkg/logger"
	"CoBag/pkg/snowflake"
	"CoBag/storage"
)

func main() {
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Logger.Info("Scheduler received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage for scheduler", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake for scheduler", zap.Error(err))
	}

	logger.Logger.Info("Scheduler service starting",
		zap.String("service", "cobag-scheduler"),
		zap.String("environment", config.Cfg.Environment),
	)

	go runListingExpiryLoop(ctx)
	go runStaleProposalLoop(ctx)

	<-ctx.Done()

	logger.Logger.Info("Scheduler service shutting down gracefully")
}

// runListingExpiryLoop 周期性关闭过期挂牌
func runListingExpiryLoop(ctx context.Context) {
	s := schedule.GetListingScheduler()

	interval := time.Duration(config.Cfg.ListingExpirySweepMinutes) * time.Minute
	if config.Cfg.Environment == "development" {
		interval = 1 * time.Minute
		logger.Logger.Info("Listing expiry loop running in development mode with 1m interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			if err := s.SweepExpiredListings(runCtx); err != nil {
				logger.Logger.Error("Listing expiry sweep run failed", zap.Error(err))
			}
			cancel()
		}
	}
}

// runStaleProposalLoop 延迟消息路径的兜底，每小时扫一次长时间未响应的提案
func runStaleProposalLoop(ctx context.Context) {
	s := schedule.GetMatchScheduler()

	interval := 1 * time.Hour
	if config.Cfg.Environment == "development" {
		interval = 1 * time.Minute
		logger.Logger.Info("Stale proposal loop running in development mode with 1m interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			if err := s.RemindStaleProposals(runCtx); err != nil {
				logger.Logger.Error("Stale proposal reminder run failed", zap.Error(err))
			}
			cancel()
		}
	}
}
