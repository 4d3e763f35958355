package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"sales-assistant-bot/internal/bootstrap"
	"sales-assistant-bot/internal/config"
	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/internal/server"
	"sales-assistant-bot/internal/tracer"
	"sales-assistant-bot/pkg/database"

	"gorm.io/gorm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()

	// Console chat and console logs would interleave.
	sysLogger := logger.NewZapLogger(
		cfg.App.LogFilePath,
		cfg.App.Environment == "production",
		cfg.Bot.Channel != bootstrap.ChannelConsole,
	)
	defer func() { _ = sysLogger.Sync() }()

	// 2. Tracing
	shutdownTracer := tracer.InitTracer("sales-assistant-bot", sysLogger)
	defer func() { _ = shutdownTracer(context.Background()) }()

	// 3. Catalog database (optional)
	var db *gorm.DB
	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		Log:      sysLogger,
	})
	if err != nil {
		sysLogger.Warn("Main", "Unable to connect to catalog database", map[string]interface{}{"error": err.Error()})
	} else {
		db = gormDB
		sysLogger.Info("Main", "Connected to catalog database", map[string]interface{}{"host": cfg.Database.Host})
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, db, cfg, sysLogger)
	if err != nil {
		log.Fatalf("Failed to bootstrap: %v", err)
	}
	defer container.Close()

	// 5. Start Background Services
	if container.WebSocketHub != nil {
		go container.WebSocketHub.Run(ctx)
	}
	if container.EventAuditService != nil {
		_ = container.EventAuditService.Start(ctx)
	}

	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			sysLogger.Error("Main", "HTTP server stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	if container.Console != nil {
		container.Console.Start(ctx)
	}

	// 6. Run the bot until interrupted
	if err := container.BotService.Run(ctx); err != nil {
		sysLogger.Error("Main", "Bot loop failed", map[string]interface{}{"error": err.Error()})
	}

	if err := srv.Shutdown(); err != nil {
		sysLogger.Warn("Main", "HTTP server shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	sysLogger.Info("Main", "Bot stopped", nil)
}
