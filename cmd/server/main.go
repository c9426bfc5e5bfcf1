// Package main is the entry point for the console server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bbernstein/console-core/internal/config"
	"github.com/bbernstein/console-core/internal/engine"
	"github.com/bbernstein/console-core/internal/fixturelib"
	"github.com/bbernstein/console-core/internal/httpapi"
	"github.com/bbernstein/console-core/internal/pubsub"
	"github.com/bbernstein/console-core/internal/showfile"
	"github.com/bbernstein/console-core/internal/transport"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const settingArtNetBroadcastAddress = "artnet_broadcast_address"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	printBanner(cfg)

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open showfile database: %v", err)
	}

	store := showfile.New(db)
	log.Println("Running showfile migrations...")
	if err := store.AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate showfile schema: %v", err)
	}

	library := fixturelib.NewLibrary(store)
	if err := library.Load(); err != nil {
		log.Fatalf("Failed to load fixture type library: %v", err)
	}

	ctx := context.Background()
	sh, err := store.Load(ctx, library)
	if err != nil {
		log.Fatalf("Failed to load showfile: %v", err)
	}

	pub := pubsub.New()
	eng := engine.New(pub, time.Second)

	engineCtx, cancelEngine := context.WithCancel(context.Background())
	engineDone := make(chan struct{})
	go func() {
		defer close(engineDone)
		eng.Run(engineCtx, sh, library)
	}()

	sender := transport.NewArtNetSender(transport.Config{
		Enabled:          cfg.ArtNetEnabled,
		BroadcastAddr:    cfg.ArtNetBroadcast,
		Port:             cfg.ArtNetPort,
		IdleRateHz:       float64(cfg.DMXIdleRateHz),
		HighRateHz:       float64(cfg.DMXHighRateHz),
		HighRateDuration: cfg.DMXHighRateDuration,
	})
	if err := sender.Start(); err != nil {
		log.Printf("Warning: Art-Net sender failed to start: %v", err)
	}
	if addr, ok := store.Setting(ctx, settingArtNetBroadcastAddress); ok && addr != "" {
		log.Printf("Loading saved Art-Net broadcast address: %s", addr)
		if err := sender.ReloadBroadcastAddress(addr); err != nil {
			log.Printf("Warning: failed to load saved broadcast address: %v", err)
		}
	}
	dmxEvents := pub.Subscribe(pubsub.TopicDMXOutput, nil, 4)
	go func() {
		for msg := range dmxEvents.Channel {
			if mv, ok := msg.(*dmx.Multiverse); ok {
				sender.Publish(mv)
			}
		}
	}()

	router := httpapi.NewRouter(eng, pub, httpapi.Options{
		CORSOrigin:     cfg.CORSOrigin,
		RequestTimeout: 60 * time.Second,
		Development:    cfg.IsDevelopment(),
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost:%s\n", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	sender.Stop()

	snapshot, err := eng.Snapshot(context.Background())
	if err != nil {
		log.Printf("Warning: could not snapshot show for final save: %v", err)
	} else if err := store.Save(context.Background(), snapshot); err != nil {
		log.Printf("Warning: failed to save showfile on shutdown: %v", err)
	}

	cancelEngine()
	<-engineDone

	log.Println("Server stopped")
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}
	return gorm.Open(sqlite.Open(cfg.ShowfilePath), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
}

// printBanner prints the startup banner.
func printBanner(cfg *config.Config) {
	fmt.Println("============================================")
	fmt.Println("  Console Core Server")
	fmt.Printf("  Version: %s\n", Version)
	fmt.Printf("  Build:   %s\n", BuildTime)
	fmt.Printf("  Commit:  %s\n", GitCommit)
	fmt.Println("============================================")
	fmt.Printf("  Environment: %s\n", cfg.Env)
	fmt.Printf("  Port:        %s\n", cfg.Port)
	fmt.Printf("  Database:    %s\n", cfg.ShowfilePath)
	fmt.Printf("  Art-Net:     %v\n", cfg.ArtNetEnabled)
	fmt.Println("============================================")
}
