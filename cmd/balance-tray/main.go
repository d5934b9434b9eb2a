package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/soundbal/balance-tray/internal/balance"
	"github.com/soundbal/balance-tray/internal/config"
	"github.com/soundbal/balance-tray/internal/endpoint"
	"github.com/soundbal/balance-tray/internal/logging"
	"github.com/soundbal/balance-tray/internal/tray"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func main() {
	// Load config from XDG/Library/AppData
	cfg, err := config.Load()
	if err != nil {
		// Use default logger if config fails to load
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize logger with configured level
	log := logging.NewWithLevel(cfg.LogLevel)

	// Bind to the platform audio subsystem
	sys, err := endpoint.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize audio endpoint")
	}
	defer sys.Close()

	// Acquire the default output device
	controller, err := balance.New(sys, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to acquire output device")
	}
	defer controller.Close()
	controller.Set8DCap(cfg.Oscillator.CapPercent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	trayUI := tray.New(controller, cfg, Version, Commit, log)

	log.Info().Str("device", controller.InterfaceName()).Msg("BalanceTray starting...")

	// Setup shutdown signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Shutting down...")
		controller.Stop8D()
		os.Exit(0)
	}()

	// Start tray UI - MUST run on main thread
	if err := trayUI.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Tray error")
	}
}
