package main

import (
	"os"

	"github.com/soundbal/balance-tray/internal/balance"
	"github.com/soundbal/balance-tray/internal/config"
	"github.com/soundbal/balance-tray/internal/endpoint"
	"github.com/soundbal/balance-tray/internal/logging"
	"github.com/soundbal/balance-tray/internal/repl"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logging.NewWithLevel(cfg.LogLevel)

	sys, err := endpoint.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize audio endpoint")
	}
	defer sys.Close()

	controller, err := balance.New(sys, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to acquire output device")
	}
	defer controller.Close()

	if err := repl.Run(controller, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("REPL error")
	}
}
