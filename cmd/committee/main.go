package main

import (
	"log"
	"os"

	"github.com/ArowuTest/committee-manager/internal/config"
	"github.com/ArowuTest/committee-manager/internal/console"
	"github.com/ArowuTest/committee-manager/internal/services"
	"github.com/ArowuTest/committee-manager/pkg/random"
	"golang.org/x/exp/slog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// stdout belongs to the menu
	config.SetupLogger(cfg, os.Stderr)

	committee := services.NewCommitteeService(cfg.Committee.Name, cfg.Committee.UnitPrice, random.FromSeed(cfg.Committee.Seed))

	// a read failure ends the session like Exit does
	if err := console.NewMenu(committee, os.Stdin, os.Stdout).Run(); err != nil {
		slog.Error("Failed to read input", "error", err)
	}
}
