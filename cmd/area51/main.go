package main

import (
	"os"
	"path/filepath"
	"strings"

	"area51/internal/config"
	"area51/internal/game"
	"area51/internal/logging"
)

func main() {
	chdirErr := chdirToExecutable()

	cfg, err := config.Load(".")
	if err != nil {
		logging.Setup("info", os.Stderr)
		logging.Logger.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.LogLevel, os.Stderr)
	if chdirErr != nil {
		logging.Logger.Warn().Err(chdirErr).Msg("staying in the current directory for config and assets")
	}

	g, err := game.New(cfg)
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("start game")
	}
	g.Run()
}

// chdirToExecutable moves to the executable's directory for deployed builds.
// "go run" binaries live in a go-build temp directory and are left alone.
func chdirToExecutable() error {
	execPath, err := os.Executable()
	if err != nil {
		return err
	}
	execDir := filepath.Dir(execPath)
	if strings.Contains(execDir, "go-build") {
		return nil
	}
	return os.Chdir(execDir)
}
