// Command api runs the storefront backend HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gsvlabs/storefront-backend/internal/config"
	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/server"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// version is set at build time with -ldflags.
var version = "dev"

func main() {
	var (
		configPath  = flag.String("config", defaultConfigPath(), "path to the YAML config file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	utils.InitLogger(os.Getenv(constants.EnvAppEnv), os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	utils.InitLogger(cfg.App.Environment, cfg.Logging.Level)

	srv := server.New(cfg, version)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server exited with error")
	}
}

func defaultConfigPath() string {
	if path := os.Getenv(constants.EnvConfigPath); path != "" {
		return path
	}
	return "config.yaml"
}
