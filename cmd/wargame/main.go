package main

import (
	"os"
	"time"

	"github.com/sm48337/wargame/internal/api"
	"github.com/sm48337/wargame/internal/config"
	"github.com/sm48337/wargame/internal/constants"
	"github.com/sm48337/wargame/internal/engine"
	"github.com/sm48337/wargame/internal/logging"
	"github.com/sm48337/wargame/internal/service"
	"github.com/sm48337/wargame/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load the roster configuration file (required). Path may be provided
	// via WARGAME_CONFIG or defaults to ./wargame_config.json in the
	// current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid wargame configuration", err, logging.Fields{"config_path": configPath, "hint": "create a wargame_config.json with 'teams.red' and 'teams.blue' entity arrays (id,name,role,connections,attacks,resource,vitality) and optional server.address"})
	}

	// Allow the DB path to be configured via WARGAME_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	rng := engine.DefaultRNG
	handler := api.NewGameHandler(repo, cfg, rng)

	// Background scanner: periodically force resolution for games whose
	// round clock expired with players still absent. Board reads trigger
	// the same check, so the scanner only covers games nobody is watching.
	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			games, err := repo.FindRunningGames()
			if err != nil {
				logging.Error("timeout scanner failed", err, nil)
				continue
			}
			for _, g := range games {
				if _, err := service.CheckTimeout(repo, g.JoinCode, rng, now); err != nil && err != service.ErrGameNotFound {
					logging.Error("failed to expire round", err, logging.Fields{constants.LogFieldGameCode: g.JoinCode})
				}
			}
		}
	}()

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.POST(constants.RouteGames, handler.CreateGame)
		apiRoutes.GET(constants.RouteGames, handler.ListGames)
		apiRoutes.GET(constants.RouteGameByCode, handler.GetGame)
		apiRoutes.POST(constants.RouteGameTurn, handler.SubmitTurn)
		apiRoutes.POST(constants.RouteGamePause, handler.TogglePause)
		apiRoutes.GET(constants.RouteGameLog, handler.GetLog)
	}

	// Start server on configured address
	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
