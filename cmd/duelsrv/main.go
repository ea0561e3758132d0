package main

import (
	"os"

	"github.com/cyal-dev3/cyalbot-sub000/internal/api"
	"github.com/cyal-dev3/cyalbot-sub000/internal/config"
	"github.com/cyal-dev3/cyalbot-sub000/internal/constants"
	"github.com/cyal-dev3/cyalbot-sub000/internal/logging"
	"github.com/cyal-dev3/cyalbot-sub000/internal/notify"
	"github.com/cyal-dev3/cyalbot-sub000/internal/service"
	"github.com/cyal-dev3/cyalbot-sub000/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./duel_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid duel configuration", err, logging.Fields{"config_path": configPath, "hint": "create a duel_config.json with a 'class_list' array of classes and their skills (id,name,emoji,mana_cost,stamina_cost,damage_multiplier) and optional keys: server.address, turn_timeout_seconds, challenge_window_seconds, eligibility_health_floor, player_list"})
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/duels.db"
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.SeedPlayers)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	svc := service.NewDuelService(repo, notify.NewLogSink(), cfg.Classes, service.Tunables{
		TurnTimeout:      cfg.TurnTimeout,
		ChallengeWindow:  cfg.ChallengeWindow,
		EligibilityFloor: cfg.EligibilityFloor,
	})
	handler := api.NewDuelHandler(svc, repo)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteChallenge, handler.Challenge)
		apiRoutes.POST(constants.RouteAccept, handler.Accept)
		apiRoutes.POST(constants.RouteReject, handler.Reject)
		apiRoutes.POST(constants.RouteAction, handler.Action)
		apiRoutes.GET(constants.RouteDuel, handler.GetDuel)
		apiRoutes.GET(constants.RoutePlayerByID, handler.GetPlayer)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
