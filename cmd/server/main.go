package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-service/internal/config"
	"github.com/iliyamo/railway-ticket-service/internal/database"
	"github.com/iliyamo/railway-ticket-service/internal/handler"
	"github.com/iliyamo/railway-ticket-service/internal/middleware"
	"github.com/iliyamo/railway-ticket-service/internal/queue"
	"github.com/iliyamo/railway-ticket-service/internal/repository"
	"github.com/iliyamo/railway-ticket-service/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// Redis backs the response cache and the rate limiter. Both
	// middlewares degrade to pass-through when the client is nil.
	rdb := config.NewRedisClient()
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Repositories.
	stations := repository.NewStationRepo(db)
	routes := repository.NewRouteRepo(db)
	trainTypes := repository.NewTrainTypeRepo(db)
	trains := repository.NewTrainRepo(db)
	crew := repository.NewCrewRepo(db)
	journeys := repository.NewJourneyRepo(db)
	orders := repository.NewOrderRepo(db, journeys)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Handlers.
	authH := handler.NewAuthHandler(cfg, users, tokens)
	publicH := handler.NewPublicHandler(stations, routes, trainTypes, trains, crew, journeys)
	adminH := handler.NewAdminHandler(stations, routes, trainTypes, trains, crew, journeys)
	orderH := handler.NewOrderHandler(orders)

	e := echo.New()
	e.Use(limitMW)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, cacheMW)
	router.RegisterCustomer(e, orderH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	// Background consumer that appends confirmed orders to
	// logs/orders.log. It reconnects on its own and never stops the
	// server.
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
