package main

import (
	"context"
	"database/sql"
	"net/http"

	"profit_engine/calculator/internal/auth"
	"profit_engine/calculator/internal/config"
	"profit_engine/calculator/internal/handlers"
	"profit_engine/calculator/internal/store"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// ---------------------------------------------------------
	// 1. CONFIGURATION
	// ---------------------------------------------------------
	if err := godotenv.Load("calculator/.env"); err != nil {
		// It's okay if .env doesn't exist, we might be using system env vars
		log.Info().Msg("no calculator/.env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if !cfg.Environment.IsProduction() {
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	}

	if err := auth.InitJWTKey(); err != nil {
		log.Fatal().Err(err).Msg("failed to load JWT secret")
	}

	// ---------------------------------------------------------
	// 2. DATABASE CONNECTION
	// ---------------------------------------------------------
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open DB driver")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	if err := store.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}
	log.Info().Msg("connected to calculator database")

	// ---------------------------------------------------------
	// 3. SESSION STORE (Redis)
	// ---------------------------------------------------------
	sessions := store.NewSessionStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := sessions.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis session store")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis session store")

	// ---------------------------------------------------------
	// 4. INITIALIZE STORES
	// ---------------------------------------------------------
	accountStore := store.NewAccountStore(db)
	productStore := store.NewProductStore(db)

	// ---------------------------------------------------------
	// 5. SETUP ROUTER
	// ---------------------------------------------------------
	mux := handlers.NewRouter(accountStore, productStore, sessions)

	// ---------------------------------------------------------
	// 6. START SERVER
	// ---------------------------------------------------------
	log.Info().Str("port", cfg.Port).Msg("profit engine running")
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Fatal().Err(err).Msg("server crashed")
	}
}
