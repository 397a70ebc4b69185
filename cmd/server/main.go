package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"loading-analysis-service/internal/adapters/refdata"
	"loading-analysis-service/internal/api"
	"loading-analysis-service/internal/units"
)

// main is the application composition root. It loads the conversion factor
// matrix and the vehicle reference catalog, then starts the HTTP server the
// presentation layer talks to.
func main() {
	setupLogging()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	unitTablePath := getEnv("UNIT_TABLE_PATH", "data/unit_conversion.csv")
	refdataPath := os.Getenv("REFDATA_PATH") // optional YAML override

	converter, err := loadConverter(unitTablePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load unit conversion table")
	}

	catalog, err := loadCatalog(refdataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load vehicle reference data")
	}

	router := api.NewRouter(catalog, converter)

	log.Info().Str("addr", ":"+port).Msg("Server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("Server stopped")
}

func setupLogging() {
	if os.Getenv("LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	if os.Getenv("DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadConverter(path string) (*units.Converter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open unit table %q: %w", path, err)
	}
	defer f.Close()

	return units.LoadTable(f)
}

func loadCatalog(path string) (*refdata.Catalog, error) {
	if path == "" {
		return refdata.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference data %q: %w", path, err)
	}
	defer f.Close()

	return refdata.LoadYAML(f)
}
