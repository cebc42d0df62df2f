package main

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/fingoal/backend/internal/advisor"
	"github.com/fingoal/backend/internal/chat"
	v1 "github.com/fingoal/backend/internal/controllers/v1"
	"github.com/fingoal/backend/internal/models"
	"github.com/fingoal/backend/internal/planner"
	"github.com/fingoal/backend/internal/router"
	"github.com/fingoal/backend/internal/settings"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional, the environment always takes precedence
	envErr := godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file loaded")
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Err(err).Msg("API_URL is not a valid URL")
	}

	// Create data directory
	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = filepath.Join(".", "data")
	}

	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	db, err := models.Connect(filepath.Join(dataDir, "fingoal.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx := context.Background()
	store := models.NewStore(db)
	s := settings.New(store)
	client := advisor.NewClient(os.Getenv("OPENAI_API_URL"), os.Getenv("OPENAI_MODEL"))

	p := planner.New(store, advisor.New(client, nil), s, nil)
	if err := p.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("could not load goals")
	}

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := p.SeedSampleData(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not seed sample data")
		}
	}

	session := chat.New(store, client, s)
	if err := session.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("could not load chat history")
	}

	r, teardown, err := router.Config(u)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{
		Planner:  p,
		Chat:     session,
		Settings: s,
	}, db, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
