package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"wolfram-solver/console"
	"wolfram-solver/internal/integrations/appid"
	"wolfram-solver/internal/integrations/wolfram"
	"wolfram-solver/internal/usecase"
)

func main() {
	ctx := context.Background()

	// Optional .env file for local runs; absence is not an error.
	_ = godotenv.Load()

	logger := initLogger().With().Str("session_id", uuid.NewString()).Logger()

	// ---- Configuration (read only here) ----
	src, err := appIDSource(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve app id source")
	}

	// ---- Clients ----
	var opts []wolfram.Option
	if base := strings.TrimSpace(os.Getenv("WOLFRAM_BASE_URL")); base != "" {
		opts = append(opts, wolfram.WithBaseURL(base))
	}
	client, err := wolfram.NewClient(src, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create wolfram client")
	}

	svc, err := usecase.NewSolveService(client, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create solve service")
	}

	// ---- Menu ----
	menu, err := console.NewMenu(svc, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create menu")
	}

	if err := menu.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("menu loop failed")
	}
}

func initLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// appIDSource prefers WOLFRAM_APP_ID from the environment and falls back to
// SSM Parameter Store when WOLFRAM_APP_ID_PARAM names a parameter.
func appIDSource(ctx context.Context) (wolfram.Source, error) {
	if v := strings.TrimSpace(os.Getenv("WOLFRAM_APP_ID")); v != "" {
		return appid.Static(v), nil
	}

	name := strings.TrimSpace(os.Getenv("WOLFRAM_APP_ID_PARAM"))
	if name == "" {
		return nil, errors.New("set WOLFRAM_APP_ID or WOLFRAM_APP_ID_PARAM")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return appid.NewParameterStore(awsssm.NewFromConfig(cfg), name)
}
