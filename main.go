package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/hangman"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	list, err := words.Source(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}
	if cfg.Dedupe {
		list = words.Dedupe(list)
	}
	log.Debug().Int("words", len(list)).Int("attempts", cfg.Attempts).Msg("word list loaded")

	engine, err := hangman.New(list, cfg.Attempts, hangman.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	history := store.NewMemoryStore()
	store.Attach(engine, history, log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shell := console.New(engine, history, os.Stdin, os.Stdout, log.Logger)
	if err := shell.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("session ended")
	}
}
