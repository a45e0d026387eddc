// Command upcoming prints the payments due in the month and the budget
// status, fetched from a running backend.
package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/senior-finance/backend/internal/client"
	"github.com/senior-finance/backend/internal/overview"
)

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	zerolog.SetGlobalLevel(cfg.level())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Str("api", cfg.APIURL).Msg("upcoming")
	}
}

func run(ctx context.Context, cfg config, w io.Writer) error {
	asOf, err := cfg.asOf()
	if err != nil {
		return err
	}

	c, err := client.New(cfg.APIURL, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		return err
	}

	items, err := overview.Upcoming(ctx, c, asOf)
	if err != nil {
		return err
	}
	renderUpcoming(w, asOf, items)

	if !cfg.Budgets {
		return nil
	}

	month := asOf.CalendarMonth()
	statuses, err := overview.Budgets(ctx, c, month)
	if err != nil {
		return err
	}
	renderBudgets(w, month, statuses)

	return nil
}
