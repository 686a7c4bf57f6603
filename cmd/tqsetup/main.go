// Command tqsetup installs the turboquery paging procedure into the database
// configured by ./turboquery.env or TURBOQUERY_* environment variables, and
// checks that the configured procedure exists afterwards.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/sclgo/turboquery"
	"github.com/sclgo/turboquery/config"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := cfg.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logger.WithContext(ctx)

	client, err := turboquery.Register(ctx, cfg.Configure, cfg.ClientOptions()...)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot bootstrap database")
	}
	defer client.Close()

	ok, err := client.ProcedureExists(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot look up procedure")
	}
	if !ok {
		logger.Fatal().
			Str("procedure", cfg.ProcedureName).
			Msg("procedure not found; set TURBOQUERY_PROCEDURE_NAME to " + turboquery.SetupProcedure)
	}

	logger.Info().Str("procedure", cfg.ProcedureName).Msg("database ready")
}
