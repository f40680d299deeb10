package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/guessnum/internal/config"
	"github.com/robalobadob/guessnum/internal/game"
	"github.com/robalobadob/guessnum/internal/httpserver"
	"github.com/robalobadob/guessnum/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the guess page and API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			setupLogger(cfg, os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := httpserver.New(httpserver.Options{
				Evaluator:      game.NewEvaluator(nil),
				Store:          st,
				ClientOrigin:   cfg.ClientOrigin,
				RequestTimeout: cfg.RequestTimeout,
			})

			log.Info().Str("addr", cfg.Addr()).Msg("starting guessnum server")
			if err := srv.Run(ctx, cfg.Addr()); err != nil {
				return fmt.Errorf("server exited: %w", err)
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}
}

// openStore picks SQLite when db_path is set, otherwise an in-memory tally.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.DBPath == "" {
		log.Info().Msg("using in-memory outcome tally")
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	log.Info().Str("path", cfg.DBPath).Msg("using sqlite outcome tally")
	return st, nil
}
