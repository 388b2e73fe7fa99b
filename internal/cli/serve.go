package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/latticeplan/syclop/internal/api"
	"github.com/latticeplan/syclop/pkg/planrun"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		mongoURI string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the syclop HTTP API",
		Long: `Run the syclop HTTP API.

POST /plans runs a solve against a demo scenario and returns its outcome.
GET /plans/{id} fetches a previously recorded run. GET /plans/{id}
requires --record-mongo-uri; without it every lookup 404s.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, mongoURI)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&mongoURI, "record-mongo-uri", "", "MongoDB URI to persist plan runs (disabled if empty)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, mongoURI string) error {
	var recorder *planrun.Recorder
	if mongoURI != "" {
		coll, err := connectMongoCollection(ctx, mongoURI)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		recorder = planrun.NewRecorder(coll)
	}

	srv := api.New(c.Logger, recorder)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
