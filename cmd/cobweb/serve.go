package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cobweb/citydb"
	"github.com/katalvlaran/cobweb/config"
	"github.com/katalvlaran/cobweb/graph"
	"github.com/katalvlaran/cobweb/landmark"
	"github.com/katalvlaran/cobweb/routefactory"
	"github.com/katalvlaran/cobweb/server"
	"github.com/katalvlaran/cobweb/tarjan"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the graph and city database, then serve routing queries over HTTP",
	RunE:  runServe,
}

var listenAddr string

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "override the configured listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	g, err := loadGraphData(cfg.GraphPath)
	if err != nil {
		return fmt.Errorf("loading graph: %w", err)
	}
	log.Info().Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")

	sccs := tarjan.SCCs(g)
	pruned := graph.LargestSCC(g, sccs)
	log.Info().Int("components", len(sccs)).Int("largest_nodes", pruned.NodeCount()).Msg("pruned to largest strongly connected component")

	db, err := citydb.Load(cfg.CityDBPath)
	if err != nil {
		return fmt.Errorf("loading citydb: %w", err)
	}

	policy, opts, err := buildPolicy(cmd.Context(), pruned, cfg)
	if err != nil {
		return fmt.Errorf("building landmark table: %w", err)
	}

	// Validate engine assembly eagerly so a misconfigured policy fails
	// at boot rather than on the first request.
	if _, err := routefactory.New(pruned, policy, opts...); err != nil {
		return fmt.Errorf("assembling engine: %w", err)
	}

	handler := server.NewHandler(pruned, db, policy, opts...)
	router := server.NewRouter(handler)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("serving")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

// buildPolicy resolves the configured policy into a routefactory.Policy
// plus options, building an ALT landmark table when required.
func buildPolicy(ctx context.Context, g *graph.Graph, cfg *config.Config) (routefactory.Policy, []routefactory.Option, error) {
	switch cfg.Policy {
	case config.PolicyAStarHaversine:
		return routefactory.PolicyAStarHaversine, nil, nil
	case config.PolicyAStarLandmarks:
		table, err := landmark.Build(ctx, g, cfg.LandmarkCount, rand.New(rand.NewSource(cfg.LandmarkSeed)))
		if err != nil {
			return 0, nil, err
		}
		server.SetLandmarkTableSize(len(table.Landmarks()))

		return routefactory.PolicyAStarLandmarks, []routefactory.Option{routefactory.WithLandmarkTable(table)}, nil
	default:
		return routefactory.PolicyDijkstra, nil, nil
	}
}
