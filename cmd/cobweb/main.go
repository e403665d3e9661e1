// Command cobweb serves point-to-point shortest-path queries over an
// OSM-derived road graph: load configuration, load a frozen graph and
// city database, prune to the largest strongly connected component,
// select ALT landmarks if configured, assemble a routing engine, and
// serve it over HTTP until interrupted.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "cobweb",
	Short: "Point-to-point shortest-path routing server over an OSM-derived road graph",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "cobweb.yaml", "path to the server's YAML configuration file")
	rootCmd.AddCommand(serveCmd)
}
