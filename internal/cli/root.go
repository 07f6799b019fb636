// Package cli is the shuuden terminal client. It runs searches in-process with
// the same wiring as the API server and renders the result as cards.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shuuden/shuuden/internal/app"
	"github.com/shuuden/shuuden/internal/config"
	"github.com/shuuden/shuuden/internal/search"
	"github.com/shuuden/shuuden/internal/station"
)

// Searcher runs a route search.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Result, error)
}

// Options configures the command tree.
type Options struct {
	Version string

	// NewSearcher builds the searcher on first use (optional, defaults to
	// the configured search service).
	NewSearcher func() (Searcher, error)

	// Stations is the station directory (optional, defaults to station.Default()).
	Stations *station.Directory

	// Spinner shows a progress spinner while searching. It needs a terminal.
	Spinner bool
}

// NewRootCmd builds the shuuden command tree.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Stations == nil {
		opts.Stations = station.Default()
	}
	if opts.NewSearcher == nil {
		opts.NewSearcher = defaultSearcher
	}

	root := &cobra.Command{
		Use:   "shuuden",
		Short: "Find the cheapest way home after the last train",
		Long: `shuuden compares late-night ways home in Tokyo: trains while they still run,
trains plus a taxi, or a taxi all the way, ranked by how much they save
against taking a taxi for the whole trip.`,
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSearchCmd(opts), newStationsCmd(opts))
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(ctx context.Context, version string) {
	root := NewRootCmd(Options{Version: version, Spinner: true})
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln(errorStyle.Render("✗ " + err.Error()))
		os.Exit(1)
	}
}

// defaultSearcher loads configuration and builds the search service. Logs go
// to stderr at warn level so they do not mix with the rendered result.
func defaultSearcher() (Searcher, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.WarnLevel)

	return app.NewSearchService(cfg, logger, nil)
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
