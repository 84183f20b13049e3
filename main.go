package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"flightroute/navroute"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the state shared by all commands once the root command's
// pre-run has resolved configuration and logging.
type app struct {
	configPath string
	verbose    bool
	flags      Config // flag values; applied only when the flag was set

	cfg      Config
	logger   *log.Logger
	logClose io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "flightroute",
		Short:         "Synthesize flight routes between airports from a navigation fix catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logClose != nil {
				a.logClose.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to TOML config file (default "+defaultConfigPath+" if present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.flags.Catalog.File, "catalog", "", "GeoJSON catalog file or directory")
	pf.StringVar(&a.flags.Catalog.DatabaseURL, "database-url", "", "Postgres URL to load the catalog from")
	pf.Float64Var(&a.flags.Search.MaxDistance, "max-dist", navroute.DefaultMaxDistance, "longest leg in NM")
	pf.Float64Var(&a.flags.Search.MinDistance, "min-dist", navroute.DefaultMinDistance, "shortest leg in NM")
	pf.Float64Var(&a.flags.Search.TurnPenalty, "turn-penalty", navroute.DefaultTurnPenalty, "turn surcharge scale (0 disables)")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newFindCmd(a))

	return root
}

// setup resolves configuration (file, .env and environment, then flags) and
// opens the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog.File = a.flags.Catalog.File
	}
	if flags.Changed("database-url") {
		cfg.Catalog.DatabaseURL = a.flags.Catalog.DatabaseURL
	}
	if flags.Changed("max-dist") {
		cfg.Search.MaxDistance = a.flags.Search.MaxDistance
	}
	if flags.Changed("min-dist") {
		cfg.Search.MinDistance = a.flags.Search.MinDistance
	}
	if flags.Changed("turn-penalty") {
		cfg.Search.TurnPenalty = a.flags.Search.TurnPenalty
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = a.flags.Server.Addr
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := openLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.logClose = cfg, logger, closer
	return nil
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route searches over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&a.flags.Server.Addr, "addr", ":8080", "listen address")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	catalog, err := loadCatalog(ctx, a.cfg.Catalog, a.logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           newServer(catalog, a.cfg.searchOptions(), a.logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.logger.Info("Server listening",
			"addr", srv.Addr,
			"points", len(catalog),
			"max_dist", a.cfg.Search.MaxDistance,
			"min_dist", a.cfg.Search.MinDistance,
			"turn_penalty", a.cfg.Search.TurnPenalty)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		a.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find START END",
		Short: "Find a route between two airports and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.find(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func (a *app) find(ctx context.Context, out io.Writer, start, end string) error {
	catalog, err := loadCatalog(ctx, a.cfg.Catalog, a.logger)
	if err != nil {
		return err
	}

	res := navroute.FindPath(start, end, catalog, navroute.WithOptions(a.cfg.searchOptions()))
	a.logger.Debug("Search finished", "success", res.Success, "expanded", res.Expanded)
	if !res.Success {
		return fmt.Errorf("no route from %s to %s: %s", start, end, res.Reason)
	}

	for _, p := range res.Path {
		fmt.Fprintf(out, "%-8s %-8s %10.2f %10.2f\n", p.Name, p.Type, p.X, p.Y)
	}
	fmt.Fprintf(out, "distance %.2f NM over %d legs\n", res.Distance, len(res.Path)-1)

	return nil
}
