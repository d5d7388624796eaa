package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"railsearch/internal/config"
	"railsearch/internal/schedule"
	"railsearch/internal/upstream"
	"railsearch/internal/web"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const appVersion = "0.2.0"

func main() {
	logger := log.New(os.Stdout, "[railsearch] ", log.LstdFlags|log.Lshortfile)

	root := &cobra.Command{
		Use:     "railsearch",
		Short:   "Search train schedules between two station codes",
		Version: appVersion,
	}
	root.AddCommand(newServeCmd(logger), newSearchCmd(logger))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newUpstreamClient(cfg config.UpstreamConfig, logger *log.Logger) *upstream.Client {
	limiter := rate.NewLimiter(rate.Every(cfg.RateEvery), cfg.Burst)
	return upstream.NewClient(cfg.BaseURL, cfg.Timeout, limiter, logger)
}

func newServeCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the search form and render results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg := config.Load()
			logger.Printf("configuration loaded | listen_addr: %s | upstream: %s", cfg.Server.Addr, cfg.Upstream.BaseURL)

			client := newUpstreamClient(cfg.Upstream, logger)
			server, err := web.NewServer(cfg.Server, client, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(server.Start)
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				return server.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
}

func newSearchCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "search <source-code> <destination-code>",
		Short: "Run a one-shot search and print matching trains",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			source := schedule.NormalizeCode(args[0])
			destination := schedule.NormalizeCode(args[1])
			if source == "" || destination == "" {
				return fmt.Errorf("both station codes are required (letters only, e.g. NDLS)")
			}
			if source == destination {
				return fmt.Errorf("source and destination stations must be different")
			}

			cfg := config.Load()
			client := newUpstreamClient(cfg.Upstream, logger)

			trips, err := client.Search(cmd.Context(), source, destination)
			if err != nil {
				return err
			}
			if len(trips) == 0 {
				fmt.Printf("No trains found between %s and %s.\n", source, destination)
				return nil
			}

			first := trips[0]
			fmt.Printf("%s (%s) -> %s (%s)\n\n",
				first.Source.StationName, first.Source.StationCode,
				first.Destination.StationName, first.Destination.StationCode)
			for _, t := range trips {
				fmt.Printf("%s  %s\n", t.Train.TrainNumber, t.Train.TrainName)
				fmt.Printf("  dep %s  arr %s  (%s)\n",
					schedule.Clock12(t.DepartureTime),
					schedule.Clock12(t.ArrivalTime),
					schedule.DurationString(t.DepartureTime, t.ArrivalTime))
			}
			return nil
		},
	}
}
