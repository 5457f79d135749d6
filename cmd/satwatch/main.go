package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/backend/internal/client"
	"github.com/orbitwatch/backend/internal/domain"
)

type options struct {
	server   string
	timeout  time.Duration
	lat      float64
	lng      float64
	zone     string
	satID    int
	interact bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "satwatch",
		Short:         "Terminal views of the satellite tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	defaultServer := os.Getenv("SATWATCH_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	root.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "tracker base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(
		newCatalogCmd(opts),
		newPassesCmd(opts),
		newAboveCmd(opts),
		newTLECmd(opts),
	)
	return root
}

func (o *options) client() *client.Client {
	return client.New(o.server)
}

func (o *options) observer() (domain.Observer, error) {
	obs := domain.Observer{Lat: o.lat, Lng: o.lng}
	if obs.Lat < -90 || obs.Lat > 90 || obs.Lng < -180 || obs.Lng > 180 {
		return domain.Observer{}, fmt.Errorf("observer out of range: %v,%v", obs.Lat, obs.Lng)
	}
	return obs, nil
}

func (o *options) location() (*time.Location, error) {
	if o.zone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.zone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", o.zone, err)
	}
	return loc, nil
}

func addObserverFlags(cmd *cobra.Command, opts *options) {
	def := domain.DefaultObserver()
	cmd.Flags().Float64Var(&opts.lat, "lat", def.Lat, "observer latitude")
	cmd.Flags().Float64Var(&opts.lng, "lng", def.Lng, "observer longitude")
}

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List selectable satellites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			cat, err := opts.client().Catalog(ctx)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), cat)
			return nil
		},
	}
}

func newPassesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passes",
		Short: "Show upcoming visual passes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			obs, err := opts.observer()
			if err != nil {
				return err
			}
			loc, err := opts.location()
			if err != nil {
				return err
			}
			c := opts.client()
			if opts.interact {
				return runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), c, obs, loc, opts.timeout)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			resp, err := c.Passes(ctx, obs, opts.satID)
			if err != nil {
				return err
			}
			printPasses(cmd.OutOrStdout(), resp, loc)
			return nil
		},
	}
	addObserverFlags(cmd, opts)
	cmd.Flags().IntVar(&opts.satID, "sat", 0, "NORAD id (defaults to the ISS)")
	cmd.Flags().StringVar(&opts.zone, "tz", "", "IANA time zone for pass times (defaults to local)")
	cmd.Flags().BoolVarP(&opts.interact, "interactive", "i", false, "read satellite ids from stdin and show the newest selection")
	return cmd
}

func newAboveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "above",
		Short: "List satellites currently overhead",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			obs, err := opts.observer()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			resp, err := opts.client().Above(ctx, obs)
			if err != nil {
				return err
			}
			printAbove(cmd.OutOrStdout(), obs, resp)
			return nil
		},
	}
	addObserverFlags(cmd, opts)
	return cmd
}

func newTLECmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tle",
		Short: "Print the two-line element set of a satellite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			tle, err := opts.client().TLE(ctx, opts.satID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tle.Line1)
			fmt.Fprintln(cmd.OutOrStdout(), tle.Line2)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.satID, "sat", 0, "NORAD id (defaults to the ISS)")
	return cmd
}
