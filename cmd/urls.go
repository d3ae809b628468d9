package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/peopleforbikes/bna-cli/internal/dataset"
	"github.com/peopleforbikes/bna-cli/internal/loader"
	"github.com/peopleforbikes/bna-cli/internal/resolver"
)

var (
	urlsCSV         string
	urlsDataset     string
	urlsConcurrency int
)

var urlsCmd = &cobra.Command{
	Use:   "urls",
	Short: "Resolve dataset download URLs for every city in a table",
	Long: `Loads a city CSV and prints the object-store URL of the requested
dataset for each city, one per line, in input order.

Examples:
  # Neighborhood ways archives for every city
  bna-cli urls --csv cities.csv

  # Against a non-production store
  BNA_STORAGE_BASE_URL=https://example.com/results bna-cli urls --csv cities.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		kind, err := dataset.Parse(urlsDataset)
		if err != nil {
			return eris.Wrapf(err, "urls: --dataset must be one of %s", strings.Join(dataset.Names(), ", "))
		}

		cities, err := loader.Load(urlsCSV)
		if err != nil {
			return eris.Wrap(err, "urls: load")
		}

		res := resolver.New(cfg.Storage.BaseURL)

		concurrency := urlsConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Resolve.Concurrency
		}
		// SetLimit(0) blocks every Go call, so a non-positive configured
		// value degrades to serial resolution instead of hanging.
		if concurrency <= 0 {
			concurrency = 1
		}

		// Resolution is pure, so cities can be processed concurrently;
		// indexed writes keep the output in input order.
		out := make([]string, len(cities))
		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(concurrency)
		for i, city := range cities {
			i, city := i, city
			g.Go(func() error {
				u, err := res.URL(city, kind)
				if err != nil {
					return eris.Wrapf(err, "urls: %s", city.FullName())
				}
				out[i] = u.String()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		zap.L().Info("resolved dataset urls",
			zap.Int("cities", len(cities)),
			zap.Stringer("dataset", kind),
		)
		for _, u := range out {
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
		return nil
	},
}

func init() {
	urlsCmd.Flags().StringVar(&urlsCSV, "csv", "", "path to the city CSV (required)")
	_ = urlsCmd.MarkFlagRequired("csv")
	urlsCmd.Flags().StringVar(&urlsDataset, "dataset", "neighborhood_ways", "dataset to resolve")
	urlsCmd.Flags().IntVar(&urlsConcurrency, "concurrency", 0, "max concurrent resolutions (0 = config default)")
	rootCmd.AddCommand(urlsCmd)
}
