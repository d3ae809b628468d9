package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/peopleforbikes/bna-cli/internal/loader"
	"github.com/peopleforbikes/bna-cli/internal/model"
)

var (
	citiesCSV        string
	citiesFormat     string
	citiesStrictUUID bool
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Parse a city table and print the records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cities, err := loader.Load(citiesCSV)
		if err != nil {
			return eris.Wrap(err, "cities: load")
		}
		zap.L().Info("parsed city table",
			zap.Int("cities", len(cities)),
			zap.String("csv", citiesCSV),
		)

		if citiesStrictUUID {
			for _, c := range cities {
				if err := c.ValidateUUID(); err != nil {
					return eris.Wrap(err, "cities: strict uuid")
				}
			}
		}

		return printCities(os.Stdout, cities, citiesFormat)
	},
}

// printCities writes the records to w in the requested format.
func printCities(w io.Writer, cities []model.City, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cities)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(cities)
	case "table":
		for _, c := range cities {
			fmt.Fprintf(w, "%s\t%s\n", c.FullName(), c.UUID)
		}
		return nil
	default:
		return eris.Errorf("cities: unknown format %q", format)
	}
}

func init() {
	citiesCmd.Flags().StringVar(&citiesCSV, "csv", "", "path to the city CSV (required)")
	_ = citiesCmd.MarkFlagRequired("csv")
	citiesCmd.Flags().StringVar(&citiesFormat, "format", "table", "output format: table, json, yaml")
	citiesCmd.Flags().BoolVar(&citiesStrictUUID, "strict-uuid", false, "require well-formed run identifiers")
	rootCmd.AddCommand(citiesCmd)
}
