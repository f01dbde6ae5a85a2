package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"

	"github.com/loiclinais34/aimarkets-sub003/cmd"
	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/app"
	"github.com/loiclinais34/aimarkets-sub003/internal/calculator"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
	l1_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l1"
)

type symbolRow struct {
	Symbol string `csv:"symbol"`
}

func readSymbolsCsv(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbols csv: %w", err)
	}
	defer f.Close()

	rows := []symbolRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse symbols csv: %w", err)
	}

	out := []string{}
	for _, row := range rows {
		if row.Symbol != "" {
			out = append(out, row.Symbol)
		}
	}

	return out, nil
}

func resolveSymbols(symbols []string, csvPath string) ([]string, error) {
	if len(symbols) > 0 && csvPath != "" {
		return nil, fmt.Errorf("cannot combine --symbols with --symbols-csv")
	}
	if csvPath != "" {
		return readSymbolsCsv(csvPath)
	}
	return symbols, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return d, nil
}

// logProgress mirrors batch updates to the console. nothing waits on
// this channel, so a slow terminal never holds up the run
func logProgress() chan app.ProgressUpdate {
	ch := make(chan app.ProgressUpdate, 64)
	go func() {
		for update := range ch {
			log.Printf(
				"[%d/%d] succeeded=%d failed=%d current=%s",
				update.Processed, update.Total, update.Succeeded, update.Failed, update.CurrentItem,
			)
		}
	}()
	return ch
}

func profiledContext() (context.Context, func()) {
	profile, endProfile := domain.NewProfile()
	ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)
	return ctx, func() {
		endProfile()
		internal.Pprint(profile)
	}
}

func main() {
	var (
		symbols    []string
		symbolsCsv string
		startDate  string
		endDate    string
		force      bool
		horizons   []int
	)

	rootCmd := &cobra.Command{
		Use:          "aimarkets",
		Short:        "batch driver for opportunity generation and validation",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringSliceVar(&symbols, "symbols", nil, "symbols to process (default: full universe)")
	rootCmd.PersistentFlags().StringVar(&symbolsCsv, "symbols-csv", "", "csv file with a symbol column")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate opportunity snapshots over a date range",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			resolved, err := resolveSymbols(symbols, symbolsCsv)
			if err != nil {
				return err
			}
			start, err := parseDate(startDate)
			if err != nil {
				return err
			}
			end, err := parseDate(endDate)
			if err != nil {
				return err
			}

			ctx, finish := profiledContext()
			defer finish()

			report, err := handler.BatchRunner.RunGeneration(ctx, app.GenerateBatchInput{
				Symbols:   resolved,
				StartDate: start,
				EndDate:   end,
				Force:     force,
				Config:    calculator.DefaultScoringConfig(),
				Progress:  logProgress(),
			})
			if report != nil {
				internal.Pprint(report)
			}
			return err
		},
	}
	generateCmd.Flags().StringVar(&startDate, "start", "", "first as-of date (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&endDate, "end", "", "last as-of date (YYYY-MM-DD)")
	generateCmd.Flags().BoolVar(&force, "force", false, "regenerate records that already exist")
	generateCmd.MarkFlagRequired("start")
	generateCmd.MarkFlagRequired("end")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "validate stored opportunities against realized prices",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			resolved, err := resolveSymbols(symbols, symbolsCsv)
			if err != nil {
				return err
			}
			in := app.ValidateBatchInput{
				Symbols:  resolved,
				Horizons: horizons,
				Progress: logProgress(),
			}
			if startDate != "" {
				start, err := parseDate(startDate)
				if err != nil {
					return err
				}
				in.StartDate = &start
			}
			if endDate != "" {
				end, err := parseDate(endDate)
				if err != nil {
					return err
				}
				in.EndDate = &end
			}

			ctx, finish := profiledContext()
			defer finish()

			report, err := handler.BatchRunner.RunValidation(ctx, in)
			if report != nil {
				internal.Pprint(report)
			}
			return err
		},
	}
	validateCmd.Flags().StringVar(&startDate, "start", "", "earliest opportunity date to validate")
	validateCmd.Flags().StringVar(&endDate, "end", "", "latest opportunity date to validate")
	validateCmd.Flags().IntSliceVar(&horizons, "horizons", nil, "validation horizons in trading days")

	updatePricesCmd := &cobra.Command{
		Use:   "update-prices",
		Short: "ingest end-of-day prices for the full universe",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			return l1_service.UpdateUniversePrices(
				context.Background(),
				handler.Db,
				handler.TickerRepository,
				handler.EodPriceRepository,
			)
		},
	}

	rootCmd.AddCommand(generateCmd, validateCmd, updatePricesCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
