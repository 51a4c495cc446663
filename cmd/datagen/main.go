// Command datagen fabricates the three synthetic analytics datasets and
// optionally bulk-loads them into the ClickHouse warehouse.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Amar3x3/seoAgent/config"
	"github.com/Amar3x3/seoAgent/database"
	"github.com/Amar3x3/seoAgent/datagen"
	"github.com/Amar3x3/seoAgent/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	var (
		days        int
		startDate   string
		seed        int64
		outDir      string
		minSessions int
		maxSessions int
		load        bool
	)

	rootCmd := &cobra.Command{
		Use:   "datagen",
		Short: "Generate synthetic hospital web, search, and video analytics data.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultGenerator()
			cfg.NumDays = days
			cfg.MinSessionsPerDay = minSessions
			cfg.MaxSessionsPerDay = maxSessions

			start, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return fmt.Errorf("invalid --start date: %w", err)
			}
			cfg.StartDate = start

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			gen, err := datagen.New(cfg, seed)
			if err != nil {
				return err
			}

			ds := gen.Generate()
			if err := datagen.WriteDataset(outDir, ds); err != nil {
				return err
			}

			if load {
				return loadWarehouse(cmd.Context(), ds)
			}
			return nil
		},
	}

	rootCmd.Flags().IntVar(&days, "days", 90, "number of days to generate")
	rootCmd.Flags().StringVar(&startDate, "start", "2025-01-01", "first partition date (YYYY-MM-DD)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (defaults to current time)")
	rootCmd.Flags().StringVar(&outDir, "out", ".", "output directory for the CSV files")
	rootCmd.Flags().IntVar(&minSessions, "min-sessions", 200, "minimum sessions per day")
	rootCmd.Flags().IntVar(&maxSessions, "max-sessions", 1000, "maximum sessions per day")
	rootCmd.Flags().BoolVar(&load, "load", false, "create tables and load the generated rows into ClickHouse")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("datagen failed: %v", err)
	}
}

func loadWarehouse(ctx context.Context, ds datagen.Dataset) error {
	chClient, err := database.NewClickHouseDB()
	if err != nil {
		return fmt.Errorf("failed to initialize ClickHouse database: %w", err)
	}
	defer chClient.Close()

	analyticsStore := store.NewAnalyticsStore(chClient)

	loadCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if err := analyticsStore.CreateTables(loadCtx); err != nil {
		return err
	}
	if err := analyticsStore.LoadGSCRows(loadCtx, ds.GSC); err != nil {
		return err
	}
	if err := analyticsStore.LoadYouTubeRows(loadCtx, ds.YouTube); err != nil {
		return err
	}
	if err := analyticsStore.LoadSessions(loadCtx, ds.Sessions); err != nil {
		return err
	}

	log.Println("Warehouse load complete.")
	return nil
}
