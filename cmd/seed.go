package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"techops/core/model"
	"techops/pkg/export"
	"techops/simulator"
)

var (
	seedDir   string
	seedSize  int
	seedStart string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a demo fleet, task program and maintenance history",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedDir, "out", "o", "data", "output directory")
	seedCmd.Flags().IntVar(&seedSize, "fleet-size", 0, "number of aircraft (0 uses the default)")
	seedCmd.Flags().StringVar(&seedStart, "start", "", "history anchor date YYYY-MM-DD (defaults to today)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	start := model.Day(time.Now())
	if seedStart != "" {
		t, err := time.Parse("2006-01-02", seedStart)
		if err != nil {
			return fmt.Errorf("start date: %w", err)
		}
		start = model.Day(t)
	}

	simCfg := simulator.Config{FleetSize: seedSize, Start: start}
	simCfg.SetDefaults()

	fleet := simulator.GenerateFleet(simCfg)
	cards := simulator.TaskProgram(simCfg)
	hist := simulator.SeedHistory(fleet, cards, start)

	if err := os.MkdirAll(seedDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}
	files := []struct {
		name  string
		write func(*os.File) error
	}{
		{"fleet.csv", func(f *os.File) error { return export.WriteFleetCSV(f, fleet) }},
		{"task_cards.csv", func(f *os.File) error { return export.WriteTaskCardsCSV(f, cards) }},
		{"history.csv", func(f *os.File) error { return export.WriteHistoryCSV(f, hist) }},
	}
	for _, fl := range files {
		path := filepath.Join(seedDir, fl.name)
		out, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		werr := fl.write(out)
		cerr := out.Close()
		if werr != nil {
			return fmt.Errorf("write %s: %w", path, werr)
		}
		if cerr != nil {
			return fmt.Errorf("close %s: %w", path, cerr)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d aircraft, %d task cards, %d history records in %s\n",
		len(fleet), len(cards), len(hist), seedDir)
	return nil
}
