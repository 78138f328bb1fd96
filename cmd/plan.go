package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"techops/app"
	"techops/config"
	"techops/infra/logger"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run a planning pass and write the reports",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("plan-command").Errorf("service close: %v", err)
		}
	}()

	res, err := svc.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d due, %d scheduled, %d unscheduled\n",
		res.RunID, res.Stats.DueItems, res.Stats.Scheduled, res.Stats.Unscheduled)
	for kind, n := range res.Stats.RiskCounts {
		fmt.Fprintf(out, "  risk %s: %d\n", kind, n)
	}
	fmt.Fprintf(out, "utilization: mean %.1f%% peak %.1f%%\n",
		res.Summary.MeanUtilizationPct, res.Summary.PeakUtilizationPct)
	return nil
}
