package client

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/bosshp"
)

var dryRun bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect the local boss HP records",
}

var stateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored boss HP baselines",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runStateList)
	},
}

var statePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove corrupted boss HP entries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, runStatePrune)
	},
}

func init() {
	statePruneCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed without removing it")
	stateCmd.AddCommand(stateListCmd, statePruneCmd)
}

func runStateList(ctx context.Context, a *app) error {
	out, err := a.bossHP.List(ctx)
	if err != nil {
		return err
	}

	a.printf("%s  %s\n\n", heading("보스 HP 기록"), muted(a.cfg.StoreBackend))
	if len(out.Records) == 0 {
		a.printf("%s\n", muted("저장된 기록이 없습니다."))
	}
	for _, r := range out.Records {
		seen := "-"
		if !r.ObservedAt.IsZero() {
			seen = r.ObservedAt.Local().Format(time.DateTime)
		}
		a.printf("%s%-8d HP %-10d %s\n", bosshp.KeyPrefix, r.BossID, r.HP, muted(seen))
	}

	if len(out.Corrupted) > 0 {
		a.printf("\n%d corrupted entries (jeondoksi state prune 로 정리):\n", len(out.Corrupted))
		for _, k := range out.Corrupted {
			a.printf("  ✗ %s\n", k)
		}
	}
	return nil
}

func runStatePrune(ctx context.Context, a *app) error {
	out, err := a.bossHP.Prune(ctx, &bosshp.PruneInput{DryRun: dryRun})
	if err != nil {
		return err
	}

	if len(out.Removed) == 0 {
		a.printf("✓ No corrupted entries found\n")
		return nil
	}

	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	for _, k := range out.Removed {
		a.printf("  %s %s\n", verb, k)
	}
	a.printf("\n%s %d entries\n", verb, len(out.Removed))
	return nil
}
