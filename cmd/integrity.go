package cmd

import (
	"context"
	"fmt"

	"match-canon/core/storage"
	"match-canon/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage layout and the players source",
	Long:  `Checks that the bucket holds the input and output folders, lists matches awaiting conversion or missing their raw log, and verifies the players source.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// outputsCmd represents the integrity outputs command
var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List pending conversions and orphaned records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// playersCheckCmd represents the integrity players command
var playersCheckCmd = &cobra.Command{
	Use:   "players",
	Short: "Check the players file or alias table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, outputsCmd, playersCheckCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runOutputs, runPlayers bool) error {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return err
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	db, err := connectPlayersDB(cfg)
	if err != nil {
		logg.Warn("Players database unavailable", zap.Error(err))
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Convert, db, logg)
	onlyStructure := runStructure && !runOutputs && !runPlayers

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if onlyStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else if onlyStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runOutputs {
		logg.Info("Checking outputs (this might take a while)...")
		report, err := svc.CheckOutputs(ctx)
		if err != nil {
			return fmt.Errorf("outputs check failed: %w", err)
		}

		fmt.Println("\n=== Conversion Metrics ===")
		for format, n := range report.Inputs {
			fmt.Printf("Inputs (%s): %d\n", format, n)
		}
		fmt.Printf("Outputs: %d\n", report.Outputs)
		fmt.Printf("Pending: %d\n", len(report.Pending))
		fmt.Printf("Orphans: %d\n", len(report.Orphans))
		fmt.Printf("Invalid names: %d\n", len(report.Invalid))
		for _, name := range report.Invalid {
			logg.Warn("Invalid object name", zap.String("key", name))
		}
	}

	if runPlayers {
		logg.Info("Checking players source...", zap.String("source", cfg.Convert.PlayersSource))
		report, err := svc.CheckPlayers(ctx)
		if err != nil {
			return fmt.Errorf("players check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Players source is valid.", zap.Int64("entries", report.Entries))
		} else {
			logg.Warn("Players source has problems",
				zap.Strings("missing_columns", report.MissingColumns),
				zap.Strings("errors", report.Errors))
		}
	}

	return nil
}
