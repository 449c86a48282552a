package cmd

import (
	"fmt"
	"os"
	"strconv"

	"match-canon/core/reconcile"
	"match-canon/feature/canon"
	"match-canon/feature/convert"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	crosscheckJSON   bool
	crosscheckStrict bool
	crosscheckID     int64
)

// crosscheckCmd compares every match stored in both formats.
var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Cross-check matches stored in both log formats",
	Long: `Decodes every match stored as both mjlog and mjson and reports the fields in
which the two canonical records differ.

Examples:
  # Summary of all stored matches
  crosscheck

  # Full report, failing when any match differs
  crosscheck --json --strict

  # One stored match
  crosscheck match 2024010100

  # Two local files of the same match
  crosscheck files 1001.xml 1001.json`,
	Args: cobra.NoArgs,
	RunE: runCrosscheckAll,
}

// crosscheckMatchCmd compares the two stored logs of one match.
var crosscheckMatchCmd = &cobra.Command{
	Use:   "match <id>",
	Short: "Cross-check one stored match",
	Args:  cobra.ExactArgs(1),
	RunE:  runCrosscheckMatch,
}

// crosscheckFilesCmd compares a local mjlog file with a local mjson file.
var crosscheckFilesCmd = &cobra.Command{
	Use:   "files <mjlog-path> <mjson-path>",
	Short: "Cross-check two local log files of the same match",
	Args:  cobra.ExactArgs(2),
	RunE:  runCrosscheckFiles,
}

func init() {
	crosscheckCmd.Flags().BoolVar(&crosscheckJSON, "json", false, "Print the full report as JSON")
	crosscheckCmd.Flags().BoolVar(&crosscheckStrict, "strict", false, "Fail when any match differs or cannot be decoded")
	crosscheckFilesCmd.Flags().Int64Var(&crosscheckID, "id", 0, "Match id recorded in both records")

	crosscheckCmd.AddCommand(crosscheckMatchCmd, crosscheckFilesCmd)
	RootCmd.AddCommand(crosscheckCmd)
}

func runCrosscheckAll(cmd *cobra.Command, args []string) error {
	svc, logg, err := newConvertService(true)
	if err != nil {
		return err
	}

	logg.Info("Cross-checking stored matches (this might take a while)...")
	report, err := reconcile.ReconcileAll(cmd.Context(), svc.CrosscheckSpec())
	if err != nil {
		return fmt.Errorf("cross-check failed: %w", err)
	}

	printCrosscheckReport(logg, report)
	if crosscheckJSON {
		if err := writeJSON(cmd.OutOrStdout(), report, true); err != nil {
			return err
		}
	}

	s := report.Summary
	if crosscheckStrict && s.Mismatches+s.DecodeFailures > 0 {
		return fmt.Errorf("%d matches differ, %d failed to decode", s.Mismatches, s.DecodeFailures)
	}
	return nil
}

func runCrosscheckMatch(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid match id %q", args[0])
	}

	svc, _, err := newConvertService(true)
	if err != nil {
		return err
	}
	result, err := svc.CrosscheckOne(cmd.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), result, true)
}

func runCrosscheckFiles(cmd *cobra.Command, args []string) error {
	svc, logg, err := newConvertService(false)
	if err != nil {
		return err
	}

	left, err := decodeFile(svc, convert.FormatMjlog, args[0])
	if err != nil {
		return err
	}
	right, err := decodeFile(svc, convert.FormatMjson, args[1])
	if err != nil {
		return err
	}

	result := reconcile.ReconcileOne(crosscheckID, left, right)
	if len(result.Mismatch) == 0 {
		logg.Info("Records are identical")
		return nil
	}
	for _, m := range result.Mismatch {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	return fmt.Errorf("records differ in %d fields", len(result.Mismatch))
}

func decodeFile(svc *convert.Service, format convert.Format, path string) (*canon.Match, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return svc.Decode(format, crosscheckID, content)
}

// printCrosscheckReport logs the summary and a sample of differing matches.
func printCrosscheckReport(l *zap.Logger, report *reconcile.Report) {
	s := report.Summary
	l.Info("Cross-check report",
		zap.String("left", report.Left),
		zap.String("right", report.Right),
		zap.Int("total_matches", s.TotalMatches),
		zap.Int("missing_left", s.MissingLeft),
		zap.Int("missing_right", s.MissingRight),
		zap.Int("decode_failures", s.DecodeFailures),
		zap.Int("mismatches", s.Mismatches),
		zap.Int("identical", s.Identical),
	)

	const maxShow = 5
	shown := 0
	for _, r := range report.Results {
		if r.Identical() || !r.LeftPresent || !r.RightPresent {
			continue
		}
		if shown == maxShow {
			l.Info("Additional differing matches not shown", zap.Int("count", s.Mismatches+s.DecodeFailures-maxShow))
			return
		}
		shown++

		fields := []zap.Field{zap.Int64("match_id", r.ID)}
		if r.LeftError != "" {
			fields = append(fields, zap.String("left_error", r.LeftError))
		}
		if r.RightError != "" {
			fields = append(fields, zap.String("right_error", r.RightError))
		}
		if len(r.Mismatch) > 0 {
			fields = append(fields, zap.String("first_difference", r.Mismatch[0]), zap.Int("differences", len(r.Mismatch)))
		}
		l.Warn("Sample difference", fields...)
	}
}
