package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"match-canon/core/storage"
	"match-canon/feature/convert"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertID     int64
	convertOutput string
	convertPretty bool
	convertForce  bool
	batchJSON     bool
)

// convertCmd is the parent command for all conversions.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert match logs into canonical records",
}

// convertFileCmd converts a log on the local disk.
var convertFileCmd = &cobra.Command{
	Use:   "file <format> <path>",
	Short: "Convert a local log file and print the canonical record",
	Long: `Decodes a local mjlog (.xml) or mjson (.json) file. The match id is taken from
--id, or from the file name when it is <id>.<ext>.

Examples:
  convert file mjlog 2024010100.xml --pretty
  convert file mjson game.json --id 42 -o 42.json`,
	Args: cobra.ExactArgs(2),
	RunE: runConvertFile,
}

// convertStoredCmd converts one log held in storage.
var convertStoredCmd = &cobra.Command{
	Use:   "stored <format> <id>",
	Short: "Convert a stored log and write its canonical record",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvertStored,
}

// convertBatchCmd converts every stored log of a format.
var convertBatchCmd = &cobra.Command{
	Use:   "batch <format>",
	Short: "Convert every stored log of a format",
	Long: `Converts input/<format>/<id>.<ext> into output/<id>.json for every stored log.
Matches with an existing record are skipped unless --force is given. A failing
match is reported and does not stop the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvertBatch,
}

func init() {
	convertFileCmd.Flags().Int64Var(&convertID, "id", -1, "Match id recorded in the output")
	convertFileCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write the record to a file instead of stdout")
	convertFileCmd.Flags().BoolVar(&convertPretty, "pretty", false, "Indent the JSON output")

	convertStoredCmd.Flags().BoolVar(&convertForce, "force", false, "Overwrite an existing record")

	convertBatchCmd.Flags().BoolVar(&convertForce, "force", false, "Reconvert matches with an existing record")
	convertBatchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print the full batch report as JSON")

	convertCmd.AddCommand(convertFileCmd, convertStoredCmd, convertBatchCmd)
	RootCmd.AddCommand(convertCmd)
}

// newConvertService wires the conversion service. A nil client is fine for local files.
func newConvertService(withStorage bool) (*convert.Service, *zap.Logger, error) {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return nil, nil, err
	}

	db, err := connectPlayersDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	resolver, err := openResolver(cfg, db, logg)
	if err != nil {
		return nil, nil, err
	}

	var client storage.Client
	if withStorage {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}
	return convert.NewService(client, cfg.Storage.Bucket, cfg.Convert, resolver, logg), logg, nil
}

func runConvertFile(cmd *cobra.Command, args []string) error {
	format, err := convert.ParseFormat(args[0])
	if err != nil {
		return err
	}
	path := args[1]

	id := convertID
	if id < 0 {
		parsed, ok := convert.ParseObjectID(filepath.Base(path), format.Extension())
		if !ok {
			return fmt.Errorf("cannot derive a match id from %q; pass --id", path)
		}
		id = parsed
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	svc, _, err := newConvertService(false)
	if err != nil {
		return err
	}
	match, err := svc.Decode(format, id, content)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if convertOutput != "" {
		f, err := os.Create(convertOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeJSON(out, match, convertPretty)
}

func runConvertStored(cmd *cobra.Command, args []string) error {
	format, err := convert.ParseFormat(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid match id %q", args[1])
	}

	svc, logg, err := newConvertService(true)
	if err != nil {
		return err
	}
	outcome, err := svc.ConvertStored(cmd.Context(), format, id, convertForce)
	if err != nil {
		return err
	}
	logg.Info("Stored log processed",
		zap.Int64("match_id", id),
		zap.String("outcome", string(outcome)),
		zap.String("output", svc.OutputKey(id)))
	return nil
}

func runConvertBatch(cmd *cobra.Command, args []string) error {
	format, err := convert.ParseFormat(args[0])
	if err != nil {
		return err
	}

	svc, logg, err := newConvertService(true)
	if err != nil {
		return err
	}

	logg.Info("Converting stored logs (this might take a while)...", zap.String("format", string(format)))
	report, err := svc.ConvertBatch(cmd.Context(), format, convertForce)
	if err != nil {
		return err
	}

	for _, f := range report.Failed {
		logg.Warn("Match failed", zap.Int64("match_id", f.ID), zap.String("error", f.Error))
	}
	if batchJSON {
		return writeJSON(cmd.OutOrStdout(), report, true)
	}
	return nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
