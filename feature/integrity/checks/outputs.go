package checks

import (
	"context"
	"path"
	"sort"

	"match-canon/core/storage"
	"match-canon/feature/convert"
)

// OutputReport compares the stored raw logs with the canonical records.
type OutputReport struct {
	// Inputs counts the raw logs per format.
	Inputs map[convert.Format]int `json:"inputs"`
	// Outputs counts the canonical records.
	Outputs int `json:"outputs"`
	// Pending lists ids with a raw log but no record.
	Pending []int64 `json:"pending"`
	// Orphans lists ids with a record but no raw log in any format.
	Orphans []int64 `json:"orphans"`
	// Invalid lists object keys that are not named <id><ext>.
	Invalid []string `json:"invalid"`
}

// CheckOutputs lists pending conversions, orphaned records and misnamed objects.
func CheckOutputs(ctx context.Context, client storage.Client, bucket string, cfg convert.Config) (*OutputReport, error) {
	report := &OutputReport{
		Inputs:  make(map[convert.Format]int, len(convert.Formats)),
		Pending: []int64{},
		Orphans: []int64{},
		Invalid: []string{},
	}

	inputs := make(map[int64]struct{})
	for _, f := range convert.Formats {
		prefix := path.Join(cfg.InputPrefix, string(f))
		names, err := storage.ListNames(ctx, client, bucket, prefix)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			id, ok := convert.ParseObjectID(name, f.Extension())
			if !ok {
				report.Invalid = append(report.Invalid, path.Join(prefix, name))
				continue
			}
			inputs[id] = struct{}{}
			report.Inputs[f]++
		}
	}

	names, err := storage.ListNames(ctx, client, bucket, cfg.OutputPrefix)
	if err != nil {
		return nil, err
	}
	outputs := make(map[int64]struct{}, len(names))
	for _, name := range names {
		id, ok := convert.ParseObjectID(name, ".json")
		if !ok {
			report.Invalid = append(report.Invalid, path.Join(cfg.OutputPrefix, name))
			continue
		}
		outputs[id] = struct{}{}
	}
	report.Outputs = len(outputs)

	for id := range inputs {
		if _, ok := outputs[id]; !ok {
			report.Pending = append(report.Pending, id)
		}
	}
	for id := range outputs {
		if _, ok := inputs[id]; !ok {
			report.Orphans = append(report.Orphans, id)
		}
	}
	sortIDs(report.Pending)
	sortIDs(report.Orphans)
	sort.Strings(report.Invalid)
	return report, nil
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
