package convert

import (
	"context"
	"sort"
	"sync"

	"match-canon/core/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Failure records a match that could not be converted.
type Failure struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// BatchReport summarizes a batch conversion.
type BatchReport struct {
	Format    Format    `json:"format"`
	Converted []int64   `json:"converted"`
	Skipped   []int64   `json:"skipped"`
	Invalid   []string  `json:"invalid"`
	Failed    []Failure `json:"failed"`
}

// ConvertBatch converts every stored raw log of format. Matches whose record exists
// are skipped unless force is set. A failing match is recorded in the report and never
// stops the batch; only cancellation of ctx or a listing failure returns an error.
func (s *Service) ConvertBatch(ctx context.Context, format Format, force bool) (*BatchReport, error) {
	ids, invalid, err := s.ListInputs(ctx, format)
	if err != nil {
		return nil, err
	}
	for _, name := range invalid {
		s.logger.Warn("Invalid input name", zap.String("format", string(format)), zap.String("name", name))
	}

	existing := map[int64]struct{}{}
	if !force {
		if existing, err = s.ExistingOutputs(ctx); err != nil {
			return nil, err
		}
	}

	report := &BatchReport{
		Format:    format,
		Converted: []int64{},
		Skipped:   []int64{},
		Invalid:   invalid,
		Failed:    []Failure{},
	}
	if report.Invalid == nil {
		report.Invalid = []string{}
	}

	var mu sync.Mutex
	err = s.forEach(ctx, ids, func(ctx context.Context, id int64) {
		l := logger.WithMatch(s.logger, id, string(format))
		if _, ok := existing[id]; ok {
			l.Debug("Skipped")
			mu.Lock()
			report.Skipped = append(report.Skipped, id)
			mu.Unlock()
			return
		}

		err := s.convertOne(ctx, format, id)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			l.Error("Conversion failed", zap.Error(err))
			report.Failed = append(report.Failed, Failure{ID: id, Error: err.Error()})
			return
		}
		l.Debug("Converted")
		report.Converted = append(report.Converted, id)
	})

	sortIDs(report.Converted)
	sortIDs(report.Skipped)
	sort.Slice(report.Failed, func(i, j int) bool { return report.Failed[i].ID < report.Failed[j].ID })

	s.logger.Info("Batch finished",
		zap.String("format", string(format)),
		zap.Int("converted", len(report.Converted)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("failed", len(report.Failed)),
		zap.Int("invalid", len(report.Invalid)),
	)
	return report, err
}

// forEach runs fn for every id on at most Workers goroutines. It stops scheduling on
// cancellation and returns the context error.
func (s *Service) forEach(ctx context.Context, ids []int64, fn func(context.Context, int64)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers())
	for _, id := range ids {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(gctx, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
