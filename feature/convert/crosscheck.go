package convert

import (
	"context"
	"sync"
	"time"

	"match-canon/core/logger"
	"match-canon/core/reconcile"
	"match-canon/core/storage"
	"match-canon/feature/canon"

	"go.uber.org/zap"
)

// storageSource exposes the stored raw logs of one format as a cross-check source.
type storageSource struct {
	svc    *Service
	format Format
}

// Source returns the stored raw logs of format as a reconcile.Source.
func (s *Service) Source(format Format) reconcile.Source {
	return &storageSource{svc: s, format: format}
}

func (src *storageSource) Name() string {
	return src.svc.bucket + "/" + src.svc.cfg.InputPrefix + "/" + string(src.format)
}

func (src *storageSource) LoadIndex(ctx context.Context) (*reconcile.Index, error) {
	ids, _, err := src.svc.ListInputs(ctx, src.format)
	if err != nil {
		return nil, err
	}

	idx := reconcile.NewIndex()
	var mu sync.Mutex
	err = src.svc.forEach(ctx, ids, func(ctx context.Context, id int64) {
		match, err := src.svc.DecodeStored(ctx, src.format, id)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			logger.WithMatch(src.svc.logger, id, string(src.format)).Warn("Cross-check decode failed", zap.Error(err))
			idx.Failures[id] = err.Error()
			return
		}
		idx.Matches[id] = match
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// CrosscheckSpec pairs the stored Format A and Format B logs.
func (s *Service) CrosscheckSpec() *reconcile.Spec {
	return &reconcile.Spec{
		Left:     s.Source(FormatMjlog),
		Right:    s.Source(FormatMjson),
		CacheTTL: time.Duration(s.cfg.CrosscheckCacheSeconds) * time.Second,
	}
}

// Crosscheck compares every match stored in both formats. Indices are reused for the
// configured cache time unless refresh is set.
func (s *Service) Crosscheck(ctx context.Context, refresh bool) (*reconcile.Report, error) {
	spec := s.CrosscheckSpec()
	if refresh {
		reconcile.InvalidateCache(spec)
	}
	return reconcile.ReconcileCached(ctx, spec)
}

// CrosscheckOne compares the two stored logs of a single match. A log that fails to
// decode is reported in the result.
func (s *Service) CrosscheckOne(ctx context.Context, id int64) (reconcile.Result, error) {
	var result reconcile.Result
	sides := make(map[Format]*sideResult, len(Formats))
	for _, f := range Formats {
		side, err := s.loadSide(ctx, f, id)
		if err != nil {
			return result, err
		}
		sides[f] = side
	}

	left, right := sides[FormatMjlog], sides[FormatMjson]
	result = reconcile.ReconcileOne(id, left.match, right.match)
	result.LeftPresent, result.RightPresent = left.present, right.present
	result.LeftError, result.RightError = left.err, right.err
	return result, nil
}

type sideResult struct {
	present bool
	match   *canon.Match
	err     string
}

func (s *Service) loadSide(ctx context.Context, format Format, id int64) (*sideResult, error) {
	exists, err := storage.Exists(ctx, s.client, s.bucket, s.InputKey(format, id))
	if err != nil || !exists {
		return &sideResult{}, err
	}
	match, err := s.DecodeStored(ctx, format, id)
	if err != nil {
		if !canon.IsDecodeError(err) {
			return nil, err
		}
		return &sideResult{present: true, err: err.Error()}, nil
	}
	return &sideResult{present: true, match: match}, nil
}
