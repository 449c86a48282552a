package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"

	"match-canon/core/logger"
	"match-canon/core/storage"
	"match-canon/feature/canon"
	"match-canon/feature/mjlog"
	"match-canon/feature/mjson"

	"go.uber.org/zap"
)

// Outcome describes what happened to one stored match.
type Outcome string

const (
	OutcomeConverted Outcome = "converted"
	OutcomeSkipped   Outcome = "skipped"
)

// Service converts raw logs into canonical matches and stores the results.
type Service struct {
	client storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger

	mjlog *mjlog.Decoder
	mjson *mjson.Decoder
}

// NewService creates a conversion service. Both decoders share resolver.
func NewService(client storage.Client, bucket string, cfg Config, resolver canon.Resolver, logger *zap.Logger) *Service {
	startingScore := cfg.StartingScore
	if startingScore <= 0 {
		startingScore = mjlog.DefaultStartingScore
	}
	return &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
		mjlog:  mjlog.NewDecoder(resolver, startingScore),
		mjson:  mjson.NewDecoder(resolver),
	}
}

// Decode converts one raw log held in memory.
func (s *Service) Decode(format Format, id int64, content []byte) (*canon.Match, error) {
	switch format {
	case FormatMjlog:
		return s.mjlog.Decode(id, content)
	case FormatMjson:
		return s.mjson.Decode(id, content)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// InputKey returns the object key of a raw log.
func (s *Service) InputKey(format Format, id int64) string {
	return path.Join(s.cfg.InputPrefix, string(format), strconv.FormatInt(id, 10)+format.Extension())
}

// OutputKey returns the object key of a canonical record.
func (s *Service) OutputKey(id int64) string {
	return path.Join(s.cfg.OutputPrefix, strconv.FormatInt(id, 10)+".json")
}

// DecodeStored reads and decodes a stored raw log.
func (s *Service) DecodeStored(ctx context.Context, format Format, id int64) (*canon.Match, error) {
	content, err := storage.ReadObject(ctx, s.client, s.bucket, s.InputKey(format, id))
	if err != nil {
		return nil, err
	}
	return s.Decode(format, id, content)
}

// ConvertStored converts a stored raw log and writes its canonical record. An existing
// record is left alone unless force is set.
func (s *Service) ConvertStored(ctx context.Context, format Format, id int64, force bool) (Outcome, error) {
	if !force {
		exists, err := storage.Exists(ctx, s.client, s.bucket, s.OutputKey(id))
		if err != nil {
			return "", err
		}
		if exists {
			logger.WithMatch(s.logger, id, string(format)).Debug("Output exists, skipping")
			return OutcomeSkipped, nil
		}
	}
	if err := s.convertOne(ctx, format, id); err != nil {
		return "", err
	}
	return OutcomeConverted, nil
}

func (s *Service) convertOne(ctx context.Context, format Format, id int64) error {
	match, err := s.DecodeStored(ctx, format, id)
	if err != nil {
		return err
	}
	data, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("encode match %d: %w", id, err)
	}
	return storage.WriteObject(ctx, s.client, s.bucket, s.OutputKey(id), data, "application/json")
}

// ListInputs returns the ids of the stored raw logs of format, and the object names
// that do not follow the <id><ext> pattern.
func (s *Service) ListInputs(ctx context.Context, format Format) (ids []int64, invalid []string, err error) {
	names, err := storage.ListNames(ctx, s.client, s.bucket, path.Join(s.cfg.InputPrefix, string(format)))
	if err != nil {
		return nil, nil, err
	}
	for _, name := range names {
		id, ok := ParseObjectID(name, format.Extension())
		if !ok {
			invalid = append(invalid, name)
			continue
		}
		ids = append(ids, id)
	}
	return ids, invalid, nil
}

// ExistingOutputs returns the ids that already have a canonical record.
func (s *Service) ExistingOutputs(ctx context.Context) (map[int64]struct{}, error) {
	names, err := storage.ListNames(ctx, s.client, s.bucket, s.cfg.OutputPrefix)
	if err != nil {
		return nil, err
	}
	existing := make(map[int64]struct{}, len(names))
	for _, name := range names {
		if id, ok := ParseObjectID(name, ".json"); ok {
			existing[id] = struct{}{}
		}
	}
	return existing, nil
}
