// Package boundary loads the administrative boundary gazetteer: a GeoJSON
// FeatureCollection on disk, optionally kept warm in Redis between runs.
package boundary

import (
	"context"
	"encoding/json"
	"os"

	"golang.org/x/sync/singleflight"

	"github.com/teraseg/geoinsight/internal/config"
	"github.com/teraseg/geoinsight/internal/domain/region"
	"github.com/teraseg/geoinsight/internal/infrastructure/database/redis"
	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
	"github.com/teraseg/geoinsight/pkg/errors"
)

const cacheKey = "boundary:features"

// Store reads boundary features for the pipeline.  Concurrent loads of a
// cold store are collapsed into one file read.
type Store struct {
	cfg   config.BoundaryConfig
	cache *redis.Cache
	log   logging.Logger
	group singleflight.Group
}

// NewStore builds a Store.  cache may be nil, in which case every call reads
// the file.
func NewStore(cfg config.BoundaryConfig, cache *redis.Cache, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{cfg: cfg, cache: cache, log: log.Named("boundary")}
}

// Features returns the gazetteer's feature list.
func (s *Store) Features(ctx context.Context) ([]*region.Feature, error) {
	if s.cache != nil {
		var cached []*region.Feature
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.log.Warn("boundary cache unavailable, reading from file", logging.Err(err))
		} else if hit {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*region.Feature), nil
}

func (s *Store) load(ctx context.Context) ([]*region.Feature, error) {
	raw, err := os.ReadFile(s.cfg.GeoJSONPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBoundaryLoadFailed, "cannot read boundary file").
			WithDetail(s.cfg.GeoJSONPath)
	}

	var fc region.FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBoundaryDecode, "boundary file is not valid GeoJSON")
	}
	if len(fc.Features) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyGazetteer, "boundary file contains no features")
	}

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if err := s.cache.Set(ctx, cacheKey, fc.Features, s.cfg.CacheTTL); err != nil {
			s.log.Warn("cannot cache boundary snapshot", logging.Err(err))
		}
	}
	s.log.Info("boundary gazetteer loaded",
		logging.String("path", s.cfg.GeoJSONPath),
		logging.Int("features", len(fc.Features)))
	return fc.Features, nil
}
