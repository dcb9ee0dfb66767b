package region

import (
	"strings"

	"github.com/teraseg/geoinsight/internal/infrastructure/monitoring/logging"
)

// Index resolves normalized province names to boundary features.
//
// Keys keep their insertion order so that partial matching is reproducible:
// when several keys could partially match an input, the first one registered
// wins (first-hit, not best-hit).
type Index struct {
	keys  []string
	byKey map[string]*Feature
	log   logging.Logger
}

// IndexOption customizes index construction.
type IndexOption func(*indexOptions)

type indexOptions struct {
	normalizer *Normalizer
	log        logging.Logger
}

// WithNormalizer additionally registers the normalized form of every name
// key.  The health and food pipelines use this because their upstream labels
// only align with the gazetteer after normalization.
func WithNormalizer(n *Normalizer) IndexOption {
	return func(o *indexOptions) { o.normalizer = n }
}

// WithIndexLogger sets the logger used to report key collisions.
func WithIndexLogger(log logging.Logger) IndexOption {
	return func(o *indexOptions) { o.log = log }
}

// BuildIndex registers every candidate name field of every feature, in
// feature order then field-priority order, as UPPER(TRIM(value)) → feature.
//
// A later feature overwrites an earlier feature's colliding key
// (last-write-wins).  That is a known data-quality compromise: gazetteer
// exports occasionally repeat a name, and downstream output parity depends on
// keeping the overwrite behavior rather than rejecting the duplicate.
func BuildIndex(features []*Feature, opts ...IndexOption) *Index {
	o := indexOptions{log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{
		byKey: make(map[string]*Feature, len(features)*2),
		log:   o.log,
	}
	for _, f := range features {
		seen := map[string]bool{}
		for _, field := range nameFields {
			v, ok := f.Properties[field]
			if !ok {
				continue
			}
			s, ok := v.(string)
			if !ok || strings.TrimSpace(s) == "" {
				continue
			}
			key := strings.ToUpper(strings.TrimSpace(s))
			idx.register(key, f, seen)
			if o.normalizer != nil {
				idx.register(o.normalizer.Normalize(key), f, seen)
			}
		}
	}
	return idx
}

// register adds key → f unless this feature already registered the key.
// Cross-feature collisions overwrite and are logged at debug level.
func (idx *Index) register(key string, f *Feature, seen map[string]bool) {
	if key == "" || seen[key] {
		return
	}
	seen[key] = true
	if prev, exists := idx.byKey[key]; exists {
		if prev != f {
			idx.log.Debug("boundary index key collision, keeping latest feature",
				logging.String("key", key))
		}
		idx.byKey[key] = f
		return
	}
	idx.byKey[key] = f
	idx.keys = append(idx.keys, key)
}

// Len returns the number of distinct keys in the index.
func (idx *Index) Len() int { return len(idx.keys) }

// Resolve maps a normalized name to a boundary feature.  Exact key lookup
// wins; otherwise the first registered key where either string contains the
// other is accepted.  Returns false when nothing matches, in which case the
// caller skips the row rather than aborting the run.
func (idx *Index) Resolve(name string) (*Feature, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return nil, false
	}
	if f, ok := idx.byKey[name]; ok {
		return f, true
	}
	for _, key := range idx.keys {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return idx.byKey[key], true
		}
	}
	return nil, false
}
