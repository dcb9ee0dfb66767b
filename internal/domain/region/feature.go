// Package region holds the administrative-boundary domain model: GeoJSON-like
// boundary features, province name normalization, and the name-to-boundary
// matcher used by every analysis pipeline.
package region

import "encoding/json"

// nameFields lists the property keys that may carry a boundary's name, in
// priority order.  Different gazetteer exports use different keys, so the
// matcher tries each in turn.
var nameFields = []string{"NAMOBJ", "name", "WADMPR", "Provinsi"}

// Feature is a GeoJSON-like boundary feature.  Geometry is kept opaque — the
// pipeline never inspects coordinates, it only joins on names and attaches
// analysis properties for map rendering.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   json.RawMessage        `json:"geometry,omitempty"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection is a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// NewFeatureCollection wraps features in a FeatureCollection envelope.
func NewFeatureCollection(features []*Feature) *FeatureCollection {
	if features == nil {
		features = []*Feature{}
	}
	return &FeatureCollection{Type: "FeatureCollection", Features: features}
}

// Clone returns a copy of the feature whose property map is independent of
// the original.  Geometry bytes are shared; they are read-only throughout a
// run.  One boundary may be resolved by several input rows, so pipelines must
// clone before attaching per-row analysis properties.
func (f *Feature) Clone() *Feature {
	props := make(map[string]interface{}, len(f.Properties)+1)
	for k, v := range f.Properties {
		props[k] = v
	}
	return &Feature{
		Type:       f.Type,
		Geometry:   f.Geometry,
		Properties: props,
	}
}

// Name returns the first non-empty name property in priority order, or ""
// when the feature carries none.
func (f *Feature) Name() string {
	for _, field := range nameFields {
		if v, ok := f.Properties[field]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// SetAnalysis attaches the analysis property bag under the "analysis" key.
func (f *Feature) SetAnalysis(analysis interface{}) {
	if f.Properties == nil {
		f.Properties = make(map[string]interface{}, 1)
	}
	f.Properties["analysis"] = analysis
}
