// Package jd resolves the job description an analysis runs against: a curated
// company preset when one exists and is fresh, otherwise whatever text the
// caller supplied.
package jd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Preset is one curated job description for a (company, role) pair.
type Preset struct {
	Text        string    `json:"jd"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// PresetLookup is the preset-data collaborator contract.
type PresetLookup interface {
	Lookup(company, role string) (Preset, bool)
}

// PresetStore holds curated job descriptions keyed by company then role.
type PresetStore struct {
	presets map[string]map[string]Preset
}

// NewPresetStore builds a store from an in-memory mapping. Tests use this.
func NewPresetStore(presets map[string]map[string]Preset) *PresetStore {
	if presets == nil {
		presets = map[string]map[string]Preset{}
	}
	return &PresetStore{presets: presets}
}

// LoadPresetStore reads the preset JSON file. A missing file yields an empty
// store so every resolution falls back to user-supplied text.
func LoadPresetStore(path string) (*PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPresetStore(nil), nil
		}
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	var presets map[string]map[string]Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}
	return NewPresetStore(presets), nil
}

func (s *PresetStore) Lookup(company, role string) (Preset, bool) {
	roles, ok := s.presets[company]
	if !ok {
		return Preset{}, false
	}
	preset, ok := roles[role]
	return preset, ok
}
