package config

import (
	"os"
	"sync"
)

type PresetConfig struct {
	Path string
}

var (
	presetConfig *PresetConfig
	presetOnce   sync.Once
)

func LoadPresetConfig() *PresetConfig {
	presetOnce.Do(func() {
		path := os.Getenv("COMPANY_JD_PATH")
		if path == "" {
			path = "./data/company_jds.json"
		}
		presetConfig = &PresetConfig{Path: path}
	})
	return presetConfig
}
