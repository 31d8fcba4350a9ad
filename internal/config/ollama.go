package config

import (
	"os"
	"sync"
)

type OllamaConfig struct {
	BaseURL string
	Model   string
}

var (
	ollamaConfig *OllamaConfig
	ollamaOnce   sync.Once
)

func LoadOllamaConfig() *OllamaConfig {
	ollamaOnce.Do(func() {
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			model = "llama3"
		}
		ollamaConfig = &OllamaConfig{
			BaseURL: baseURL,
			Model:   model,
		}
	})
	return ollamaConfig
}
