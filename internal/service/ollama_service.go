package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/resume-analyzer/internal/apperror"
	"github.com/fadilmartias/resume-analyzer/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OllamaService calls a local Ollama instance for résumé analysis. This is
// the default inference provider.
type OllamaService struct {
	client *resty.Client
	model  string
}

func NewOllamaService() *OllamaService {
	ollamaConfig := config.LoadOllamaConfig()
	return &OllamaService{
		client: resty.New().SetBaseURL(ollamaConfig.BaseURL),
		model:  ollamaConfig.Model,
	}
}

func (s *OllamaService) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":  s.model,
			"prompt": BuildAnalysisPrompt(resumeText, jobDescription),
			"stream": false,
			"options": map[string]any{
				"temperature":    0,
				"top_p":          0.05,
				"repeat_penalty": 1.2,
			},
		}).
		Post("/api/generate")
	if err != nil {
		return "", apperror.New(apperror.KindExternalService, "model service unreachable", err)
	}
	if resp.IsError() {
		return "", apperror.New(apperror.KindExternalService, "model service request failed",
			fmt.Errorf("ollama returned status %d: %s", resp.StatusCode(), resp.String()))
	}

	text := gjson.Get(resp.String(), "response").String()
	if text == "" {
		return "", apperror.New(apperror.KindExternalService, "model service request failed",
			fmt.Errorf("ollama response carried no output text"))
	}
	return text, nil
}
