package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/resume-analyzer/internal/apperror"
	"github.com/fadilmartias/resume-analyzer/internal/config"
	"google.golang.org/genai"
)

// GeminiService is the hosted inference provider, selected with
// MODEL_PROVIDER=gemini. Calls run at temperature 0 and are not retried; a
// failed computation is never cached, so the next request recomputes.
type GeminiService struct {
	client         *genai.Client
	model          string
	requestTimeout time.Duration
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:         client,
		model:          geminiConfig.Model,
		requestTimeout: 90 * time.Second,
	}, nil
}

func (s *GeminiService) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	}

	result, err := s.client.Models.GenerateContent(
		timeoutCtx,
		s.model,
		genai.Text(BuildAnalysisPrompt(resumeText, jobDescription)),
		genConfig,
	)
	if err != nil {
		return "", apperror.New(apperror.KindExternalService, "model service request failed", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", apperror.New(apperror.KindExternalService, "model service request failed", err)
	}

	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
