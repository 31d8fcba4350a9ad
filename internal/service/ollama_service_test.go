package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/resume-analyzer/internal/apperror"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaService_AnalyzeResume(t *testing.T) {
	var gotBody map[string]any
	status := http.StatusOK
	response := `{"model":"llama3","response":"{\"summary\":\"ok\",\"required_skills\":[],\"improvements\":[]}","done":true}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	defer srv.Close()

	svc := &OllamaService{client: resty.New().SetBaseURL(srv.URL), model: "llama3"}

	t.Run("sends deterministic request and returns raw text", func(t *testing.T) {
		raw, err := svc.AnalyzeResume(context.Background(), "resume text", "jd text")
		require.NoError(t, err)
		assert.Contains(t, raw, `"summary"`)

		assert.Equal(t, "llama3", gotBody["model"])
		assert.Equal(t, false, gotBody["stream"])
		options, ok := gotBody["options"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(0), options["temperature"])

		prompt, ok := gotBody["prompt"].(string)
		require.True(t, ok)
		assert.Contains(t, prompt, "resume text")
		assert.Contains(t, prompt, "jd text")
	})

	t.Run("empty job description is sent as Not provided", func(t *testing.T) {
		_, err := svc.AnalyzeResume(context.Background(), "resume text", "")
		require.NoError(t, err)

		prompt, ok := gotBody["prompt"].(string)
		require.True(t, ok)
		assert.Contains(t, prompt, `"""Not provided"""`)
	})

	t.Run("non-success status is an external service error", func(t *testing.T) {
		status = http.StatusInternalServerError
		defer func() { status = http.StatusOK }()

		_, err := svc.AnalyzeResume(context.Background(), "resume text", "jd text")
		require.Error(t, err)
		assert.Equal(t, apperror.KindExternalService, apperror.KindOf(err))
	})

	t.Run("missing output text is an external service error", func(t *testing.T) {
		response = `{"model":"llama3","done":true}`

		_, err := svc.AnalyzeResume(context.Background(), "resume text", "jd text")
		require.Error(t, err)
		assert.Equal(t, apperror.KindExternalService, apperror.KindOf(err))
	})
}

func TestOllamaService_UnreachableEndpoint(t *testing.T) {
	svc := &OllamaService{client: resty.New().SetBaseURL("http://127.0.0.1:1"), model: "llama3"}

	_, err := svc.AnalyzeResume(context.Background(), "resume text", "jd text")
	require.Error(t, err)
	assert.Equal(t, apperror.KindExternalService, apperror.KindOf(err))
}
