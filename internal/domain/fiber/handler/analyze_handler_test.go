package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/fadilmartias/resume-analyzer/internal/cache"
	"github.com/fadilmartias/resume-analyzer/internal/jd"
	"github.com/fadilmartias/resume-analyzer/internal/middleware"
	"github.com/fadilmartias/resume-analyzer/internal/model"
	"github.com/fadilmartias/resume-analyzer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type stubRepo struct {
	creates int32
}

func (s *stubRepo) Create(record *model.ResumeAnalysis) error {
	atomic.AddInt32(&s.creates, 1)
	return nil
}

func (s *stubRepo) FindByOwnerKey(userID, resumeHash, company, role string) (*model.ResumeAnalysis, error) {
	return nil, nil
}

type stubInference struct {
	calls int32
}

func (s *stubInference) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	return `{"summary":"","required_skills":[],"improvements":[]}`, nil
}

func newTestApp() (*fiber.App, *stubInference, *stubRepo) {
	repo := &stubRepo{}
	inference := &stubInference{}
	uc := usecase.NewAnalyzeUsecase(repo, inference, jd.NewPresetStore(nil), cache.NewAnalysisCache())

	app := fiber.New()
	auth := func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, "user-1")
		return c.Next()
	}
	NewAnalyzeHandler(uc).RegisterRoutes(app, auth)
	return app, inference, repo
}

func multipartBody(t *testing.T, filename string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.WriteField("jobDescription", "Backend engineer role."))
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestAnalyze_NoMultipartBodyRejected(t *testing.T) {
	app, inference, repo := newTestApp()

	req := httptest.NewRequest(fiber.MethodPost, "/api/analyze", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No resume uploaded", gjson.GetBytes(body, "error").String())
	assert.False(t, gjson.GetBytes(body, "success").Exists())
	assert.Equal(t, int32(0), atomic.LoadInt32(&inference.calls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&repo.creates))
}

func TestAnalyze_MissingFileFieldRejected(t *testing.T) {
	app, inference, repo := newTestApp()

	buf, contentType := multipartBody(t, "", nil)
	req := httptest.NewRequest(fiber.MethodPost, "/api/analyze", buf)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No resume uploaded", gjson.GetBytes(body, "error").String())
	assert.False(t, gjson.GetBytes(body, "success").Exists())
	assert.Equal(t, int32(0), atomic.LoadInt32(&inference.calls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&repo.creates))
}

func TestAnalyze_NonPDFUploadRejected(t *testing.T) {
	app, inference, repo := newTestApp()

	buf, contentType := multipartBody(t, "resume.txt", []byte("plain text resume"))
	req := httptest.NewRequest(fiber.MethodPost, "/api/analyze", buf)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Unsupported resume file type", gjson.GetBytes(body, "error").String())
	assert.Equal(t, int32(0), atomic.LoadInt32(&inference.calls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&repo.creates))
}

func TestAnalyze_UnreadablePDFLeavesNothingBehind(t *testing.T) {
	app, inference, repo := newTestApp()

	tempBefore, err := filepath.Glob(filepath.Join(os.TempDir(), "resume-*.pdf"))
	require.NoError(t, err)

	buf, contentType := multipartBody(t, "resume.pdf", []byte("not a pdf at all"))
	req := httptest.NewRequest(fiber.MethodPost, "/api/analyze", buf)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Failed to extract resume text", gjson.GetBytes(body, "error").String())
	assert.Equal(t, int32(0), atomic.LoadInt32(&inference.calls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&repo.creates))

	// No shared upload directory and no leftover temp file.
	_, statErr := os.Stat("./uploads")
	assert.True(t, os.IsNotExist(statErr))
	tempAfter, err := filepath.Glob(filepath.Join(os.TempDir(), "resume-*.pdf"))
	require.NoError(t, err)
	assert.Len(t, tempAfter, len(tempBefore))
}
