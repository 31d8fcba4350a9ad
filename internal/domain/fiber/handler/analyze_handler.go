package handler

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/resume-analyzer/internal/apperror"
	"github.com/fadilmartias/resume-analyzer/internal/dto"
	"github.com/fadilmartias/resume-analyzer/internal/middleware"
	"github.com/fadilmartias/resume-analyzer/internal/usecase"
	"github.com/fadilmartias/resume-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxResumeSize = 5 * 1024 * 1024

type AnalyzeHandler struct {
	uc *usecase.AnalyzeUsecase
}

func NewAnalyzeHandler(uc *usecase.AnalyzeUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App, auth fiber.Handler) {
	app.Post("/api/analyze", auth, middleware.RateLimiter(10, 1*time.Minute), h.Analyze)
}

func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	resumeText, err := h.processResume(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperror.HTTPStatus(err),
			Message: apperror.UserMessage(err),
		}, err)
	}

	userJD := c.FormValue("jobDescription")
	company := c.FormValue("company")
	if company == "" {
		company = "General"
	}
	role := c.FormValue("role")

	result, err := h.uc.Analyze(c.UserContext(), resumeText, userJD, company, role, middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    apperror.HTTPStatus(err),
			Message: apperror.UserMessage(err),
		}, err)
	}

	return c.JSON(dto.AnalyzeResponse{
		Success:        true,
		AnalysisRecord: result.Record,
		Cached:         result.Cached.ResponseValue(),
	})
}

// processResume pulls the first uploaded file out of the multipart form and
// extracts its text. The upload lands in a per-request temp file that is
// removed before returning, so concurrent uploads sharing a filename never
// touch each other.
func (h *AnalyzeHandler) processResume(c *fiber.Ctx) (string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", apperror.New(apperror.KindValidation, "No resume uploaded", err)
	}

	var file *multipart.FileHeader
	for _, files := range form.File {
		if len(files) > 0 {
			file = files[0]
			break
		}
	}
	if file == nil {
		return "", apperror.New(apperror.KindValidation, "No resume uploaded", nil)
	}

	if file.Size > maxResumeSize {
		return "", apperror.New(apperror.KindValidation, "Resume file is too large (max 5MB)", nil)
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return "", apperror.New(apperror.KindValidation, "Unsupported resume file type", nil)
	}

	tmpFile, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp file for resume upload: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(file, tmpPath); err != nil {
		return "", fmt.Errorf("save resume upload: %w", err)
	}

	content, err := util.ExtractPDFText(tmpPath)
	if err != nil {
		return "", apperror.New(apperror.KindValidation, "Failed to extract resume text", err)
	}
	if strings.TrimSpace(content) == "" {
		return "", apperror.New(apperror.KindValidation, "PDF contains no readable text", nil)
	}

	return content, nil
}
