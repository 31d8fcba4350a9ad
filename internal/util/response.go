package util

import (
	"runtime/debug"

	"github.com/fadilmartias/resume-analyzer/internal/config"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponseFormat struct {
	Code    int
	Message string
	Details string
}

type OrderedErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

// ErrorResponse sends the standard error envelope: a short reason under
// "error", diagnostic detail under "details", and a stack trace only outside
// production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Error:   params.Message,
		Details: params.Details,
	}
	if response.Details == "" && len(errs) > 0 && errs[0] != nil {
		response.Details = errs[0].Error()
	}
	if config.LoadAppConfig().Env != "production" && len(errs) > 0 && errs[0] != nil {
		response.Trace = string(debug.Stack())
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(response)
}
