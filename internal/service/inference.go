package service

import "context"

// InferenceService is the model-inference collaborator: it takes résumé and
// job-description text and returns the model's raw textual output, expected
// (but not guaranteed) to contain one JSON object. Implementations run the
// model deterministically (temperature 0) and never retry; a failed call
// surfaces as an external-service error and the request as a whole is
// retryable.
type InferenceService interface {
	AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (string, error)
}
