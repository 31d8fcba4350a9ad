package dto

import (
	"time"

	"github.com/fadilmartias/resume-analyzer/internal/analysis"
)

// CacheTag reports which tier, if any, served an analysis.
type CacheTag string

const (
	CacheNone     CacheTag = ""
	CacheMemory   CacheTag = "memory"
	CacheDatabase CacheTag = "database"
)

// ResponseValue renders the tag the way the endpoint reports it: false for a
// fresh computation, the tier name otherwise.
func (t CacheTag) ResponseValue() any {
	if t == CacheNone {
		return false
	}
	return string(t)
}

// ResolutionMeta records how the job description was chosen.
type ResolutionMeta struct {
	Company       string     `json:"company"`
	Role          string     `json:"role"`
	JDSource      string     `json:"jdSource"`
	JDLastUpdated *time.Time `json:"jdLastUpdated"`
}

// AnalysisRecord is the full analysis payload, as cached, persisted, and
// returned to the client.
type AnalysisRecord struct {
	Analysis         analysis.Result        `json:"analysis"`
	Scores           analysis.Scores        `json:"scores"`
	RejectionSummary string                 `json:"rejectionSummary"`
	FormatAnalysis   analysis.FormatFinding `json:"formatAnalysis"`
	Meta             ResolutionMeta         `json:"meta"`
}

// AnalyzeResponse spreads the record fields at the top level of the success
// payload next to the success flag and cache indicator.
type AnalyzeResponse struct {
	Success bool `json:"success"`
	*AnalysisRecord
	Cached any `json:"cached"`
}
