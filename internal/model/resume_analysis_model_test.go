package model

import (
	"testing"
	"time"

	"github.com/fadilmartias/resume-analyzer/internal/analysis"
	"github.com/fadilmartias/resume-analyzer/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestResumeAnalysis_RecordRoundTrip(t *testing.T) {
	updated := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	record := &dto.AnalysisRecord{
		Analysis: analysis.Result{
			Summary:      "solid candidate",
			Skills:       []analysis.Requirement{{Requirement: "Go", Match: analysis.MatchStatusMatched}},
			Strengths:    []analysis.Requirement{{Requirement: "Go", Match: analysis.MatchStatusMatched}},
			Weaknesses:   []analysis.Requirement{},
			Improvements: []string{"Add metrics"},
		},
		Scores: analysis.Scores{
			Overall: 100, SkillsMatch: 100, AtsCompatibility: 95,
			MatchedRequirements: 1, TotalRequirements: 1,
			JDQuality: analysis.JDQuality{Length: 200, KeywordMatches: 4},
		},
		RejectionSummary: "Candidate aligns well with most role requirements.",
		FormatAnalysis:   analysis.FormatFinding{PassedChecks: []string{"Contact information detected"}},
		Meta: dto.ResolutionMeta{
			Company:       "TechNova",
			Role:          "Backend Engineer",
			JDSource:      "preset",
			JDLastUpdated: &updated,
		},
	}

	row := NewResumeAnalysis("alice", "abc123", record)

	assert.Equal(t, "alice", row.UserID)
	assert.Equal(t, "abc123", row.ResumeHash)
	assert.Equal(t, "TechNova", row.Company)
	assert.Equal(t, "Backend Engineer", row.Role)

	rebuilt := row.Record()
	assert.Equal(t, record, rebuilt)
}
