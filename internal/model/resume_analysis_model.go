package model

import (
	"time"

	"github.com/fadilmartias/resume-analyzer/internal/analysis"
	"github.com/fadilmartias/resume-analyzer/internal/dto"
	"github.com/google/uuid"
)

// ResumeAnalysis is the durable, identity-scoped analysis record. The
// composite unique index enforces at most one record per
// (user, résumé hash, company, role).
type ResumeAnalysis struct {
	ID               uuid.UUID              `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           string                 `gorm:"type:varchar(64);uniqueIndex:ux_resume_analyses_owner_key,priority:1" json:"userId"`
	ResumeHash       string                 `gorm:"type:char(64);uniqueIndex:ux_resume_analyses_owner_key,priority:2" json:"resumeHash"`
	Company          string                 `gorm:"type:varchar(255);uniqueIndex:ux_resume_analyses_owner_key,priority:3" json:"company"`
	Role             string                 `gorm:"type:varchar(255);uniqueIndex:ux_resume_analyses_owner_key,priority:4" json:"role"`
	Analysis         analysis.Result        `gorm:"type:jsonb;serializer:json" json:"analysis"`
	Scores           analysis.Scores        `gorm:"type:jsonb;serializer:json" json:"scores"`
	FormatAnalysis   analysis.FormatFinding `gorm:"type:jsonb;serializer:json" json:"formatAnalysis"`
	RejectionSummary string                 `gorm:"type:text" json:"rejectionSummary"`
	JDSource         string                 `gorm:"type:varchar(50)" json:"jdSource"`
	JDLastUpdated    *time.Time             `json:"jdLastUpdated"`
	CreatedAt        time.Time              `json:"createdAt"`
}

func (ResumeAnalysis) TableName() string {
	return "resume_analyses"
}

// NewResumeAnalysis builds the persistent row for a freshly computed record.
func NewResumeAnalysis(userID, resumeHash string, record *dto.AnalysisRecord) *ResumeAnalysis {
	return &ResumeAnalysis{
		UserID:           userID,
		ResumeHash:       resumeHash,
		Company:          record.Meta.Company,
		Role:             record.Meta.Role,
		Analysis:         record.Analysis,
		Scores:           record.Scores,
		FormatAnalysis:   record.FormatAnalysis,
		RejectionSummary: record.RejectionSummary,
		JDSource:         record.Meta.JDSource,
		JDLastUpdated:    record.Meta.JDLastUpdated,
		CreatedAt:        time.Now(),
	}
}

// Record rebuilds the response payload from a stored row.
func (m *ResumeAnalysis) Record() *dto.AnalysisRecord {
	return &dto.AnalysisRecord{
		Analysis:         m.Analysis,
		Scores:           m.Scores,
		RejectionSummary: m.RejectionSummary,
		FormatAnalysis:   m.FormatAnalysis,
		Meta: dto.ResolutionMeta{
			Company:       m.Company,
			Role:          m.Role,
			JDSource:      m.JDSource,
			JDLastUpdated: m.JDLastUpdated,
		},
	}
}
