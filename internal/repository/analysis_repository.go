package repository

import (
	"errors"

	"github.com/fadilmartias/resume-analyzer/internal/model"
	"gorm.io/gorm"
)

type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db}
}

func (r *AnalysisRepository) Create(record *model.ResumeAnalysis) error {
	return r.db.Create(record).Error
}

// FindByOwnerKey looks up the durable record for one identity's analysis of a
// résumé against a (company, role). Returns (nil, nil) on a clean miss.
func (r *AnalysisRepository) FindByOwnerKey(userID, resumeHash, company, role string) (*model.ResumeAnalysis, error) {
	var record model.ResumeAnalysis
	err := r.db.
		Where("user_id = ? AND resume_hash = ? AND company = ? AND role = ?", userID, resumeHash, company, role).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
