package usecase

import (
	"context"
	"log"
	"time"

	"github.com/fadilmartias/resume-analyzer/internal/analysis"
	"github.com/fadilmartias/resume-analyzer/internal/apperror"
	"github.com/fadilmartias/resume-analyzer/internal/cache"
	"github.com/fadilmartias/resume-analyzer/internal/dto"
	"github.com/fadilmartias/resume-analyzer/internal/jd"
	"github.com/fadilmartias/resume-analyzer/internal/model"
	"github.com/fadilmartias/resume-analyzer/internal/service"
	"github.com/fadilmartias/resume-analyzer/internal/util"
	"golang.org/x/sync/singleflight"
)

// AnalysisRepositoryInterface is the persistent-tier contract the usecase
// depends on.
type AnalysisRepositoryInterface interface {
	Create(record *model.ResumeAnalysis) error
	FindByOwnerKey(userID, resumeHash, company, role string) (*model.ResumeAnalysis, error)
}

// AnalyzeUsecase coordinates the analysis pipeline behind two cache tiers:
// a durable, identity-scoped store and a process-lifetime in-memory cache
// keyed by content alone. The in-memory tier is deliberately shared across
// identities: same résumé + JD + company + role means same entry no matter
// who asks, so a memory hit reveals that someone already submitted exactly
// these inputs.
type AnalyzeUsecase struct {
	repo      AnalysisRepositoryInterface
	inference service.InferenceService
	presets   jd.PresetLookup
	memCache  *cache.AnalysisCache
	group     singleflight.Group
}

func NewAnalyzeUsecase(repo AnalysisRepositoryInterface, inference service.InferenceService, presets jd.PresetLookup, memCache *cache.AnalysisCache) *AnalyzeUsecase {
	return &AnalyzeUsecase{
		repo:      repo,
		inference: inference,
		presets:   presets,
		memCache:  memCache,
	}
}

// AnalyzeResult pairs a record with the tier that served it.
type AnalyzeResult struct {
	Record *dto.AnalysisRecord
	Cached dto.CacheTag
}

// Analyze resolves one résumé-vs-job-description request. Lookup order:
// durable record for this identity, then the shared in-memory entry for the
// content key, then a fresh pipeline run. Concurrent requests with the same
// cache key are coalesced onto a single run — one model call, one persistent
// write — and all share its result or its error. A failed run is never
// cached.
func (uc *AnalyzeUsecase) Analyze(ctx context.Context, resumeText, userJD, company, role, userID string) (*AnalyzeResult, error) {
	resumeHash := util.SHA256Hex(resumeText)

	stored, err := uc.repo.FindByOwnerKey(userID, resumeHash, company, role)
	if err != nil {
		return nil, apperror.New(apperror.KindPersistence, "failed to read stored analysis", err)
	}
	if stored != nil {
		return &AnalyzeResult{Record: stored.Record(), Cached: dto.CacheDatabase}, nil
	}

	resolution := jd.Resolve(company, role, userJD, uc.presets, time.Now())
	cacheKey := util.SHA256Hex(resumeText + resolution.Text + company + role)

	if record, ok := uc.memCache.Get(cacheKey); ok {
		return &AnalyzeResult{Record: record, Cached: dto.CacheMemory}, nil
	}

	v, err, _ := uc.group.Do(cacheKey, func() (any, error) {
		return uc.runPipeline(ctx, resumeText, resolution, company, role, userID, resumeHash, cacheKey)
	})
	if err != nil {
		return nil, err
	}
	return &AnalyzeResult{Record: v.(*dto.AnalysisRecord), Cached: dto.CacheNone}, nil
}

func (uc *AnalyzeUsecase) runPipeline(ctx context.Context, resumeText string, resolution jd.Resolution, company, role, userID, resumeHash, cacheKey string) (*dto.AnalysisRecord, error) {
	raw, err := uc.inference.AnalyzeResume(ctx, resumeText, resolution.Text)
	if err != nil {
		return nil, err
	}

	normalized, err := analysis.NormalizeModelOutput(raw)
	if err != nil {
		// Diagnostic only; the raw text never reaches the caller.
		log.Printf("unparseable model output: %s", raw)
		return nil, err
	}

	quality := analysis.AssessJDQuality(resolution.Text)
	formatFinding := analysis.AnalyzeFormat(resumeText)
	scores, rejection := analysis.DeriveScores(normalized, quality)

	record := &dto.AnalysisRecord{
		Analysis:         *normalized,
		Scores:           scores,
		RejectionSummary: rejection,
		FormatAnalysis:   formatFinding,
		Meta: dto.ResolutionMeta{
			Company:       company,
			Role:          role,
			JDSource:      resolution.Source,
			JDLastUpdated: resolution.LastUpdated,
		},
	}

	if err := uc.repo.Create(model.NewResumeAnalysis(userID, resumeHash, record)); err != nil {
		return nil, apperror.New(apperror.KindPersistence, "failed to store analysis", err)
	}
	uc.memCache.Set(cacheKey, record)

	return record, nil
}
