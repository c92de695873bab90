package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthlog-backend/internal/analysis/pattern"
	"healthlog-backend/internal/insights"
	"healthlog-backend/internal/llm"
	"healthlog-backend/internal/logs"
	"healthlog-backend/internal/profile"
	"healthlog-backend/internal/shared/metrics"
	"healthlog-backend/internal/shared/telemetry"
)

// recentLogsCap bounds the slice handed to the augmenter.
const recentLogsCap = 90

// Service runs the pattern analysis pipeline: normalize, compute metrics,
// detect anomalies, augment via the model, fuse risk, persist insights.
type Service struct {
	Logs      *logs.Service
	Profile   profile.Repo
	Flags     insights.FlagsRepo
	Summaries insights.SummariesRepo
	LLM       llm.Client

	// Now is injected so the windowed metrics are a pure function of their
	// inputs in tests. Nil means wall clock.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Run executes one analysis invocation for a user, optionally anchored to a
// specific log.
func (s *Service) Run(ctx context.Context, userID, logID string) (Result, error) {
	if strings.TrimSpace(userID) == "" {
		return Result{}, ErrUserIDRequired
	}
	startedAt := time.Now().UTC()
	metrics.IncAnalysisStarted()

	now := s.now()
	rawLogs, err := s.Logs.ListWindow(ctx, userID, now)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Result{}, &UpstreamError{Op: "fetch logs", Err: err}
	}

	prof, err := s.loadProfile(ctx, userID)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Result{}, &UpstreamError{Op: "fetch profile", Err: err}
	}

	normalized := normalizeLogs(rawLogs)
	current := selectCurrent(normalized, logID)
	recent := normalized
	if len(recent) > recentLogsCap {
		recent = recent[:recentLogsCap]
	}

	var familyHistory []string
	if prof != nil {
		familyHistory = prof.FamilyHistory
	}
	m := pattern.Compute(normalized, current, familyHistory, now)
	anomalyDetected := pattern.DetectAnomaly(m, normalized)

	llmOut := s.augment(ctx, userID, current, recent, prof, m, anomalyDetected)
	fusedRisk := pattern.FuseRisk(m.RiskScore, llmOut.PredictiveRiskAssessment.RiskLevel)

	s.persistInsights(ctx, userID, current, normalized, llmOut, fusedRisk)

	result := Result{
		Flags:                    llmOut.Flags,
		Insights:                 llmOut.Insights,
		RiskScore:                fusedRisk,
		Summary:                  llmOut.Summary,
		AnomalyDetected:          llmOut.AnomalyDetected,
		FamilyHistoryConnections: llmOut.FamilyHistoryConnections,
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(startedAt).Microseconds()) / 1000.0)
	telemetry.Info("analysis.complete", map[string]any{
		"user_id":          userID,
		"log_id":           logID,
		"log_count":        len(normalized),
		"current_region":   m.CurrentRegion,
		"risk_score":       fusedRisk,
		"anomaly_detected": result.AnomalyDetected,
		"flag_count":       len(result.Flags),
	})
	return result, nil
}

func (s *Service) loadProfile(ctx context.Context, userID string) (*profile.HealthProfile, error) {
	prof, err := s.Profile.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prof, nil
}

// selectCurrent resolves the log the analysis is anchored to. An explicit
// logID anchors to that log only; an unknown ID yields nil rather than a
// silent fallback to the newest log. Without a logID the newest log wins.
func selectCurrent(normalized []pattern.Log, logID string) *pattern.Log {
	if logID != "" {
		for i := range normalized {
			if normalized[i].ID == logID {
				return &normalized[i]
			}
		}
		return nil
	}
	if len(normalized) > 0 {
		return &normalized[0]
	}
	return nil
}

// persistInsights writes flag rows and exactly one summary row, best-effort:
// insert failures are logged and counted but never fail the analysis.
func (s *Service) persistInsights(ctx context.Context, userID string, current *pattern.Log, normalized []pattern.Log, llmOut LLMResult, fusedRisk int) {
	createdAt := time.Now().UTC()

	var currentLogID *string
	if current != nil {
		id := current.ID
		currentLogID = &id
	}

	for _, f := range llmOut.Flags {
		flag := insights.AIFlag{
			ID:               uuid.NewString(),
			UserID:           userID,
			LogID:            currentLogID,
			Title:            f.Title,
			ReasoningSummary: f.ReasoningSummary,
			Severity:         f.Severity,
			ConfidenceScore:  f.ConfidenceScore,
			RiskScore:        fusedRisk,
			CreatedAt:        createdAt,
		}
		if err := s.Flags.Insert(ctx, flag); err != nil {
			telemetry.Error("analysis.flag_insert_failed", map[string]any{
				"user_id": userID,
				"title":   f.Title,
				"error":   err.Error(),
			})
			metrics.IncInsightPersistFailed()
		}
	}

	summary := insights.AISummary{
		ID:          uuid.NewString(),
		UserID:      userID,
		SummaryText: llmOut.Summary,
		CreatedAt:   createdAt,
	}
	if len(normalized) > 0 {
		oldest := normalized[len(normalized)-1].Datetime
		newest := normalized[0].Datetime
		summary.DateRangeStart = &oldest
		summary.DateRangeEnd = &newest
	}
	if err := s.Summaries.Insert(ctx, summary); err != nil {
		telemetry.Error("analysis.summary_insert_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		metrics.IncInsightPersistFailed()
	}
}
