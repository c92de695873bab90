package analysis

import (
	"context"
	"testing"
	"time"

	"healthlog-backend/internal/insights"
	"healthlog-backend/internal/llm"
	"healthlog-backend/internal/logs"
	"healthlog-backend/internal/profile"
)

var serviceNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T, client llm.Client) (*Service, *insights.MemoryFlagsRepo, *insights.MemorySummariesRepo, *logs.MemoryRepo, *profile.MemoryRepo) {
	t.Helper()
	logsRepo := logs.NewMemoryRepo()
	profileRepo := profile.NewMemoryRepo()
	flagsRepo := insights.NewMemoryFlagsRepo()
	summariesRepo := insights.NewMemorySummariesRepo()

	svc := &Service{
		Logs:      &logs.Service{Repo: logsRepo},
		Profile:   profileRepo,
		Flags:     flagsRepo,
		Summaries: summariesRepo,
		LLM:       client,
		Now:       func() time.Time { return serviceNow },
	}
	return svc, flagsRepo, summariesRepo, logsRepo, profileRepo
}

func seedRisingLogs(t *testing.T, repo *logs.MemoryRepo, userID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		sev := n - i
		if sev > 10 {
			sev = 10
		}
		log := logs.HealthLog{
			ID:        "log-" + string(rune('a'+i)),
			UserID:    userID,
			Title:     "headache",
			BodyParts: []string{"head"},
			Severity:  &sev,
			Date:      serviceNow.AddDate(0, 0, -i),
			CreatedAt: serviceNow,
			UpdatedAt: serviceNow,
		}
		if err := repo.Create(context.Background(), log); err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}
}

func TestRunRequiresUserID(t *testing.T) {
	svc, _, _, _, _ := setupService(t, llm.Disabled{})
	if _, err := svc.Run(context.Background(), "  ", ""); err != ErrUserIDRequired {
		t.Fatalf("expected ErrUserIDRequired, got %v", err)
	}
}

func TestRunEmptyUser(t *testing.T) {
	svc, flagsRepo, summariesRepo, _, _ := setupService(t, llm.Disabled{})

	res, err := svc.Run(context.Background(), "u-empty", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.RiskScore != 6 {
		// 0 deterministic fused with the low anchor: 0.3*20 = 6.
		t.Fatalf("expected risk 6 for empty user, got %d", res.RiskScore)
	}
	if res.Summary != FallbackSummary {
		t.Fatalf("expected fallback summary, got %q", res.Summary)
	}
	if res.AnomalyDetected {
		t.Fatal("no anomaly for an empty user")
	}
	if len(res.Flags) != 0 {
		t.Fatalf("expected no flags, got %d", len(res.Flags))
	}

	flags, _ := flagsRepo.ListByUser(context.Background(), "u-empty", 10)
	if len(flags) != 0 {
		t.Fatalf("no flag rows must be written, got %d", len(flags))
	}
	summaries, _ := summariesRepo.ListByUser(context.Background(), "u-empty", 10)
	if len(summaries) != 1 {
		t.Fatalf("exactly one summary row must be written, got %d", len(summaries))
	}
	if summaries[0].DateRangeStart != nil || summaries[0].DateRangeEnd != nil {
		t.Fatal("summary date range must be unset for an empty working set")
	}
}

func TestRunRisingLogsWithModel(t *testing.T) {
	svc, flagsRepo, summariesRepo, logsRepo, profileRepo := setupService(t, staticLLM{resp: validLLMResponse})
	seedRisingLogs(t, logsRepo, "u1", 10)
	if err := profileRepo.Upsert(context.Background(), profile.HealthProfile{
		UserID:        "u1",
		FamilyHistory: []string{"Migraine"},
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	res, err := svc.Run(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Summary != "Recurring head pain with a worsening trend." {
		t.Fatalf("expected model summary, got %q", res.Summary)
	}
	if len(res.Flags) != 1 {
		t.Fatalf("expected one flag, got %d", len(res.Flags))
	}
	if res.RiskScore <= 6 || res.RiskScore > 100 {
		t.Fatalf("risk score %d outside expected range", res.RiskScore)
	}

	flags, _ := flagsRepo.ListByUser(context.Background(), "u1", 10)
	if len(flags) != 1 {
		t.Fatalf("expected one persisted flag, got %d", len(flags))
	}
	if flags[0].RiskScore != res.RiskScore {
		t.Fatalf("persisted flag risk %d must match result %d", flags[0].RiskScore, res.RiskScore)
	}
	if flags[0].LogID == nil {
		t.Fatal("persisted flag must reference the current log")
	}

	summaries, _ := summariesRepo.ListByUser(context.Background(), "u1", 10)
	if len(summaries) != 1 {
		t.Fatalf("expected one summary row, got %d", len(summaries))
	}
	got := summaries[0]
	if got.DateRangeStart == nil || got.DateRangeEnd == nil {
		t.Fatal("summary date range must be set")
	}
	if !got.DateRangeEnd.After(*got.DateRangeStart) {
		t.Fatalf("date range end %v must be after start %v", got.DateRangeEnd, got.DateRangeStart)
	}
}

func TestRunAnchorsToRequestedLog(t *testing.T) {
	svc, _, _, logsRepo, _ := setupService(t, llm.Disabled{})
	seedRisingLogs(t, logsRepo, "u1", 3)

	// The requested log is not the newest; the analysis must still succeed
	// and fall back cleanly with the model disabled.
	res, err := svc.Run(context.Background(), "u1", "log-c")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Summary != FallbackSummary {
		t.Fatalf("expected fallback summary, got %q", res.Summary)
	}
}

func TestRunUnknownLogIDLeavesFlagsUnanchored(t *testing.T) {
	svc, flagsRepo, _, logsRepo, _ := setupService(t, staticLLM{resp: validLLMResponse})
	seedRisingLogs(t, logsRepo, "u1", 5)

	// An explicit log_id that is not in the working set must not silently
	// anchor to the newest log instead.
	res, err := svc.Run(context.Background(), "u1", "log-gone")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.RiskScore <= 0 {
		t.Fatalf("expected positive risk, got %d", res.RiskScore)
	}

	flags, _ := flagsRepo.ListByUser(context.Background(), "u1", 10)
	if len(flags) != 1 {
		t.Fatalf("expected one persisted flag, got %d", len(flags))
	}
	if flags[0].LogID != nil {
		t.Fatalf("flag must not reference any log, got %q", *flags[0].LogID)
	}
}

func TestRunModelErrorStillPersistsSummary(t *testing.T) {
	svc, _, summariesRepo, logsRepo, _ := setupService(t, staticLLM{resp: `not json at all`})
	seedRisingLogs(t, logsRepo, "u1", 5)

	res, err := svc.Run(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Summary != FallbackSummary {
		t.Fatalf("expected fallback summary on invalid model output, got %q", res.Summary)
	}
	summaries, _ := summariesRepo.ListByUser(context.Background(), "u1", 10)
	if len(summaries) != 1 {
		t.Fatalf("expected one summary row, got %d", len(summaries))
	}
}
