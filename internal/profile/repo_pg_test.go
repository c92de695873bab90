package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetByUserScansNullableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"user_id", "allergies", "height", "weight", "family_history",
		"lifestyle_sleep_hours", "lifestyle_activity_level", "lifestyle_diet_type", "updated_at",
	}).AddRow("user-1", `["pollen"]`, 180.5, nil, `["Migraine","Diabetes"]`, nil, "moderate", nil, now)

	mock.ExpectQuery("SELECT user_id, allergies, height, weight, family_history").
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(got.FamilyHistory) != 2 || got.FamilyHistory[0] != "Migraine" {
		t.Fatalf("family history not unmarshaled: %v", got.FamilyHistory)
	}
	if got.Height == nil || *got.Height != 180.5 {
		t.Fatalf("height not scanned: %v", got.Height)
	}
	if got.Weight != nil {
		t.Fatalf("null weight must scan nil, got %v", got.Weight)
	}
	if got.LifestyleActivityLevel != "moderate" {
		t.Fatalf("activity level: got %q", got.LifestyleActivityLevel)
	}
}

func TestPGRepoGetByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT user_id, allergies").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	if _, err := repo.GetByUser(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpsertMarshalsLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	sleep := 7.5

	mock.ExpectExec("INSERT INTO health_profile").
		WithArgs(
			"user-1",
			`["pollen"]`,
			nil,
			nil,
			`["Migraine"]`,
			sleep,
			"moderate",
			nil,
			now,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Upsert(context.Background(), HealthProfile{
		UserID:                 "user-1",
		Allergies:              []string{"pollen"},
		FamilyHistory:          []string{"Migraine"},
		LifestyleSleepHours:    &sleep,
		LifestyleActivityLevel: "moderate",
		UpdatedAt:              now,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
