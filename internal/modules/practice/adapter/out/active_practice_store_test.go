package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	practiceout "kickclock/internal/modules/practice/adapter/out"
	"kickclock/internal/modules/practice/domain"
	apperrors "kickclock/internal/platform/errors"
)

func TestFileActivePracticeStoreRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".kickclock", "active-practice.json")
	store := practiceout.NewFileActivePracticeStore(path)
	ctx := context.Background()

	if _, err := store.LoadActive(ctx); !errors.Is(err, apperrors.ErrNoActivePractice) {
		t.Fatalf("expected no active practice, got %v", err)
	}
	p := domain.Practice{
		ID:        "p-1",
		Date:      "2026-09-12",
		StartedAt: time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC),
		Kicks: []domain.Kick{{
			ID:       "k-1",
			Type:     domain.KickPunt,
			Kicker:   "Ames",
			Punt:     &domain.Punt{Snap: "0.760", Hang: "4.410"},
			LoggedAt: time.Date(2026, 9, 12, 15, 5, 0, 0, time.UTC),
		}},
	}
	if err := store.SaveActive(ctx, p); err != nil {
		t.Fatalf("save active: %v", err)
	}
	got, err := store.LoadActive(ctx)
	if err != nil {
		t.Fatalf("load active: %v", err)
	}
	if got.ID != "p-1" || len(got.Kicks) != 1 || got.Kicks[0].Punt == nil || got.Kicks[0].Punt.Hang != "4.410" {
		t.Fatalf("unexpected practice %+v", got)
	}
	if err := store.ClearActive(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.ClearActive(ctx); err != nil {
		t.Fatalf("second clear should be a no-op: %v", err)
	}
	if _, err := store.LoadActive(ctx); !errors.Is(err, apperrors.ErrNoActivePractice) {
		t.Fatalf("expected no active after clear, got %v", err)
	}
}

func TestFileActivePracticeStoreRejectsCorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "active-practice.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := practiceout.NewFileActivePracticeStore(path)
	if _, err := store.LoadActive(context.Background()); err == nil || errors.Is(err, apperrors.ErrNoActivePractice) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
