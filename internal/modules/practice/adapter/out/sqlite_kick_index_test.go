package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	practiceout "kickclock/internal/modules/practice/adapter/out"
	"kickclock/internal/modules/practice/domain"
	"kickclock/internal/platform/tx"
)

func TestSQLiteKickIndexUpsertAndList(t *testing.T) {
	t.Parallel()
	index, err := practiceout.NewSQLiteKickIndex(filepath.Join(t.TempDir(), ".kickclock", "kickclock.db"))
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	defer index.Close()
	ctx := context.Background()

	p1 := domain.Practice{ID: "p-1", Date: "2026-09-12"}
	p2 := domain.Practice{ID: "p-2", Date: "2026-09-10"}
	at := time.Date(2026, 9, 12, 15, 0, 0, 0, time.UTC)
	kicks := []struct {
		p domain.Practice
		k domain.Kick
	}{
		{p1, domain.Kick{ID: "a", Seq: 2, Type: domain.KickFieldGoal, LoggedAt: at, FieldGoal: &domain.FieldGoal{YardLine: "+20", Distance: "38"}}},
		{p1, domain.Kick{ID: "b", Seq: 1, Type: domain.KickPunt, LoggedAt: at, Punt: &domain.Punt{KickYardLine: "-30", Distance: "45"}}},
		{p2, domain.Kick{ID: "c", Seq: 1, Type: domain.KickKickoff, LoggedAt: at, Kickoff: &domain.Kickoff{YardLine: "-35"}}},
	}
	for _, item := range kicks {
		if err := index.UpsertKick(ctx, item.p, item.k); err != nil {
			t.Fatalf("upsert %s: %v", item.k.ID, err)
		}
	}

	got, err := index.ListKicks(ctx, "p-1")
	if err != nil {
		t.Fatalf("list p-1: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected p-1 kicks ordered by seq, got %+v", got)
	}
	if got[1].FieldGoal == nil || got[1].FieldGoal.Distance != "38" {
		t.Fatalf("kick detail not preserved: %+v", got[1])
	}

	all, err := index.ListKicks(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || all[0].ID != "c" {
		t.Fatalf("expected earlier practice first, got %+v", all)
	}

	updated := kicks[0].k
	updated.Kicker = "Bell"
	if err := index.UpsertKick(ctx, p1, updated); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	again, _ := index.ListKicks(ctx, "p-1")
	if len(again) != 2 || again[1].Kicker != "Bell" {
		t.Fatalf("upsert should replace, got %+v", again)
	}
}

func TestSQLiteKickIndexRollsBackWithinTx(t *testing.T) {
	t.Parallel()
	index, err := practiceout.NewSQLiteKickIndex(filepath.Join(t.TempDir(), "kickclock.db"))
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	defer index.Close()
	ctx := context.Background()
	boom := errors.New("boom")

	txm := tx.SQLManager{DB: index.DB()}
	err = txm.Within(ctx, func(ctx context.Context) error {
		k := domain.Kick{ID: "x", Seq: 1, Type: domain.KickPunt, Punt: &domain.Punt{}}
		if err := index.UpsertKick(ctx, domain.Practice{ID: "p", Date: "2026-09-12"}, k); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	got, err := index.ListKicks(ctx, "p")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rolled back kick must not be visible, got %+v", got)
	}
}
