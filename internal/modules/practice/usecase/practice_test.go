package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	practiceout "kickclock/internal/modules/practice/adapter/out"
	"kickclock/internal/modules/practice/domain"
	practicedto "kickclock/internal/modules/practice/dto"
	practicein "kickclock/internal/modules/practice/port/in"
	"kickclock/internal/modules/practice/service"
	"kickclock/internal/modules/practice/usecase"
	apperrors "kickclock/internal/platform/errors"
	"kickclock/internal/platform/tx"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newInteractor(t *testing.T, dir string, clk clockwork.Clock) (practicein.Usecase, *practiceout.SQLiteKickIndex) {
	t.Helper()
	index, err := practiceout.NewSQLiteKickIndex(filepath.Join(dir, ".kickclock", "kickclock.db"))
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	t.Cleanup(func() { _ = index.Close() })
	svc := service.NewPracticeService(clk, &seqID{}, practiceout.NewVaultReportWriter(dir, ""), zerolog.Nop())
	uc := usecase.NewInteractor(svc,
		practiceout.NewFileActivePracticeStore(filepath.Join(dir, ".kickclock", "active-practice.json")),
		index,
		tx.SQLManager{DB: index.DB()},
	)
	return uc, index
}

func TestPracticeLifecycleLogsKicksAndWritesReport(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clk := clockwork.NewFakeClockAt(time.Date(2026, 9, 12, 15, 30, 0, 0, time.UTC))
	uc, _ := newInteractor(t, dir, clk)
	ctx := context.Background()

	started, err := uc.Start(ctx, practicedto.StartInput{Title: "Saturday walk-through"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.Date != "2026-09-12" || started.ID == "" {
		t.Fatalf("expected today's date and an id, got %+v", started)
	}

	clk.Advance(time.Minute)
	fg, err := uc.LogKick(ctx, practicedto.LogKickInput{Type: "fg", Form: map[string]string{
		domain.FieldKicker:     "Ames",
		domain.FieldFGYardLine: "+27",
		domain.FieldFGOpTime:   "1.310",
		domain.FieldFGResult:   "Good",
	}})
	if err != nil {
		t.Fatalf("log fg: %v", err)
	}
	if fg.Seq != 1 || fg.Distance != "45" || fg.Detail["op_time"] != "1.310" {
		t.Fatalf("unexpected fg output %+v", fg)
	}

	punt, err := uc.LogKick(ctx, practicedto.LogKickInput{Type: "punt", Form: map[string]string{
		domain.FieldKicker:             "Bell",
		domain.FieldPuntKickYardLine:   "-20",
		domain.FieldPuntLandedYardLine: "+40",
		domain.FieldPuntHang:           "4.380",
	}})
	if err != nil {
		t.Fatalf("log punt: %v", err)
	}
	if punt.Seq != 2 || punt.Distance != "40" {
		t.Fatalf("unexpected punt output %+v", punt)
	}

	active, err := uc.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active.Kicks) != 2 || active.Counts["Punt"] != 1 {
		t.Fatalf("unexpected active practice %+v", active)
	}

	listed, err := uc.ListKicks(ctx, started.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].Type != "Field Goal" {
		t.Fatalf("unexpected listed kicks %+v", listed)
	}

	end, err := uc.End(ctx)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if end.Kicks != 2 || !strings.HasPrefix(filepath.Base(end.Path), "saturday-walk-through-") {
		t.Fatalf("unexpected end output %+v", end)
	}
	b, err := os.ReadFile(end.Path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(b), "| 1 | Ames |") {
		t.Fatalf("report missing kick row:\n%s", b)
	}
	if _, err := uc.Active(ctx); !errors.Is(err, apperrors.ErrNoActivePractice) {
		t.Fatalf("expected no active practice after end, got %v", err)
	}
}

func TestPracticeStartRejectsSecondActiveAndBadDate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	uc, _ := newInteractor(t, dir, clockwork.NewFakeClock())
	ctx := context.Background()

	if _, err := uc.Start(ctx, practicedto.StartInput{Date: "12/09/2026"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad date, got %v", err)
	}
	if _, err := uc.Start(ctx, practicedto.StartInput{Date: "2026-09-12"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Start(ctx, practicedto.StartInput{}); !errors.Is(err, apperrors.ErrActivePracticeExists) {
		t.Fatalf("expected active practice exists, got %v", err)
	}
}

func TestPracticeRequiresActiveAndKicks(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	uc, _ := newInteractor(t, dir, clockwork.NewFakeClock())
	ctx := context.Background()

	if _, err := uc.LogKick(ctx, practicedto.LogKickInput{Type: "fg"}); !errors.Is(err, apperrors.ErrNoActivePractice) {
		t.Fatalf("expected no active practice, got %v", err)
	}
	if _, err := uc.End(ctx); !errors.Is(err, apperrors.ErrNoActivePractice) {
		t.Fatalf("expected no active practice on end, got %v", err)
	}

	if _, err := uc.Start(ctx, practicedto.StartInput{Date: "2026-09-12"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.End(ctx); !errors.Is(err, apperrors.ErrNoKicks) {
		t.Fatalf("expected no kicks, got %v", err)
	}
	if _, err := uc.Active(ctx); err != nil {
		t.Fatalf("practice must stay active after a failed end: %v", err)
	}
	if _, err := uc.LogKick(ctx, practicedto.LogKickInput{Type: "onside"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid kick type, got %v", err)
	}
}

func TestLogKickConcurrentSavesKeepEveryKick(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clk := clockwork.NewFakeClockAt(time.Date(2026, 9, 12, 15, 30, 0, 0, time.UTC))
	uc, index := newInteractor(t, dir, clk)
	ctx := context.Background()
	started, err := uc.Start(ctx, practicedto.StartInput{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	const saves = 8
	var wg sync.WaitGroup
	errs := make(chan error, saves)
	for n := 0; n < saves; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.LogKick(ctx, practicedto.LogKickInput{Type: "fg", Form: map[string]string{
				domain.FieldKicker:     "Ames",
				domain.FieldFGYardLine: "20",
			}})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("log kick: %v", err)
		}
	}

	active, err := uc.Active(ctx)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active.Kicks) != saves {
		t.Fatalf("active practice holds %d kicks, want %d", len(active.Kicks), saves)
	}
	seen := map[int]bool{}
	for _, k := range active.Kicks {
		if seen[k.Seq] {
			t.Fatalf("duplicate seq %d", k.Seq)
		}
		seen[k.Seq] = true
	}
	indexed, err := index.ListKicks(ctx, started.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(indexed) != saves {
		t.Fatalf("index holds %d kicks, want %d", len(indexed), saves)
	}
}
