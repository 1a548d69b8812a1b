package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"kickclock/internal/modules/practice/domain"
	practicedto "kickclock/internal/modules/practice/dto"
	practicein "kickclock/internal/modules/practice/port/in"
	practiceout "kickclock/internal/modules/practice/port/out"
	"kickclock/internal/modules/practice/service"
	apperrors "kickclock/internal/platform/errors"
	"kickclock/internal/platform/tx"
)

// Interactor serializes every change to the active practice; the TUI logs
// kicks from command goroutines that can overlap.
type Interactor struct {
	mu          sync.Mutex
	svc         *service.PracticeService
	activeStore practiceout.ActivePracticeStore
	index       practiceout.KickIndex
	tx          tx.Manager
}

func NewInteractor(svc *service.PracticeService, activeStore practiceout.ActivePracticeStore, index practiceout.KickIndex, txm tx.Manager) practicein.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &Interactor{svc: svc, activeStore: activeStore, index: index, tx: txm}
}

func (i *Interactor) Start(ctx context.Context, input practicedto.StartInput) (practicedto.PracticeOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return practicedto.PracticeOutput{}, apperrors.ErrActivePracticeExists
	}
	if !errors.Is(err, apperrors.ErrNoActivePractice) {
		return practicedto.PracticeOutput{}, err
	}

	p, err := i.svc.Start(ctx, input.Title, input.Date)
	if err != nil {
		return practicedto.PracticeOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, p); err != nil {
		return practicedto.PracticeOutput{}, err
	}
	return toPracticeOutput(p), nil
}

func (i *Interactor) LogKick(ctx context.Context, input practicedto.LogKickInput) (practicedto.KickOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	p, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return practicedto.KickOutput{}, err
	}
	kick, err := i.svc.NewKick(p, input.Type, input.Form)
	if err != nil {
		return practicedto.KickOutput{}, err
	}
	p.Kicks = append(p.Kicks, kick)

	err = i.tx.Within(ctx, func(ctx context.Context) error {
		if i.index != nil {
			if err := i.index.UpsertKick(ctx, p, kick); err != nil {
				return err
			}
		}
		return i.activeStore.SaveActive(ctx, p)
	})
	if err != nil {
		return practicedto.KickOutput{}, err
	}
	return toKickOutput(kick), nil
}

func (i *Interactor) Active(ctx context.Context) (practicedto.PracticeOutput, error) {
	p, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return practicedto.PracticeOutput{}, err
	}
	return toPracticeOutput(p), nil
}

// ListKicks queries the index. An empty practiceID lists every practice.
func (i *Interactor) ListKicks(ctx context.Context, practiceID string) ([]practicedto.KickOutput, error) {
	if i.index == nil {
		return nil, nil
	}
	kicks, err := i.index.ListKicks(ctx, strings.TrimSpace(practiceID))
	if err != nil {
		return nil, err
	}
	out := make([]practicedto.KickOutput, 0, len(kicks))
	for _, k := range kicks {
		out = append(out, toKickOutput(k))
	}
	return out, nil
}

func (i *Interactor) End(ctx context.Context) (practicedto.EndOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	p, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return practicedto.EndOutput{}, err
	}
	path, err := i.svc.End(ctx, p)
	if err != nil {
		return practicedto.EndOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return practicedto.EndOutput{}, err
	}
	return practicedto.EndOutput{
		PracticeID: p.ID,
		Date:       p.Date,
		Path:       path,
		Kicks:      len(p.Kicks),
		Counts:     counts(p),
	}, nil
}

func toPracticeOutput(p domain.Practice) practicedto.PracticeOutput {
	kicks := make([]practicedto.KickOutput, 0, len(p.Kicks))
	for _, k := range p.Kicks {
		kicks = append(kicks, toKickOutput(k))
	}
	return practicedto.PracticeOutput{
		ID:        p.ID,
		Title:     p.Title,
		Date:      p.Date,
		StartedAt: p.StartedAt,
		Kicks:     kicks,
		Counts:    counts(p),
	}
}

func counts(p domain.Practice) map[string]int {
	out := map[string]int{}
	for t, n := range p.Counts() {
		out[string(t)] = n
	}
	return out
}

func toKickOutput(k domain.Kick) practicedto.KickOutput {
	return practicedto.KickOutput{
		ID:          k.ID,
		PracticeID:  k.PracticeID,
		Seq:         k.Seq,
		Type:        string(k.Type),
		Kicker:      k.Kicker,
		Longsnapper: k.Longsnapper,
		Holder:      k.Holder,
		YardLine:    k.YardLine(),
		Distance:    k.Distance(),
		Detail:      detail(k),
		LoggedAt:    k.LoggedAt,
	}
}

func detail(k domain.Kick) map[string]string {
	switch {
	case k.FieldGoal != nil:
		return map[string]string{
			"hash":    k.FieldGoal.Hash,
			"op_time": k.FieldGoal.OpTime,
			"result":  k.FieldGoal.Result,
		}
	case k.Kickoff != nil:
		return map[string]string{
			"hash":             k.Kickoff.Hash,
			"result_yard_line": k.Kickoff.ResultYardLine,
			"landing":          k.Kickoff.Landing,
			"hang_time":        k.Kickoff.HangTime,
		}
	case k.Punt != nil:
		return map[string]string{
			"kick_location":    k.Punt.KickLocation,
			"landed_yard_line": k.Punt.LandedYardLine,
			"landing":          k.Punt.Landing,
			"snap":             k.Punt.Snap,
			"hand_to_foot":     k.Punt.HandToFoot,
			"hang":             k.Punt.Hang,
		}
	}
	return nil
}
