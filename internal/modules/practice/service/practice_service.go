package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"kickclock/internal/modules/practice/domain"
	practiceout "kickclock/internal/modules/practice/port/out"
	"kickclock/internal/platform/clock"
	apperrors "kickclock/internal/platform/errors"
	"kickclock/internal/platform/id"
)

type PracticeService struct {
	clock   clock.Clock
	idGen   id.Generator
	reports practiceout.ReportWriter
	log     zerolog.Logger
}

func NewPracticeService(clock clock.Clock, idGen id.Generator, reports practiceout.ReportWriter, log zerolog.Logger) *PracticeService {
	return &PracticeService{clock: clock, idGen: idGen, reports: reports, log: log}
}

// Start opens a practice dated date, or today when date is empty.
func (s *PracticeService) Start(_ context.Context, title, date string) (domain.Practice, error) {
	now := s.clock.Now()
	if strings.TrimSpace(date) == "" {
		date = now.Format(domain.DateLayout)
	}
	p := domain.Practice{
		ID:        s.idGen.New(),
		Title:     strings.TrimSpace(title),
		Date:      strings.TrimSpace(date),
		StartedAt: now,
	}
	if err := p.Validate(); err != nil {
		return domain.Practice{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	s.log.Info().Str("practice_id", p.ID).Str("date", p.Date).Msg("practice started")
	return p, nil
}

// NewKick builds the next kick of practice from form values. The practice
// itself is not modified.
func (s *PracticeService) NewKick(practice domain.Practice, kickType string, form map[string]string) (domain.Kick, error) {
	t, err := domain.ParseKickType(kickType)
	if err != nil {
		return domain.Kick{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	k := domain.KickFromForm(t, form)
	k.ID = s.idGen.New()
	k.PracticeID = practice.ID
	k.Seq = len(practice.Kicks) + 1
	k.LoggedAt = s.clock.Now()
	if err := k.Validate(); err != nil {
		return domain.Kick{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	s.log.Info().
		Str("practice_id", practice.ID).
		Str("type", string(k.Type)).
		Int("seq", k.Seq).
		Str("distance", k.Distance()).
		Msg("kick logged")
	return k, nil
}

// End writes the practice report and returns its path.
func (s *PracticeService) End(ctx context.Context, practice domain.Practice) (string, error) {
	if len(practice.Kicks) == 0 {
		return "", apperrors.ErrNoKicks
	}
	path, err := s.reports.Write(ctx, practice, s.clock.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	s.log.Info().Str("practice_id", practice.ID).Int("kicks", len(practice.Kicks)).Str("report", path).Msg("practice ended")
	return path, nil
}
