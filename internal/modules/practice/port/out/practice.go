package out

import (
	"context"

	"kickclock/internal/modules/practice/domain"
)

type ActivePracticeStore interface {
	SaveActive(ctx context.Context, practice domain.Practice) error
	LoadActive(ctx context.Context) (domain.Practice, error)
	ClearActive(ctx context.Context) error
}

// KickIndex is the queryable projection of logged kicks across practices.
type KickIndex interface {
	UpsertKick(ctx context.Context, practice domain.Practice, kick domain.Kick) error
	ListKicks(ctx context.Context, practiceID string) ([]domain.Kick, error)
}

type ReportWriter interface {
	Write(ctx context.Context, practice domain.Practice, endedAt string) (string, error)
}
