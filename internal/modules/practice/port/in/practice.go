package in

import (
	"context"

	"kickclock/internal/modules/practice/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.PracticeOutput, error)
	LogKick(ctx context.Context, input dto.LogKickInput) (dto.KickOutput, error)
	Active(ctx context.Context) (dto.PracticeOutput, error)
	ListKicks(ctx context.Context, practiceID string) ([]dto.KickOutput, error)
	End(ctx context.Context) (dto.EndOutput, error)
}
