package in

import (
	"context"

	practicedto "kickclock/internal/modules/practice/dto"
	practicein "kickclock/internal/modules/practice/port/in"
)

type CLIHandler struct {
	usecase practicein.Usecase
}

func NewCLIHandler(usecase practicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, title, date string) (practicedto.PracticeOutput, error) {
	return h.usecase.Start(ctx, practicedto.StartInput{Title: title, Date: date})
}

func (h CLIHandler) LogKick(ctx context.Context, kickType string, form map[string]string) (practicedto.KickOutput, error) {
	return h.usecase.LogKick(ctx, practicedto.LogKickInput{Type: kickType, Form: form})
}

func (h CLIHandler) Active(ctx context.Context) (practicedto.PracticeOutput, error) {
	return h.usecase.Active(ctx)
}

func (h CLIHandler) ListKicks(ctx context.Context, practiceID string) ([]practicedto.KickOutput, error) {
	return h.usecase.ListKicks(ctx, practiceID)
}

func (h CLIHandler) End(ctx context.Context) (practicedto.EndOutput, error) {
	return h.usecase.End(ctx)
}
