package bootstrap

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	practiceinadapter "kickclock/internal/modules/practice/adapter/in"
	practiceoutadapter "kickclock/internal/modules/practice/adapter/out"
	practiceservice "kickclock/internal/modules/practice/service"
	practiceusecase "kickclock/internal/modules/practice/usecase"
	stopwatchinadapter "kickclock/internal/modules/stopwatch/adapter/in"
	stopwatchoutadapter "kickclock/internal/modules/stopwatch/adapter/out"
	stopwatchusecase "kickclock/internal/modules/stopwatch/usecase"
	"kickclock/internal/platform/clock"
	"kickclock/internal/platform/config"
	"kickclock/internal/platform/id"
	"kickclock/internal/platform/logging"
	"kickclock/internal/platform/tx"
	uiapp "kickclock/internal/ui/app"
)

type App struct {
	Config       config.Config
	Logger       zerolog.Logger
	PracticeCLI  practiceinadapter.CLIHandler
	StopwatchTUI stopwatchinadapter.TUIHandler
	Elements     *stopwatchoutadapter.ElementSet

	closers []io.Closer
}

func New(cfg config.Config) (*App, error) {
	logger, logCloser, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	app := &App{Config: cfg, Logger: logger, closers: []io.Closer{logCloser}}

	clk := clock.System()
	ids := id.UUID{}

	elements := stopwatchoutadapter.NewElementSet()
	board := stopwatchusecase.NewBoard(newStopwatches(clk, elements, logger)...)

	index, err := practiceoutadapter.NewSQLiteKickIndex(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new kick index: %w", err)
	}
	app.closers = append(app.closers, index)

	practiceSvc := practiceservice.NewPracticeService(
		clk,
		ids,
		practiceoutadapter.NewVaultReportWriter(cfg.DataPath, cfg.Team),
		logger.With().Str("module", "practice").Logger(),
	)
	practiceUC := practiceusecase.NewInteractor(
		practiceSvc,
		practiceoutadapter.NewFileActivePracticeStore(cfg.ActivePracticeAt),
		index,
		tx.SQLManager{DB: index.DB()},
	)

	app.PracticeCLI = practiceinadapter.NewCLIHandler(practiceUC)
	app.StopwatchTUI = stopwatchinadapter.NewTUIHandler(board)
	app.Elements = elements
	return app, nil
}

// Close releases the kick index and the log file, in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if a.closers[i] == nil {
			continue
		}
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		app.PracticeCLI,
		app.StopwatchTUI,
		app.Elements,
		DrillSpecs(),
		app.Config.FrameInterval,
		app.Logger.With().Str("module", "tui").Logger(),
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
