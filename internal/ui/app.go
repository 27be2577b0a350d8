package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/wander/internal/game"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Session   game.SessionConfig

	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

// Run describes the surroundings once and then loops over the action menu
// until the player quits or the input runs out.
func (a *App) Run() error {
	in := a.cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := a.cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logger := a.cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("session", uuid.NewString())

	cfg := a.cfg.Session
	cfg.Logger = logger
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Info("session start",
		"version", a.cfg.Version,
		"commit", a.cfg.Commit,
		"build_date", a.cfg.BuildDate,
		"seed", cfg.Seed,
		"location", cfg.Location.String(),
		"season", cfg.Season.String(),
		"time", cfg.Start.String(),
	)

	menu := NewMenu(in, out, IsTerminal(out))
	session, err := game.NewSession(cfg, out, menu, game.SeededRNG(cfg.Seed))
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	if _, err := session.Act(game.ActionDescribe); err != nil {
		return a.finish(logger, session, err)
	}

	for {
		actions := session.AvailableActions()
		labels := make([]string, len(actions))
		for i, action := range actions {
			labels[i] = action.String()
		}

		idx, err := menu.Choose(labels)
		if err != nil {
			return a.finish(logger, session, err)
		}
		quit, err := session.Act(actions[idx])
		if err != nil {
			return a.finish(logger, session, err)
		}
		if quit {
			return a.finish(logger, session, nil)
		}
	}
}

func (a *App) finish(logger *slog.Logger, session *game.Session, err error) error {
	if errors.Is(err, ErrInputClosed) {
		err = nil
	}
	logger.Info("session end",
		"time", session.Time().String(),
		"temp", session.Temperature(),
		"pos_n", session.Location().Pos.N,
		"pos_w", session.Location().Pos.W,
	)
	return err
}
