package game

import (
	"fmt"
	"io"
	"log/slog"
)

// Chooser presents labeled choices and returns the index of a valid one.
// Invalid input is handled by the chooser; an error means the I/O failed.
type Chooser interface {
	Choose(choices []string) (int, error)
}

// Session is one play-through: the clock, the weather and where the player
// stands. It is not safe for concurrent use; every draw from the RNG must
// happen in order.
type Session struct {
	w       io.Writer
	chooser Chooser
	rng     RNG
	log     *slog.Logger

	lastDesc string
	loc      Location
	time     Time
	season   Season
	sky      Sky
	wind     Wind
	temp     int8 // celsius
	step     int8
	debug    bool
}

func NewSession(cfg SessionConfig, w io.Writer, chooser Chooser, rng RNG) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w == nil || chooser == nil || rng == nil {
		return nil, fmt.Errorf("session needs a writer, a chooser and an rng")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loc := Location{Kind: cfg.Location}
	s := &Session{
		w:       w,
		chooser: chooser,
		rng:     rng,
		log:     logger,
		loc:     loc,
		time:    cfg.Start,
		season:  cfg.Season,
		sky:     cfg.Sky,
		wind:    cfg.Wind,
		temp:    loc.TempBase(cfg.Season, cfg.Start, cfg.Sky),
		step:    cfg.Step,
		debug:   cfg.Debug,
	}
	s.lastDesc = s.Description()
	return s, nil
}

func (s *Session) Conditions() Conditions {
	return Conditions{
		Location: s.loc,
		Season:   s.season,
		Time:     s.time,
		Sky:      s.sky,
		Wind:     s.wind,
		TempC:    s.temp,
	}
}

func (s *Session) Description() string {
	return Describe(s.Conditions())
}

func (s *Session) Time() Time              { return s.time }
func (s *Session) Season() Season          { return s.season }
func (s *Session) Sky() Sky                { return s.sky }
func (s *Session) Wind() Wind              { return s.wind }
func (s *Session) Temperature() int8       { return s.temp }
func (s *Session) Location() Location      { return s.loc }
func (s *Session) LastDescription() string { return s.lastDesc }

func (s *Session) AvailableActions() []Action {
	return []Action{ActionDescribe, ActionGo, ActionWait, ActionQuit}
}

func (s *Session) AvailableDirections() []Direction {
	return []Direction{North, South, East, West}
}

// Act applies one player action. quit is true once the session is over.
func (s *Session) Act(action Action) (quit bool, err error) {
	s.log.Debug("action", "action", action.String(), "time", s.time.String())

	switch action {
	case ActionDescribe:
		return false, s.describe()
	case ActionGo:
		if err := s.goSomewhere(); err != nil {
			return false, err
		}
	case ActionWait:
		if err := s.say("some time passes."); err != nil {
			return false, err
		}
		if err := s.advance(0, 5); err != nil {
			return false, err
		}
	case ActionQuit:
		return true, nil
	default:
		return false, fmt.Errorf("unknown action: %d", action)
	}

	if s.Description() == s.lastDesc {
		return false, nil
	}
	if err := s.say("your surroundings look different."); err != nil {
		return false, err
	}
	if err := s.say(""); err != nil {
		return false, err
	}
	return false, s.describe()
}

func (s *Session) describe() error {
	desc := s.Description()
	if _, err := io.WriteString(s.w, desc); err != nil {
		return fmt.Errorf("write description: %w", err)
	}
	s.lastDesc = desc
	return nil
}

func (s *Session) goSomewhere() error {
	dirs := s.AvailableDirections()
	labels := make([]string, len(dirs))
	for i, d := range dirs {
		labels[i] = d.String()
	}

	if err := s.say("which direction?"); err != nil {
		return err
	}
	idx, err := s.chooser.Choose(labels)
	if err != nil {
		return fmt.Errorf("choose direction: %w", err)
	}
	if idx < 0 || idx >= len(dirs) {
		return fmt.Errorf("chooser returned index %d of %d", idx, len(dirs))
	}

	dir := dirs[idx]
	s.loc.Pos = s.loc.Pos.Add(dir.Vector(s.step))
	if err := s.say("you head " + dir.String() + "."); err != nil {
		return err
	}
	return s.advance(0, 1)
}

func (s *Session) say(line string) error {
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return fmt.Errorf("write narration: %w", err)
	}
	return nil
}
