package game

import (
	"fmt"
	"log/slog"
)

type SessionConfig struct {
	Location LocationKind
	Season   Season
	Start    Time
	Sky      Sky
	Wind     Wind
	Seed     int64
	// Step is the coordinate magnitude of one Go action.
	Step int8
	// Debug writes a "debug:" line with the clock and temperatures after
	// every clock advance.
	Debug  bool
	Logger *slog.Logger
}

// DefaultSessionConfig is a rainy winter dawn in the forest.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Location: LocationForest,
		Season:   SeasonWinter,
		Start:    NewTime(6, 0),
		Sky:      SkyRain,
		Wind:     WindHigh,
		Step:     1,
	}
}

func (c SessionConfig) Validate() error {
	if !c.Location.Valid() {
		return fmt.Errorf("invalid location: %d", c.Location)
	}
	if !c.Season.Valid() {
		return fmt.Errorf("invalid season: %d", c.Season)
	}
	if !c.Sky.Valid() {
		return fmt.Errorf("invalid sky: %d", c.Sky)
	}
	if !c.Wind.Valid() {
		return fmt.Errorf("invalid wind: %d", c.Wind)
	}
	if c.Step < 1 {
		return fmt.Errorf("step must be at least 1, got %d", c.Step)
	}
	return nil
}
