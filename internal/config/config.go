// Package config loads session settings from an ini file.
//
//	[session]
//	location = forest
//	season   = winter
//	time     = 06:00
//	sky      = rain
//	wind     = high
//	seed     = 0
//	step     = 1
//	debug    = false
//
// Keys that are missing keep the game defaults.
package config

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/appengine-ltd/wander/internal/game"
)

const sessionSection = "session"

// Load reads a config from a file path or raw []byte ini data.
func Load(source any) (game.SessionConfig, error) {
	cfg := game.DefaultSessionConfig()

	f, err := ini.Load(source)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if !f.HasSection(sessionSection) {
		return cfg, nil
	}
	sec := f.Section(sessionSection)

	if sec.HasKey("location") {
		if cfg.Location, err = game.ParseLocation(sec.Key("location").String()); err != nil {
			return cfg, err
		}
	}
	if sec.HasKey("season") {
		if cfg.Season, err = game.ParseSeason(sec.Key("season").String()); err != nil {
			return cfg, err
		}
	}
	if sec.HasKey("time") {
		if cfg.Start, err = game.ParseTime(sec.Key("time").String()); err != nil {
			return cfg, err
		}
	}
	if sec.HasKey("sky") {
		if cfg.Sky, err = game.ParseSky(sec.Key("sky").String()); err != nil {
			return cfg, err
		}
	}
	if sec.HasKey("wind") {
		if cfg.Wind, err = game.ParseWind(sec.Key("wind").String()); err != nil {
			return cfg, err
		}
	}
	if sec.HasKey("seed") {
		if cfg.Seed, err = sec.Key("seed").Int64(); err != nil {
			return cfg, fmt.Errorf("invalid seed: %w", err)
		}
	}
	if sec.HasKey("step") {
		step, err := sec.Key("step").Int()
		if err != nil {
			return cfg, fmt.Errorf("invalid step: %w", err)
		}
		if step < 1 || step > 127 {
			return cfg, fmt.Errorf("step must be between 1 and 127, got %d", step)
		}
		cfg.Step = int8(step)
	}
	if sec.HasKey("debug") {
		if cfg.Debug, err = sec.Key("debug").Bool(); err != nil {
			return cfg, fmt.Errorf("invalid debug flag: %w", err)
		}
	}

	return cfg, cfg.Validate()
}
