package config

import (
	"testing"

	"github.com/appengine-ltd/wander/internal/game"
)

func TestLoadFullSession(t *testing.T) {
	cfg, err := Load([]byte(`
[session]
location = forest
season   = summer ; long days
time     = 13:15
sky      = clouds
wind     = light
seed     = 42
step     = 3
debug    = true
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Season != game.SeasonSummer || cfg.Sky != game.SkyClouds || cfg.Wind != game.WindLight {
		t.Fatalf("unexpected weather config: %+v", cfg)
	}
	if cfg.Start.String() != "13:15" {
		t.Fatalf("expected 13:15, got %s", cfg.Start)
	}
	if cfg.Seed != 42 || cfg.Step != 3 || !cfg.Debug {
		t.Fatalf("unexpected seed/step/debug: %+v", cfg)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load([]byte("[session]\nseason = spring\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := game.DefaultSessionConfig()
	if cfg.Season != game.SeasonSpring {
		t.Fatalf("expected spring, got %s", cfg.Season)
	}
	if cfg.Start != def.Start || cfg.Sky != def.Sky || cfg.Wind != def.Wind || cfg.Step != def.Step {
		t.Fatalf("expected defaults for missing keys, got %+v", cfg)
	}

	cfg, err = Load([]byte(""))
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if cfg.Season != def.Season {
		t.Fatalf("expected default season for empty file")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	bad := []string{
		"[session]\nseason = monsoon\n",
		"[session]\ntime = 7 o'clock\n",
		"[session]\nsky = purple\n",
		"[session]\nwind = gale\n",
		"[session]\nstep = 0\n",
		"[session]\nstep = 500\n",
		"[session]\nseed = lots\n",
		"[session]\nlocation = desert\n",
	}
	for _, src := range bad {
		if _, err := Load([]byte(src)); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}
}
