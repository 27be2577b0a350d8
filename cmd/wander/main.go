package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/wander/internal/config"
	"github.com/appengine-ltd/wander/internal/game"
	"github.com/appengine-ltd/wander/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		seed        int64
		debug       bool
		verbose     bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "path to an ini file with a [session] section")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.BoolVar(&debug, "debug", false, "print clock and temperature after every tick")
	flag.BoolVar(&verbose, "v", false, "log debug detail to stderr")
	flag.Parse()

	if showVersion {
		fmt.Printf("wander %s (%s) %s\n", version, commit, date)
		return
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := game.DefaultSessionConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if debug {
		cfg.Debug = true
	}

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Session:   cfg,
		Logger:    logger,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}
