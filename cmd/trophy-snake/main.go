package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	xterm "golang.org/x/term"

	"github.com/lixenwraith/trophy-snake/audio"
	"github.com/lixenwraith/trophy-snake/config"
	"github.com/lixenwraith/trophy-snake/core"
	"github.com/lixenwraith/trophy-snake/game"
	"github.com/lixenwraith/trophy-snake/service"
	"github.com/lixenwraith/trophy-snake/status"
	"github.com/lixenwraith/trophy-snake/terminal"
)

var (
	configFlag      = flag.String("config", "", "path to config.ini (default: user config dir)")
	seedFlag        = flag.Uint64("seed", 0, "random seed, 0 for time-based")
	muteFlag        = flag.Bool("mute", false, "disable sound")
	debugFlag       = flag.Bool("debug", false, "write debug log")
	writeConfigFlag = flag.Bool("write-config", false, "write the effective config to -config path and exit")
)

func main() {
	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	applyFlags(cfg)

	if *writeConfigFlag {
		if err := config.Save(path, cfg); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		color.Green("Config written to %s", path)
		return 0
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		color.New(color.FgRed).Fprintln(os.Stderr, "trophy-snake needs an interactive terminal")
		return 1
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := terminal.New(nil)
	sound := audio.NewSoundManager()

	hub := service.NewHub()
	if err := hub.Register(term); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := hub.Register(sound, audio.Config{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: audio.DefaultConfig().SampleRate,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	core.SetCrashCleanup(term.Restore)
	defer core.SetCrashCleanup(nil)

	if err := hub.InitAll(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	defer hub.StopAll()
	if err := hub.StartAll(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	metrics := status.NewRegistry()
	session := game.NewSession(term, game.Options{
		Seed:    seed,
		Player:  sound,
		Metrics: metrics,
	})
	res, err := session.Run(ctx)

	// Restore the terminal before printing anything
	hub.StopAll()
	log.Printf("metrics: %v", metrics.Snapshot())

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	printSummary(os.Stdout, res)
	return 0
}

// applyFlags lets explicitly set flags override the file
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		case "debug":
			cfg.Log.Debug = *debugFlag
		}
	})
}
