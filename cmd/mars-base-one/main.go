package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mars-base-one/audio"
	"github.com/lixenwraith/mars-base-one/config"
	"github.com/lixenwraith/mars-base-one/core"
	"github.com/lixenwraith/mars-base-one/engine"
	"github.com/lixenwraith/mars-base-one/game"
	"github.com/lixenwraith/mars-base-one/random"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "World seed (0 = random)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/mars-base-one.log")
	cavernFlag = flag.Bool("cavern", false, "Generate a cavern instead of the open spawn world")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	var rng *random.Generator
	if cfg.World.Seed != 0 {
		rng = random.Seeded(cfg.World.Seed)
	}
	session, err := game.NewSession(cfg, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Session: %v\n", err)
		os.Exit(1)
	}

	cues := audio.NewCuePlayer(cfg.Audio.Volume)
	cues.SetMuted(!cfg.Audio.Enabled)
	if cfg.Audio.Enabled {
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the game runs silent
			log.Printf("audio: %v", err)
		}
		defer cues.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()

	screen.HideCursor()

	host := NewHost(screen, session, cues, engine.NewMonotonicTimeProvider())
	host.run()
}

// loadConfig layers file, environment and flags over the defaults
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.World.Seed = *seedFlag
		case "cavern":
			cfg.World.Cavern = *cavernFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		}
	})
	return cfg, cfg.Validate()
}
