package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/laaame/audio"
	"github.com/lixenwraith/laaame/capture"
	"github.com/lixenwraith/laaame/config"
	"github.com/lixenwraith/laaame/difficulty"
	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/status"
	"github.com/lixenwraith/laaame/store"
	"github.com/lixenwraith/laaame/system"
)

var (
	tierFlag   = flag.String("tier", "", "Start this tier directly instead of showing the menu")
	voiceFlag  = flag.Bool("voice", false, "Steer with the microphone")
	seedFlag   = flag.Uint64("seed", 0, "Fix the random seed (0 picks one from the clock)")
	debugFlag  = flag.Bool("debug", false, "Write logs/laaame.log and show the metrics panel")
	configFlag = flag.String("config", "", "YAML settings file")
	saveFlag   = flag.String("save", "", "Progress file, overrides the configured path")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "laaame: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *saveFlag != "" {
		cfg.SavePath = *saveFlag
	}

	st, err := store.Open(cfg.SavePath)
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return err
		}
		logger.Warn().Err(err).Str("path", cfg.SavePath).Msg("progress unreadable, playing without saving")
		st = store.NewMemory()
	}
	defer st.Close()
	logger.Info().Str("path", st.Path()).Strs("records", st.Keys()).Msg("progress opened")

	reg := status.NewRegistry()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.AudioEnabled
	audioCfg.MasterVolume = cfg.MasterVolume
	sound := audio.NewSoundManager(audioCfg, logger)
	defer sound.Cleanup()

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithStore(st),
		engine.WithRegistry(reg),
		engine.WithTiers(cfg.Tiers),
		engine.WithThresholds(cfg.Zones),
		engine.WithSystems(system.Default()...),
		engine.WithCaptureOpener(capture.Opener(reg)),
		engine.WithSeed(*seedFlag),
	}
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio off")
	} else {
		sound.Preload()
		opts = append(opts, engine.WithAssets(sound))
	}

	game := engine.NewGame(opts...)
	defer game.Close()
	game.Session().Conditioner.Sensitivity = cfg.MicSensitivity

	if *voiceFlag {
		if err := game.SetControlMode(engine.ModeVoice); err != nil {
			logger.Warn().Err(err).Msg("voice unavailable, using keyboard")
		}
	}

	tier := *tierFlag
	if tier != "" && game.Tiers().Index(tier) < 0 {
		return fmt.Errorf("%w: %q (have %v)", difficulty.ErrUnknownTier, tier, game.Tiers().Names())
	}

	f := &frontend{game: game, sound: sound, reg: reg, debug: *debugFlag}
	ctx := context.Background()
	for {
		if tier == "" {
			tier, err = runMenu(menuItems(game.Progress(), game.Tiers()), game.ControlMode() == engine.ModeVoice)
			if err != nil {
				return err
			}
			if tier == "" {
				return nil
			}
		}

		quit, err := f.play(ctx, tier)
		if err != nil {
			if errors.Is(err, engine.ErrLocked) || errors.Is(err, engine.ErrNotReady) {
				logger.Warn().Err(err).Str("tier", tier).Msg("cannot start")
				tier = ""
				continue
			}
			return err
		}
		if quit {
			return nil
		}
		tier = ""
	}
}
