// Package config resolves runtime settings from code defaults, an optional YAML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/difficulty"
	"github.com/lixenwraith/laaame/mic"
)

var ErrInvalid = errors.New("invalid configuration")

// Environment overrides, applied after the file
const (
	EnvAudioEnabled   = "LAAAME_AUDIO_ENABLED"
	EnvMasterVolume   = "LAAAME_MASTER_VOLUME"
	EnvSavePath       = "LAAAME_SAVE_PATH"
	EnvMicSensitivity = "LAAAME_MIC_SENSITIVITY"
)

// Settings is the resolved configuration handed to the binary
type Settings struct {
	Tiers          difficulty.Table
	AudioEnabled   bool
	MasterVolume   float64 // 0.0 to 1.0
	MicSensitivity float64
	Zones          mic.Thresholds
	SavePath       string
}

// File mirrors the YAML document; nil fields keep the default
type File struct {
	Tiers   map[string]TierOverride `yaml:"tiers"`
	Audio   AudioSection            `yaml:"audio"`
	Capture CaptureSection          `yaml:"capture"`
	Save    string                  `yaml:"save_path"`
}

type TierOverride struct {
	Target        *int           `yaml:"target"`
	SpeedBase     *float64       `yaml:"speed_base"`
	SpeedGrowth   *float64       `yaml:"speed_growth"`
	SpawnInterval *time.Duration `yaml:"spawn_interval"`
	Mix           []float64      `yaml:"mix"`
}

type AudioSection struct {
	Enabled *bool `yaml:"enabled"`
	Volume  *int  `yaml:"volume"` // 0-100
}

type CaptureSection struct {
	Sensitivity *float64    `yaml:"sensitivity"`
	Zones       ZoneSection `yaml:"zones"`
}

// ZoneSection overrides the hysteresis bands on the smoothed level
type ZoneSection struct {
	UpEnter   *float64       `yaml:"up_enter"`
	UpExit    *float64       `yaml:"up_exit"`
	DownEnter *float64       `yaml:"down_enter"`
	DownExit  *float64       `yaml:"down_exit"`
	Hold      *time.Duration `yaml:"hold"`
}

func (z ZoneSection) apply(t *mic.Thresholds) error {
	if z == (ZoneSection{}) {
		return nil
	}
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{z.UpEnter, &t.UpEnter},
		{z.UpExit, &t.UpExit},
		{z.DownEnter, &t.DownEnter},
		{z.DownExit, &t.DownExit},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	if z.Hold != nil {
		t.Hold = *z.Hold
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Tiers:          difficulty.DefaultTiers(),
		AudioEnabled:   true,
		MasterVolume:   0.5,
		MicSensitivity: constant.MicSensitivity,
		Zones:          mic.DefaultThresholds(),
		SavePath:       DefaultSavePath(),
	}
}

// DefaultSavePath places progress under the user config directory, falling back to the working directory
func DefaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "laaame-progress.yaml"
	}
	return filepath.Join(dir, "laaame", "progress.yaml")
}

// Load resolves defaults, then the file at path when non-empty, then the environment
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("read config: %w", err)
		}
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return s, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		if err := f.Apply(&s); err != nil {
			return s, err
		}
	}
	ApplyEnv(&s, os.Getenv)
	return s, nil
}

// Apply overlays the file onto s; the tier table is validated after all overrides
func (f *File) Apply(s *Settings) error {
	tiers := append(difficulty.Table(nil), s.Tiers...)
	for name, o := range f.Tiers {
		i := tiers.Index(name)
		if i < 0 {
			return fmt.Errorf("%w: %w: %q", ErrInvalid, difficulty.ErrUnknownTier, name)
		}
		if err := o.apply(&tiers[i]); err != nil {
			return err
		}
	}
	if err := tiers.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	s.Tiers = tiers

	if f.Audio.Enabled != nil {
		s.AudioEnabled = *f.Audio.Enabled
	}
	if f.Audio.Volume != nil {
		s.MasterVolume = volumeFromPercent(*f.Audio.Volume)
	}
	if f.Capture.Sensitivity != nil {
		if *f.Capture.Sensitivity <= 0 {
			return fmt.Errorf("%w: capture sensitivity %.2f", ErrInvalid, *f.Capture.Sensitivity)
		}
		s.MicSensitivity = *f.Capture.Sensitivity
	}
	zones := s.Zones
	if err := f.Capture.Zones.apply(&zones); err != nil {
		return err
	}
	s.Zones = zones
	if f.Save != "" {
		s.SavePath = f.Save
	}
	return nil
}

func (o TierOverride) apply(t *difficulty.Tier) error {
	if o.Target != nil {
		t.Target = *o.Target
	}
	if o.SpeedBase != nil {
		t.SpeedBase = *o.SpeedBase
	}
	if o.SpeedGrowth != nil {
		t.SpeedGrowth = *o.SpeedGrowth
	}
	if o.SpawnInterval != nil {
		t.SpawnInterval = *o.SpawnInterval
	}
	if o.Mix != nil {
		if len(o.Mix) != len(t.Mix) {
			return fmt.Errorf("%w: tier %s mix needs %d thresholds, got %d", ErrInvalid, t.Name, len(t.Mix), len(o.Mix))
		}
		copy(t.Mix[:], o.Mix)
	}
	return nil
}

// ApplyEnv applies environment overrides; unparsable values are ignored
func ApplyEnv(s *Settings, getenv func(string) string) {
	if enabled := getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			s.AudioEnabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			s.MasterVolume = volumeFromPercent(val)
		}
	}

	if sens := getenv(EnvMicSensitivity); sens != "" {
		if val, err := strconv.ParseFloat(sens, 64); err == nil && val > 0 {
			s.MicSensitivity = val
		}
	}

	if path := getenv(EnvSavePath); path != "" {
		s.SavePath = path
	}
}

func volumeFromPercent(v int) float64 {
	vol := float64(v) / 100.0
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	return vol
}
