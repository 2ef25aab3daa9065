package config

import (
	"os"
	"strconv"
)

// Environment overrides, applied after file loading
const (
	EnvSeed         = "MARS_BASE_ONE_SEED"
	EnvAudioEnabled = "MARS_BASE_ONE_AUDIO_ENABLED"
	EnvAudioVolume  = "MARS_BASE_ONE_AUDIO_VOLUME"
)

// ApplyEnv overrides fields from the environment; malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.World.Seed = seed
		}
	}
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvAudioVolume); v != "" {
		if vol, err := strconv.ParseFloat(v, 64); err == nil {
			c.Audio.Volume = vol
		}
	}
}
