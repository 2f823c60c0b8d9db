package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Simulation
	Seed          uint64
	SpawnInterval float64 // seconds between power blocks

	// Window
	WindowWidth  int
	WindowHeight int
	VSync        bool

	// Audio
	SFXVolume float64
	Mute      bool

	// Logs every struck block.
	Debug bool
}

// Load reads configuration from the environment, after merging a .env
// file from the working directory if one exists.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Seed:          getEnvUint64("BLOCKPONG_SEED", uint64(time.Now().UnixNano())),
		SpawnInterval: getEnvFloat("BLOCKPONG_SPAWN_INTERVAL", 3.0),

		WindowWidth:  getEnvInt("BLOCKPONG_WIDTH", 1280),
		WindowHeight: getEnvInt("BLOCKPONG_HEIGHT", 720),
		VSync:        getEnvBool("BLOCKPONG_VSYNC", true),

		SFXVolume: clampVolume(getEnvFloat("BLOCKPONG_SFX_VOLUME", 0.5)),
		Mute:      getEnvBool("BLOCKPONG_MUTE", false),

		Debug: getEnvBool("BLOCKPONG_DEBUG", false),
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}
