package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"BLOCKPONG_SPAWN_INTERVAL", "BLOCKPONG_WIDTH", "BLOCKPONG_HEIGHT",
		"BLOCKPONG_VSYNC", "BLOCKPONG_SFX_VOLUME", "BLOCKPONG_MUTE", "BLOCKPONG_DEBUG",
	} {
		t.Setenv(k, "")
	}
	cfg := Load()

	if cfg.SpawnInterval != 3.0 {
		t.Errorf("spawn interval = %v, want 3", cfg.SpawnInterval)
	}
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
		t.Errorf("window = %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if !cfg.VSync || cfg.Mute || cfg.Debug {
		t.Errorf("flags = vsync:%v mute:%v debug:%v", cfg.VSync, cfg.Mute, cfg.Debug)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BLOCKPONG_SEED", "1234")
	t.Setenv("BLOCKPONG_SPAWN_INTERVAL", "1.5")
	t.Setenv("BLOCKPONG_WIDTH", "640")
	t.Setenv("BLOCKPONG_SFX_VOLUME", "3")
	t.Setenv("BLOCKPONG_MUTE", "yes")
	t.Setenv("BLOCKPONG_VSYNC", "off")

	cfg := Load()
	if cfg.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", cfg.Seed)
	}
	if cfg.SpawnInterval != 1.5 || cfg.WindowWidth != 640 {
		t.Errorf("interval=%v width=%d", cfg.SpawnInterval, cfg.WindowWidth)
	}
	if cfg.SFXVolume != 1 {
		t.Errorf("volume = %v, want clamped to 1", cfg.SFXVolume)
	}
	if !cfg.Mute || cfg.VSync {
		t.Errorf("mute=%v vsync=%v", cfg.Mute, cfg.VSync)
	}
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("BLOCKPONG_SEED", "not-a-number")
	t.Setenv("BLOCKPONG_HEIGHT", "tall")
	t.Setenv("BLOCKPONG_DEBUG", "maybe")

	cfg := Load()
	if cfg.Seed == 0 {
		t.Errorf("seed should fall back to the clock")
	}
	if cfg.WindowHeight != 720 || cfg.Debug {
		t.Errorf("height=%d debug=%v", cfg.WindowHeight, cfg.Debug)
	}
}
