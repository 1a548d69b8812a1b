package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultFrameMS  = 16
	defaultLogLevel = "info"
)

type Config struct {
	DataPath         string
	DBPath           string
	ActivePracticeAt string
	LogPath          string
	LogLevel         string
	FrameInterval    time.Duration
	Team             string
}

// New resolves paths under dataPath and reads KICKCLOCK_* settings, loading
// dataPath/.env first when present. Variables already set in the process
// environment win over the file.
func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	envFile := filepath.Join(dataPath, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	stateDir := filepath.Join(dataPath, ".kickclock")
	cfg := Config{
		DataPath:         dataPath,
		DBPath:           filepath.Join(stateDir, "kickclock.db"),
		ActivePracticeAt: filepath.Join(stateDir, "active-practice.json"),
		LogPath:          filepath.Join(stateDir, "kickclock.log"),
		LogLevel:         defaultLogLevel,
		FrameInterval:    defaultFrameMS * time.Millisecond,
		Team:             strings.TrimSpace(os.Getenv("KICKCLOCK_TEAM")),
	}
	if level := strings.TrimSpace(os.Getenv("KICKCLOCK_LOG_LEVEL")); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if raw := strings.TrimSpace(os.Getenv("KICKCLOCK_FRAME_MS")); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("KICKCLOCK_FRAME_MS: %w", err)
		}
		cfg.FrameInterval = time.Duration(clamp(ms, 1, 1000)) * time.Millisecond
	}
	return cfg, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
