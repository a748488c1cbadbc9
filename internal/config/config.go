package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// GameConfig holds tunable session parameters. Rule numerics (action costs,
// the forced-coup threshold) are part of the domain and are not configurable.
type GameConfig struct {
	ChallengeWindowSeconds      int `json:"challenge_window_seconds"`
	BlockWindowSeconds          int `json:"block_window_seconds"`
	BlockChallengeWindowSeconds int `json:"block_challenge_window_seconds"`
	MinPlayers                  int `json:"min_players"`
	MaxPlayers                  int `json:"max_players"`
	HistoryLimit                int `json:"history_limit"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Default returns the built-in configuration.
func Default() GameConfig {
	return GameConfig{
		ChallengeWindowSeconds:      8,
		BlockWindowSeconds:          8,
		BlockChallengeWindowSeconds: 8,
		MinPlayers:                  2,
		MaxPlayers:                  6,
		HistoryLimit:                50,
	}
}

// LoadGameConfig loads the game configuration from the given path. Missing
// fields keep their defaults. An empty path keeps defaults entirely.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c := Default()
		if path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				loadErr = fmt.Errorf("failed to read game config: %w", err)
				return
			}
			if err := json.Unmarshal(data, &c); err != nil {
				loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
				return
			}
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}

// ApplyEnv overrides configuration values from the runtime environment map.
// Unknown or malformed values are ignored.
func (c *GameConfig) ApplyEnv(env map[string]string) {
	setInt := func(key string, dst *int) {
		if val, ok := env[key]; ok {
			if i, err := strconv.Atoi(val); err == nil && i > 0 {
				*dst = i
			}
		}
	}
	setInt("coup_challenge_window_sec", &c.ChallengeWindowSeconds)
	setInt("coup_block_window_sec", &c.BlockWindowSeconds)
	setInt("coup_block_challenge_window_sec", &c.BlockChallengeWindowSeconds)
	setInt("coup_min_players", &c.MinPlayers)
	setInt("coup_max_players", &c.MaxPlayers)
	setInt("coup_history_limit", &c.HistoryLimit)
}

// ChallengeWindow returns the challenge window as a duration.
func (c GameConfig) ChallengeWindow() time.Duration {
	return time.Duration(c.ChallengeWindowSeconds) * time.Second
}

// BlockWindow returns the block window as a duration.
func (c GameConfig) BlockWindow() time.Duration {
	return time.Duration(c.BlockWindowSeconds) * time.Second
}

// BlockChallengeWindow returns the block-challenge window as a duration.
func (c GameConfig) BlockChallengeWindow() time.Duration {
	return time.Duration(c.BlockChallengeWindowSeconds) * time.Second
}
