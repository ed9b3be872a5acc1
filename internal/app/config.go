package app

import (
	"encoding/json"
	"fmt"
	"os"

	"boardsearch/internal/game"
)

const (
	VariantTicTacToe   = "tictactoe"
	VariantConnectFour = "connect4"
)

type Config struct {
	Variant  string              `json:"variant"`
	Depth    int                 `json:"depth"`     // 0 keeps the variant default
	WinScore int                 `json:"win_score"` // 0 keeps the variant default
	Seed     int64               `json:"seed"`      // used when Shuffle is set; 0 draws one
	Shuffle  bool                `json:"shuffle"`
	LogStats bool                `json:"log_stats"`
	Weights  *game.WindowWeights `json:"weights,omitempty"`
}

func DefaultConfig() Config {
	return Config{Variant: VariantConnectFour}
}

// LoadConfig reads a JSON config, starting from the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
