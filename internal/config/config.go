package config

import (
	"os"
	"strconv"

	"amalgam/internal/game"
)

type Config struct {
	HTTPAddr   string
	CodeLength int

	// Rule knobs; see game.Rules for the semantics of each value.
	FirstMover       string
	EliminationScope string
	ArrivalCapture   string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		CodeLength:       getenvInt("CODE_LENGTH", 6),
		FirstMover:       getenv("FIRST_MOVER", "placer-first"),
		EliminationScope: getenv("ELIMINATION_SCOPE", "all"),
		ArrivalCapture:   getenv("ARRIVAL_CAPTURE", "none"),
	}
}

// GameRules maps the configured knobs onto an engine rule set. Unknown values
// fall back to the defaults.
func (c Config) GameRules() game.Rules {
	rules := game.DefaultRules()
	if c.FirstMover == "placer-second" {
		rules.FirstMover = game.MoverSecondPlacer
	}
	if c.EliminationScope == "gems" {
		rules.Elimination = game.EliminationGems
	}
	// "none" is the only built-in arrival-capture policy; custom policies
	// plug in through game.Rules directly.
	return rules
}
