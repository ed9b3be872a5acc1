package app

import (
	"fmt"
	"log"

	"boardsearch/internal/game"
	"boardsearch/internal/util"
)

// Rules resolves a variant name
func Rules(variant string) (*game.Rules, error) {
	switch variant {
	case VariantTicTacToe, "ttt":
		return game.TicTacToe(), nil
	case VariantConnectFour, "c4", "":
		return game.ConnectFour(), nil
	}
	return nil, fmt.Errorf("unknown variant %q", variant)
}

// Boot builds the rules and a configured engine for cfg
func Boot(cfg Config, logger *log.Logger) (*game.Rules, *game.Engine, error) {
	rules, err := Rules(cfg.Variant)
	if err != nil {
		return nil, nil, err
	}

	ecfg := game.TicTacToeConfig()
	if rules.Discipline == game.GravityDrop {
		ecfg = game.ConnectFourConfig(rules)
	}
	if cfg.Depth > 0 {
		ecfg.Depth = cfg.Depth
	}
	if cfg.WinScore > 0 {
		ecfg.WinScore = cfg.WinScore
	}
	if cfg.Weights != nil {
		ecfg.Evaluator = game.NewWindowEvaluator(rules, *cfg.Weights)
	}
	// a bounded small board falls back to the line heuristic
	if ecfg.Evaluator == nil && ecfg.Depth > 0 && ecfg.Depth < rules.BoardSize() {
		ecfg.Evaluator = game.NewLineEvaluator(rules)
		if cfg.WinScore == 0 {
			ecfg.WinScore = 1000
		}
	}
	if cfg.Shuffle {
		rng, seed, err := util.NewRand(cfg.Seed)
		if err != nil {
			return nil, nil, fmt.Errorf("seeding tie-breaks: %w", err)
		}
		ecfg.Rand = rng
		if logger != nil {
			logger.Printf("tie-break seed %d", seed)
		}
	}
	ecfg.Logger = logger
	ecfg.LogStats = cfg.LogStats

	engine, err := game.NewEngine(rules, ecfg)
	if err != nil {
		return nil, nil, err
	}
	return rules, engine, nil
}
