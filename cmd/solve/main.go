package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"boardsearch/internal/app"
	"boardsearch/internal/game"
	"boardsearch/internal/match"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON config file")
		variant    = flag.String("variant", "", "tictactoe or connect4")
		boardText  = flag.String("board", "", "position, rows top to bottom separated by '/' (empty board if unset)")
		sideText   = flag.String("side", "", "side to search for: X or O (derived from the position if unset)")
		depth      = flag.Int("depth", 0, "search depth in plies (variant default if 0)")
		seed       = flag.Int64("seed", 0, "tie-break seed for -shuffle")
		shuffle    = flag.Bool("shuffle", false, "randomize ties between equal root moves")
		stats      = flag.Bool("stats", false, "log search statistics")
		selfplay   = flag.Bool("selfplay", false, "let the engine play both sides to the end")
	)
	flag.Parse()

	cfg := app.DefaultConfig()
	if *configPath != "" {
		c, err := app.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = *variant
		case "depth":
			cfg.Depth = *depth
		case "seed":
			cfg.Seed = *seed
		case "shuffle":
			cfg.Shuffle = *shuffle
		case "stats":
			cfg.LogStats = *stats
		}
	})

	logger := log.New(os.Stderr, "", log.LstdFlags)
	rules, engine, err := app.Boot(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	if *selfplay {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		m := match.New(rules, engine, logger, game.First, game.Second)
		if err := m.Run(ctx); err != nil {
			log.Fatal(err)
		}
		st := m.Snapshot()
		fmt.Printf("board=%s winner=%s\n", st.Board, st.Winner)
		return
	}

	board := rules.NewBoard()
	if *boardText != "" {
		board, err = game.ParseBoard(rules, *boardText)
		if err != nil {
			log.Fatal(err)
		}
	}
	side := rules.SideToMove(board)
	if *sideText != "" {
		side, err = game.ParseSide(*sideText)
		if err != nil {
			log.Fatal(err)
		}
	}

	out, err := engine.Search(board, side)
	if err != nil {
		log.Fatal(err)
	}
	if !out.HasMove() {
		fmt.Printf("side=%s move=none score=%d\n", side, out.Score)
		return
	}
	fmt.Printf("side=%s move=%d score=%d nodes=%d\n", side, out.Move, out.Score, out.Nodes)
}
