package main

import (
	"flag"
	"os"
	"time"

	"othello/engine"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	games       int
	depth       int
	searchDepth int
	opponent    string
	seed        uint64
	level       string
	alphabeta   bool
}

func main() {
	cfg := config{}
	flag.IntVar(&cfg.games, "games", experiments.NumGames, "Number of games per match up")
	flag.IntVar(&cfg.depth, "depth", 7, "Endgame search depth of the player")
	flag.IntVar(&cfg.searchDepth, "search-depth", 4, "Search depth of the opponent, and of both sides with -alphabeta")
	flag.StringVar(&cfg.opponent, "opponent", "random", "Opponent strategy: heuristic, minimax, alphabeta or random")
	flag.Uint64Var(&cfg.seed, "seed", 1, "Seed for the random opponent")
	flag.StringVar(&cfg.level, "log-level", "info", "Log level")
	flag.BoolVar(&cfg.alphabeta, "alphabeta", false, "Compare minimax against alpha-beta at -search-depth instead")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(cfg.level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if cfg.alphabeta {
		runPruningExperiment(cfg)
		return
	}
	runPlayerExperiment(cfg)
}

// runPlayerExperiment plays the full player against a single opponent.
func runPlayerExperiment(cfg config) {
	player := metrics.AgentConfig{ID: 1, Strategy: "player", Depth: cfg.depth}
	opponent := metrics.AgentConfig{ID: 2, Strategy: cfg.opponent, Depth: cfg.searchDepth, Seed: cfg.seed}

	_, summaries, err := experiments.Run("player", [][2]metrics.AgentConfig{{player, opponent}}, cfg.games)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, s := range summaries {
		log.Info().Msgf("agent %d vs agent %d: %d wins, %d draws, %d losses, margin %.1f ± %.1f",
			s.Agent1, s.Agent2, s.Wins, s.Draws, s.Losses, s.MeanMargin, s.StdDevMargin)
	}
}

// runPruningExperiment plays minimax against alpha-beta at the same depth
// and compares how many nodes each side searched.
func runPruningExperiment(cfg config) {
	var nodes [2]int
	for i := 0; i < cfg.games; i++ {
		e := engine.NewLocal(
			engine.NewSearcherAdapter(searcher.NewMinimax(cfg.searchDepth, searcher.WithMetrics()), game.First),
			engine.NewSearcherAdapter(searcher.NewAlphaBeta(cfg.searchDepth, searcher.WithMetrics()), game.Second),
		)
		_, moveMetrics, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		for _, m := range moveMetrics {
			nodes[m.Side] += m.Nodes
		}
	}
	log.Info().Msgf("depth %d over %d games: minimax searched %d nodes, alpha-beta %d", cfg.searchDepth, cfg.games, nodes[game.First], nodes[game.Second])
}
