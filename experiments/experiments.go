package experiments

import (
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

const NumGames = 10 // Per match up

// Summary aggregates the games of one match up from Agent1's point of view.
type Summary struct {
	Agent1, Agent2 int
	Wins           int
	Draws          int
	Losses         int
	MeanMargin     float64
	StdDevMargin   float64
}

// Run plays games between each pair of agents, alternating who moves
// first, and logs a summary per match up.
func Run(name string, matchUps [][2]metrics.AgentConfig, games int) ([]metrics.GameRecord, []Summary, error) {
	count := 0
	var records []metrics.GameRecord
	var summaries []Summary

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1, config2 := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		var matchRecords []metrics.GameRecord
		for i := 0; i < games; i++ {
			agent1First := i%2 == 0
			first, second := config1, config2
			if !agent1First {
				first, second = config2, config1
			}

			firstAgent, err := newAgent(first, game.First, i)
			if err != nil {
				return records, summaries, err
			}
			secondAgent, err := newAgent(second, game.Second, i)
			if err != nil {
				return records, summaries, err
			}

			gameMetric, _, err := engine.NewLocal(firstAgent, secondAgent).Run()
			if err != nil {
				return records, summaries, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			record := metrics.GameRecord{
				ID:          count,
				Agent1:      config1.ID,
				Agent2:      config2.ID,
				Agent1First: agent1First,
				GameMetric:  gameMetric,
			}
			matchRecords = append(matchRecords, record)
			log.Info().Msgf("completed matchup %d of %d game %d with agent1 margin %d", mi+1, len(matchUps), i+1, record.Agent1Margin())
		}

		summary := summarize(config1.ID, config2.ID, matchRecords)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), summary)
		records = append(records, matchRecords...)
		summaries = append(summaries, summary)
	}

	log.Info().Msgf("completed %s experiment", name)
	return records, summaries, nil
}

func summarize(agent1, agent2 int, records []metrics.GameRecord) Summary {
	s := Summary{Agent1: agent1, Agent2: agent2}
	margins := make([]float64, len(records))
	for i, r := range records {
		margin := r.Agent1Margin()
		margins[i] = float64(margin)
		switch {
		case margin > 0:
			s.Wins++
		case margin < 0:
			s.Losses++
		default:
			s.Draws++
		}
	}
	if len(margins) > 1 {
		s.MeanMargin, s.StdDevMargin = stat.MeanStdDev(margins, nil)
	} else if len(margins) == 1 {
		s.MeanMargin = margins[0]
	}
	return s
}

func newAgent(config metrics.AgentConfig, side game.Side, gameIndex int) (engine.Agent, error) {
	switch config.Strategy {
	case "player":
		options := []player.Option{player.WithMetrics()}
		if config.Depth > 0 {
			options = append(options, player.WithEndgameDepth(config.Depth))
		}
		return player.New(side, options...), nil
	case "heuristic":
		return engine.NewSearcherAdapter(searcher.NewHeuristic(searcher.WithMetrics()), side), nil
	case "minimax":
		return engine.NewSearcherAdapter(searcher.NewMinimax(max(config.Depth, 1), searcher.WithMetrics()), side), nil
	case "alphabeta":
		return engine.NewSearcherAdapter(searcher.NewAlphaBeta(max(config.Depth, 1), searcher.WithMetrics()), side), nil
	case "random":
		return engine.NewSearcherAdapter(searcher.NewRandom(config.Seed+uint64(gameIndex)), side), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown strategy %q", config.ID, config.Strategy)
	}
}
