package experiments

import (
	"hexothello/experiments/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

// Throughput is the search speed of one configuration over a set of games.
type Throughput struct {
	Config      metrics.AgentConfig
	Searches    int
	Nodes       int
	Duration    time.Duration
	NodesPerSec float64
}

// RunThroughputExperiment measures nodes per second for increasing depths. Each matchup uses
// the same config on both sides for similar game lengths.
func RunThroughputExperiment(options ...Option) (string, []Throughput, error) {
	s := newSettings(options)
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= 5; depth++ {
		config := metrics.AgentConfig{ID: depth, Depth: depth, Pruning: true}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	writer, err := metrics.NewWriter(s.root, "throughput")
	if err != nil {
		return "", nil, err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", nil, err
	}
	gameRecords, moveRecords := playMatchUps("throughput", matchUps, s)
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", nil, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", nil, err
	}

	results := summarize(configs, gameRecords, moveRecords)
	for _, r := range results {
		log.Info().Msgf("depth %d: %d searches, %d nodes, %.0f nodes/s", r.Config.Depth, r.Searches, r.Nodes, r.NodesPerSec)
	}
	return writer.Dir(), results, nil
}

// summarize aggregates move records per config. Both sides of every game share a config here,
// so the black agent of a game identifies it.
func summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) []Throughput {
	byID := map[int]int{}
	results := make([]Throughput, len(configs))
	for i, config := range configs {
		byID[config.ID] = i
		results[i].Config = config
	}
	configOfGame := map[int]int{}
	for _, g := range games {
		configOfGame[g.Index] = byID[g.Black]
	}
	for _, m := range moves {
		r := &results[configOfGame[m.Game]]
		r.Searches++
		r.Nodes += m.Nodes
		r.Duration += m.Duration
	}
	for i := range results {
		if results[i].Duration > 0 {
			results[i].NodesPerSec = float64(results[i].Nodes) / results[i].Duration.Seconds()
		}
	}
	return results
}
