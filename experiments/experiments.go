package experiments

import (
	"fmt"
	"hexothello/engine"
	"hexothello/experiments/metrics"
	"hexothello/searcher"
	"hexothello/searcher/agent"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

const (
	NumGames   = 10 // Per match up
	OutputRoot = "results"
)

type Option func(s *settings)

type settings struct {
	root     string
	games    int
	progress io.Writer
}

// WithOutputRoot sets the directory under which each run writes its CSV files.
func WithOutputRoot(root string) Option {
	return func(s *settings) {
		s.root = root
	}
}

func WithGames(games int) Option {
	return func(s *settings) {
		if games > 0 {
			s.games = games
		}
	}
}

// WithProgressOutput redirects the progress bar, io.Discard hides it.
func WithProgressOutput(w io.Writer) Option {
	return func(s *settings) {
		s.progress = w
	}
}

func newSettings(options []Option) settings {
	s := settings{root: OutputRoot, games: NumGames, progress: os.Stderr}
	for _, option := range options {
		option(&s)
	}
	return s
}

// RunPruningExperiment pits agents of equal depth with and without alpha-beta pruning. Both
// play the same moves, so the interesting output is the node counts per move.
func RunPruningExperiment(options ...Option) (string, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= 4; depth++ {
		pruned := metrics.AgentConfig{ID: 2 * depth, Depth: depth, Pruning: true}
		full := metrics.AgentConfig{ID: 2*depth + 1, Depth: depth, Pruning: false}
		configs = append(configs, pruned, full)
		matchUps = append(matchUps, [2]metrics.AgentConfig{pruned, full})
	}
	return runExperiment("pruning", configs, matchUps, newSettings(options))
}

// RunDepthExperiment pairs a baseline depth-2 agent against deeper and shallower agents.
func RunDepthExperiment(options ...Option) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Depth: 2, Pruning: true}
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: 1, Pruning: true},
		{ID: 2, Depth: 3, Pruning: true},
		{ID: 3, Depth: 4, Pruning: true},
		{ID: 4, Depth: 4, Pruning: true, PassNodes: true},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return runExperiment("depth", append(configs, baseline), matchUps, newSettings(options))
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, s settings) (string, error) {
	writer, err := metrics.NewWriter(s.root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}

	gameRecords, moveRecords := playMatchUps(name, matchUps, s)

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %s results in %s", name, writer.Dir())

	return writer.Dir(), nil
}

func playMatchUps(name string, matchUps [][2]metrics.AgentConfig, s settings) ([]metrics.GameRecord, []metrics.MoveRecord) {
	log.Info().Msgf("starting %s experiment...", name)
	bar := newBar(len(matchUps)*s.games, name, s.progress)
	defer bar.Close()

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchUp := range matchUps {
		log.Debug().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < s.games; i++ {
			// Alternate who opens
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}

			gameMetric, moveMetrics := runGame(black, white)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				Index:      count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			bar.Add(1)
		}
	}
	bar.Finish()
	log.Info().Msgf("completed %s experiment with %d games", name, count)

	return gameRecords, moveRecords
}

// runGame plays one game between two search agents.
func runGame(black, white metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(
		agent.NewSearchAgent(createAlphaBeta(black)),
		agent.NewSearchAgent(createAlphaBeta(white)),
	)
	gameMetric, moveMetrics, _ := e.Run()
	return gameMetric, moveMetrics
}

func createAlphaBeta(config metrics.AgentConfig) *searcher.AlphaBeta {
	return searcher.NewAlphaBeta(
		searcher.WithDepth(config.Depth),
		searcher.WithPruning(config.Pruning),
		searcher.WithPassNodes(config.PassNodes),
		searcher.WithMetrics(),
	)
}

func newBar(total int, description string, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}
