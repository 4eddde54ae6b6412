package main

import (
	"context"
	"flag"
	"fmt"
	"hexothello/communication/client"
	"hexothello/communication/server"
	"hexothello/engine"
	"hexothello/experiments"
	"hexothello/game"
	"hexothello/gamemaster"
	"hexothello/meta"
	"hexothello/player"
	"hexothello/searcher"
	"hexothello/searcher/agent"
	"net"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	config     meta.Config
	mode       string
	opponent   string // URL of an agent server for selfplay
	recordDir  string
	experiment string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(opts.config.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch opts.mode {
	case "play":
		err = runPlay(ctx, opts.config)
	case "serve":
		addr := net.JoinHostPort(opts.config.Server.Host, opts.config.Server.Port)
		log.Info().Msgf("serving agent %s on %s", opts.config.Agent.Name, addr)
		err = agent.StartAgentServer(addr, newSearchAgent(opts.config))
	case "selfplay":
		err = runSelfPlay(opts)
	case "referee":
		err = runReferee(ctx, opts.config)
	case "experiment":
		err = runExperiment(opts.experiment)
	default:
		err = fmt.Errorf("unknown mode %q", opts.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", opts.mode)
	}
}

// parseFlags loads the config file, if any, then applies the flags that were set explicitly.
func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("hexothello", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	host := fs.String("i", meta.DefaultHost, "Server IP address")
	port := fs.String("p", meta.DefaultPort, "Server port")
	name := fs.String("name", meta.DefaultName, "Agent name sent to the server")
	depth := fs.Int("depth", meta.DefaultDepth, "Search depth in plies")
	prune := fs.Bool("prune", true, "Enable alpha-beta pruning")
	passNodes := fs.Bool("pass-nodes", false, "Search passes as zero-effect moves")
	level := fs.String("log-level", "info", "Log level")
	printBoard := fs.Bool("print", true, "Print the board after every update")
	mode := fs.String("mode", "play", "One of play, serve, selfplay, referee, experiment")
	opponent := fs.String("opponent", "", "Agent server URL playing white in selfplay")
	recordDir := fs.String("records", "", "Directory for selfplay game records")
	experiment := fs.String("experiment", "pruning", "One of pruning, depth, throughput")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := meta.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = meta.Load(*configPath)
		if err != nil {
			return options{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.Server.Host = *host
		case "p":
			cfg.Server.Port = *port
		case "name":
			cfg.Agent.Name = *name
		case "depth":
			cfg.Agent.Depth = *depth
		case "prune":
			cfg.Agent.Pruning = *prune
		case "pass-nodes":
			cfg.Agent.PassNodes = *passNodes
		case "log-level":
			cfg.Log.Level = *level
		case "print":
			cfg.Log.Print = *printBoard
		}
	})

	return options{
		config:     cfg,
		mode:       *mode,
		opponent:   *opponent,
		recordDir:  *recordDir,
		experiment: *experiment,
	}, cfg.Validate()
}

func setupLogging(cfg meta.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !cfg.Color})
}

func newSearchAgent(cfg meta.Config) agent.Agent {
	return agent.NewSearchAgent(searcher.NewAlphaBeta(
		searcher.WithDepth(cfg.Agent.Depth),
		searcher.WithPruning(cfg.Agent.Pruning),
		searcher.WithPassNodes(cfg.Agent.PassNodes),
		searcher.WithEvaluationFn(game.NewEvaluator(cfg.Weights).Evaluate),
		searcher.WithMetrics(),
	))
}

func runPlay(ctx context.Context, cfg meta.Config) error {
	comm, err := client.Dial(ctx, cfg.Server.Host, cfg.Server.Port)
	if err != nil {
		return err
	}
	log.Info().Msgf("connected to %s as %s", comm.Addr(), cfg.Agent.Name)

	p := player.NewPlayer(cfg.Agent.Name, comm, newSearchAgent(cfg))
	if cfg.Log.Print {
		p.Output = os.Stdout
		p.Colored = cfg.Log.Color
	}
	return p.Run(ctx)
}

func runSelfPlay(opts options) error {
	cfg := opts.config
	var white agent.Agent = newSearchAgent(cfg)
	if opts.opponent != "" {
		white = engine.NewRemoteAgent(opts.opponent)
	}
	gameMetric, moveMetrics, record := engine.LocalEngine(newSearchAgent(cfg), white).Run()

	if cfg.Log.Print {
		record.Final.Fprint(os.Stdout, cfg.Log.Color)
	}
	winner := gameMetric.Winner
	if winner == "" {
		winner = "nobody"
	}
	log.Info().Msgf("game %s: %d moves, %s wins %d-%d", gameMetric.ID, len(moveMetrics), winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)

	if opts.recordDir == "" {
		return nil
	}
	data, err := record.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.recordDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(opts.recordDir, record.ID+".json")
	log.Info().Msgf("writing record to %s", path)
	return os.WriteFile(path, data, 0644)
}

func runReferee(ctx context.Context, cfg meta.Config) error {
	srv, err := server.Listen(net.JoinHostPort(cfg.Server.Host, cfg.Server.Port))
	if err != nil {
		return err
	}
	defer srv.Close()
	log.Info().Msgf("refereeing on %s", srv.Addr())

	result, err := gamemaster.NewGameMaster(srv).Run(ctx)
	if err != nil {
		return err
	}
	if cfg.Log.Print {
		result.Record.Final.Fprint(os.Stdout, cfg.Log.Color)
	}
	log.Info().Msgf("%s (black) vs %s (white): winner %q, forfeit %t",
		result.Names[game.Black], result.Names[game.White], result.Winner, result.Forfeit)
	return nil
}

func runExperiment(name string) error {
	var err error
	switch name {
	case "pruning":
		_, err = experiments.RunPruningExperiment()
	case "depth":
		_, err = experiments.RunDepthExperiment()
	case "throughput":
		_, _, err = experiments.RunThroughputExperiment()
	default:
		err = fmt.Errorf("unknown experiment %q", name)
	}
	return err
}
