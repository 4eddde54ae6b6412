package meta

import (
	"hexothello/game"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type AgentConfig struct {
	Name      string `yaml:"name"`
	Depth     int    `yaml:"depth"`
	Pruning   bool   `yaml:"pruning"`
	PassNodes bool   `yaml:"pass_nodes"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Print bool   `yaml:"print"` // Print the board after every update
	Color bool   `yaml:"color"`
}

// Config is the deployment configuration of the agent.
type Config struct {
	Agent   AgentConfig  `yaml:"agent"`
	Server  ServerConfig `yaml:"server"`
	Log     LogConfig    `yaml:"log"`
	Weights game.Weights `yaml:"weights"`
}

func DefaultConfig() Config {
	return Config{
		Agent:   AgentConfig{Name: DefaultName, Depth: DefaultDepth, Pruning: true},
		Server:  ServerConfig{Host: DefaultHost, Port: DefaultPort},
		Log:     LogConfig{Level: "info", Print: true, Color: true},
		Weights: game.DefaultWeights(),
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Agent.Name == "" || len(c.Agent.Name) > MaxNameLength {
		return errors.Errorf("agent name must be 1 to %d bytes, got %q", MaxNameLength, c.Agent.Name)
	}
	if c.Agent.Depth < 1 {
		return errors.Errorf("search depth must be positive, got %d", c.Agent.Depth)
	}
	w := c.Weights
	if w.PhaseMidpoint < 0 || w.PhaseMidpoint > 1 || w.ParityPhase < 0 || w.ParityPhase > 1 {
		return errors.New("phase thresholds must lie in [0, 1]")
	}
	return nil
}
