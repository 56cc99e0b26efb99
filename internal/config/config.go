// Package config loads table definitions from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the root of a rules-engine configuration file.
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Tables   []TableConfig `hcl:"table,block"`
}

// TableConfig defines one table to run.
type TableConfig struct {
	Name         string   `hcl:"name,label"`
	Players      []string `hcl:"players"`
	InitialChips int      `hcl:"initial_chips,optional"`
	SmallBlind   int      `hcl:"small_blind"`
	BigBlind     int      `hcl:"big_blind"`
	Rake         float64  `hcl:"rake,optional"`
	Hands        int      `hcl:"hands,optional"`
	Seed         int64    `hcl:"seed,optional"`
}

// Default returns the configuration used when no file is given: a single
// 5/10 table with three players.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Tables: []TableConfig{
			{
				Name:         "main",
				Players:      []string{"Alice", "Bob", "Charlie"},
				InitialChips: 1000,
				SmallBlind:   5,
				BigBlind:     10,
				Hands:        1,
			},
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the default
// configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	for i := range config.Tables {
		if config.Tables[i].InitialChips == 0 {
			config.Tables[i].InitialChips = config.Tables[i].BigBlind * 100 // 100 big blinds
		}
		if config.Tables[i].Hands == 0 {
			config.Tables[i].Hands = 1
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration for values the engine would reject at
// hand start.
func (c *Config) Validate() error {
	if len(c.Tables) == 0 {
		return fmt.Errorf("at least one table must be configured")
	}
	for _, table := range c.Tables {
		if len(table.Players) < 2 {
			return fmt.Errorf("table %q: need at least 2 players, got %d", table.Name, len(table.Players))
		}
		if table.SmallBlind <= 0 || table.BigBlind <= 0 {
			return fmt.Errorf("table %q: blinds must be positive", table.Name)
		}
		if table.SmallBlind > table.BigBlind {
			return fmt.Errorf("table %q: small blind %d exceeds big blind %d", table.Name, table.SmallBlind, table.BigBlind)
		}
		if table.Rake < 0 || table.Rake >= 1 {
			return fmt.Errorf("table %q: rake %v must be in [0, 1)", table.Name, table.Rake)
		}
		if table.InitialChips < table.BigBlind {
			return fmt.Errorf("table %q: initial chips %d cannot cover the big blind %d", table.Name, table.InitialChips, table.BigBlind)
		}
	}
	return nil
}
