package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/holdem-rules/internal/config"
	"github.com/lox/holdem-rules/internal/display"
	"github.com/lox/holdem-rules/internal/engine"
)

// PlayCmd plays each configured table in turn with rendered output.
type PlayCmd struct {
	Config string `short:"c" default:"tables.hcl" help:"Path to the HCL table configuration"`
	Seed   *int64 `help:"Deterministic RNG seed (optional)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("starting tables", "count", len(cfg.Tables), "seed", seed)

	e := engine.New(logger, nil)
	renderer := display.NewRenderer(os.Stdout)

	for i, table := range cfg.Tables {
		tableSeed := seed
		if table.Seed != 0 {
			tableSeed = table.Seed
		}

		result, err := runTable(e, table, tableSeed+int64(i), renderer)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s: %d hands played, %d players remain", result.Table, result.Hands, result.Survivors)
		if result.ChipLeader != "" {
			fmt.Printf(", chip leader %s", result.ChipLeader)
		}
		fmt.Println()
	}

	return nil
}
