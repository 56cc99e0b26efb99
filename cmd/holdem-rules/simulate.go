package main

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-rules/internal/config"
	"github.com/lox/holdem-rules/internal/engine"
)

// SimulateCmd runs every configured table in parallel without rendering.
// Tables are independent, so each gets its own goroutine and seed.
type SimulateCmd struct {
	Config string `short:"c" default:"tables.hcl" help:"Path to the HCL table configuration"`
	Hands  int    `help:"Override the hand count for every table"`
	Seed   *int64 `help:"Deterministic RNG seed (optional)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	e := engine.New(logger, nil)
	results := make([]tableResult, len(cfg.Tables))

	start := time.Now()
	var group errgroup.Group
	for i, table := range cfg.Tables {
		if c.Hands > 0 {
			table.Hands = c.Hands
		}
		tableSeed := seed + int64(i)
		if table.Seed != 0 {
			tableSeed = table.Seed
		}

		group.Go(func() error {
			result, err := runTable(e, table, tableSeed, nil)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	total := 0
	for _, result := range results {
		total += result.Hands
		fmt.Printf("%-16s %6d hands  %d players remain", result.Table, result.Hands, result.Survivors)
		if result.ChipLeader != "" {
			fmt.Printf("  chip leader %s", result.ChipLeader)
		}
		fmt.Println()
	}
	fmt.Printf("\n%d hands across %d tables in %s\n", total, len(cfg.Tables), elapsed.Round(time.Millisecond))

	return nil
}
