// Package config loads table presets from HCL files so regular groups can
// skip the interactive setup prompts.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/bonusly-poker/internal/chips"
)

// Preset is a saved table setup.
//
//	table {
//	  denominations = [1, 5, 25, 100]
//	  dealer        = "Alice"
//	  small_blind   = "Bob"
//	  big_blind     = "Cara"
//	}
//
//	player "Alice" { stack = 500 }
//	player "Bob"   { stack = 300 }
//	player "Cara"  { stack = 400 }
type Preset struct {
	Table   *Table   `hcl:"table,block"`
	Players []Player `hcl:"player,block"`
}

// Table holds table-level settings. Role names are optional; anyone left
// out is prompted for at the start of each game.
type Table struct {
	Denominations []int  `hcl:"denominations,optional"`
	Dealer        string `hcl:"dealer,optional"`
	SmallBlind    string `hcl:"small_blind,optional"`
	BigBlind      string `hcl:"big_blind,optional"`
}

// Player is one seat at the table with their Bonusly starting balance.
type Player struct {
	Name  string `hcl:"name,label"`
	Stack int    `hcl:"stack"`
}

// Default returns a preset with the standard chip denominations and no
// players, for when the table is set up interactively.
func Default() *Preset {
	return &Preset{
		Table: &Table{
			Denominations: append([]int(nil), chips.DefaultDenominations...),
		},
	}
}

// Load reads and validates a preset file. A missing file is an error: the
// path only arrives here when the user asked for it explicitly.
func Load(filename string) (*Preset, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("preset file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var preset Preset
	if diags := gohcl.DecodeBody(file.Body, nil, &preset); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if preset.Table == nil {
		preset.Table = &Table{}
	}
	if len(preset.Table.Denominations) == 0 {
		preset.Table.Denominations = append([]int(nil), chips.DefaultDenominations...)
	}

	if err := preset.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset %s: %w", filename, err)
	}
	return &preset, nil
}

// Validate checks the preset holds a playable table.
func (p *Preset) Validate() error {
	if len(p.Players) < 2 {
		return fmt.Errorf("need at least 2 players, got %d", len(p.Players))
	}
	seen := make(map[string]bool, len(p.Players))
	for _, player := range p.Players {
		if player.Name == "" {
			return fmt.Errorf("player with empty name")
		}
		if seen[player.Name] {
			return fmt.Errorf("duplicate player %q", player.Name)
		}
		if player.Stack < 1 {
			return fmt.Errorf("player %q has non-positive stack %d", player.Name, player.Stack)
		}
		seen[player.Name] = true
	}

	for role, name := range map[string]string{
		"dealer":      p.Table.Dealer,
		"small_blind": p.Table.SmallBlind,
		"big_blind":   p.Table.BigBlind,
	} {
		if name != "" && !seen[name] {
			return fmt.Errorf("%s %q is not one of the players", role, name)
		}
	}

	for i, d := range p.Table.Denominations {
		if d < 1 {
			return fmt.Errorf("denomination must be positive, got %d", d)
		}
		if i > 0 && d <= p.Table.Denominations[i-1] {
			return fmt.Errorf("denominations must be strictly ascending")
		}
	}
	return nil
}
