// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/simplehardware/labyrinth/generator"
	"github.com/simplehardware/labyrinth/grid"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top-level structure of a config file.
type hclFile struct {
	Maze *hclMaze `hcl:"maze,block"`
}

// hclMaze mirrors Config; nil fields keep the base value.
type hclMaze struct {
	Size         *int     `hcl:"size,optional"`
	Players      *int     `hcl:"players,optional"`
	Seed         *int64   `hcl:"seed,optional"`
	Attempts     *int     `hcl:"attempts,optional"`
	Tolerance    *float64 `hcl:"tolerance,optional"`
	CenterPool   *int     `hcl:"center_pool,optional"`
	StrictSpread *bool    `hcl:"strict_spread,optional"`
	LogLevel     *string  `hcl:"log_level,optional"`
	LogFormat    *string  `hcl:"log_format,optional"`
}

// evalContext exposes the engine limits to config expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"max_players": cty.NumberIntVal(grid.MaxPlayers),
			"min_size":    cty.NumberIntVal(generator.MinSize),
		},
	}
}

// LoadFile reads the HCL file at path and overlays its maze block on base.
func LoadFile(path string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(f.Body, path, base)
}

// Parse decodes HCL source held in memory; filename is used in diagnostics.
func Parse(src []byte, filename string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(f.Body, filename, base)
}

func decode(body hcl.Body, filename string, base Config) (Config, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(body, evalContext(), &parsed); diags.HasErrors() {
		return base, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if parsed.Maze == nil {
		return base, nil
	}
	m, cfg := parsed.Maze, base
	set(&cfg.Size, m.Size)
	set(&cfg.Players, m.Players)
	set(&cfg.Seed, m.Seed)
	set(&cfg.Attempts, m.Attempts)
	set(&cfg.Tolerance, m.Tolerance)
	set(&cfg.CenterPool, m.CenterPool)
	set(&cfg.StrictSpread, m.StrictSpread)
	set(&cfg.LogLevel, m.LogLevel)
	set(&cfg.LogFormat, m.LogFormat)
	return cfg, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
