// Package config provides YAML-based configuration loading for the maze chase
// game and converts it into engine session settings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/maze"
)

// MazeChaseConfig contains all configuration for the maze chase game.
type MazeChaseConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	TickRate    int               `yaml:"tick_rate"`
	Player      PlayerConfig      `yaml:"player"`
	Adversaries []AdversaryConfig `yaml:"adversaries"`
	Collision   CollisionConfig   `yaml:"collision"`
	Behavior    BehaviorConfig    `yaml:"behavior"`
	// Maze is a built-in maze ID or a path to a maze file. Empty means classic.
	Maze string `yaml:"maze"`
}

// GridConfig defines the pixel geometry of the maze.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

// CellRef addresses a grid cell in config files.
type CellRef struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// PlayerConfig defines the player's spawn and speed.
type PlayerConfig struct {
	Spawn CellRef `yaml:"spawn"`
	Speed int     `yaml:"speed"`
}

// AdversaryConfig defines one adversary.
type AdversaryConfig struct {
	Tag     string  `yaml:"tag"`
	Color   string  `yaml:"color"`
	Spawn   CellRef `yaml:"spawn"`
	Speed   int     `yaml:"speed"`
	Heading string  `yaml:"heading"`
}

// CollisionConfig defines the catch distance.
type CollisionConfig struct {
	Threshold int `yaml:"threshold"` // per-axis pixel distance, strict
}

// BehaviorConfig defines how adversaries wander.
type BehaviorConfig struct {
	ExploreOneIn int    `yaml:"explore_one_in"` // 0 disables voluntary turns
	Scan         string `yaml:"scan"`           // rotation or uniform
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the fields that do not depend on the maze. Spawn cells are
// checked against the maze by SessionConfig.
func (c MazeChaseConfig) Validate() error {
	if c.Grid.CellSize < 1 {
		return fmt.Errorf("config: grid.cell_size %d: %w", c.Grid.CellSize, ErrInvalidConfig)
	}
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate %d not in [1, 240]: %w", c.TickRate, ErrInvalidConfig)
	}
	if c.Collision.Threshold < 1 {
		return fmt.Errorf("config: collision.threshold %d: %w", c.Collision.Threshold, ErrInvalidConfig)
	}
	if c.Behavior.ExploreOneIn < 0 {
		return fmt.Errorf("config: behavior.explore_one_in %d: %w", c.Behavior.ExploreOneIn, ErrInvalidConfig)
	}
	if _, err := maze.ParseScanMode(c.Behavior.Scan); err != nil {
		return fmt.Errorf("config: behavior.scan: %v: %w", err, ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Adversaries))
	for i, a := range c.Adversaries {
		if a.Tag == "" {
			return fmt.Errorf("config: adversaries[%d] has no tag: %w", i, ErrInvalidConfig)
		}
		if seen[a.Tag] {
			return fmt.Errorf("config: duplicate adversary tag %q: %w", a.Tag, ErrInvalidConfig)
		}
		seen[a.Tag] = true
		if _, ok := core.ParseColor(a.Color); !ok && a.Color != "" {
			return fmt.Errorf("config: adversary %q color %q: %w", a.Tag, a.Color, ErrInvalidConfig)
		}
		if _, err := maze.ParseDirection(a.Heading); err != nil {
			return fmt.Errorf("config: adversary %q: %v: %w", a.Tag, err, ErrInvalidConfig)
		}
	}
	return nil
}

// SessionConfig builds engine settings for the given maze and seed.
// The result is validated by the engine, so bad spawns surface here.
func (c MazeChaseConfig) SessionConfig(tpl maze.Template, seed int64) (maze.SessionConfig, error) {
	if err := c.Validate(); err != nil {
		return maze.SessionConfig{}, err
	}

	scan, _ := maze.ParseScanMode(c.Behavior.Scan)
	sc := maze.SessionConfig{
		Template:           tpl,
		CellSize:           c.Grid.CellSize,
		PlayerSpawn:        maze.Cell{Row: c.Player.Spawn.Row, Col: c.Player.Spawn.Col},
		PlayerSpeed:        c.Player.Speed,
		Adversaries:        make([]maze.AdversarySpec, len(c.Adversaries)),
		CollisionThreshold: c.Collision.Threshold,
		ExploreOneIn:       c.Behavior.ExploreOneIn,
		Scan:               scan,
		Seed:               seed,
	}
	for i, a := range c.Adversaries {
		color, _ := core.ParseColor(a.Color)
		heading, _ := maze.ParseDirection(a.Heading)
		sc.Adversaries[i] = maze.AdversarySpec{
			Tag:     a.Tag,
			Color:   color,
			Spawn:   maze.Cell{Row: a.Spawn.Row, Col: a.Spawn.Col},
			Speed:   a.Speed,
			Heading: heading,
		}
	}

	if err := sc.Validate(); err != nil {
		return maze.SessionConfig{}, fmt.Errorf("config: %w", err)
	}
	return sc, nil
}
