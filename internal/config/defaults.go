package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/maze"
)

//go:embed defaults/mazechase.yaml
var defaultMazeChaseYAML []byte

// DefaultMazeChaseConfig returns the classic game configuration.
func DefaultMazeChaseConfig() MazeChaseConfig {
	corner := func(tag string, col, row int) AdversaryConfig {
		return AdversaryConfig{
			Tag:     tag,
			Color:   tag,
			Spawn:   CellRef{Col: col, Row: row},
			Speed:   maze.DefaultChaserSpeed,
			Heading: "right",
		}
	}

	return MazeChaseConfig{
		Grid:     GridConfig{CellSize: maze.DefaultCellSize},
		TickRate: core.DefaultTickRate,
		Player: PlayerConfig{
			Spawn: CellRef{Col: 7, Row: 3},
			Speed: maze.DefaultPlayerSpeed,
		},
		Adversaries: []AdversaryConfig{
			corner("red", 1, 1),
			corner("pink", 13, 1),
			corner("cyan", 1, 13),
			corner("orange", 13, 13),
		},
		Collision: CollisionConfig{Threshold: maze.DefaultCollisionGap},
		Behavior: BehaviorConfig{
			ExploreOneIn: maze.DefaultExploreOneIn,
			Scan:         string(maze.ScanRotation),
		},
	}
}
