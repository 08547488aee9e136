package mazechase

import (
	"fmt"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/maze"
)

// Glyphs. Each maze cell is two screen columns wide so that horizontal
// movement can be drawn at half-cell resolution.
const (
	glyphWall        = '█'
	glyphCollectible = '·'
	glyphAdversary   = 'M'
)

var playerGlyphs = map[maze.Direction]rune{
	maze.None:  'O',
	maze.Left:  '>',
	maze.Right: '<',
	maze.Up:    'V',
	maze.Down:  '^',
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX, offY := g.mapOrigin(dst)
	g.renderMaze(dst, offX, offY)
	g.renderAgents(dst, offX, offY)

	switch g.outcome {
	case OutcomeCleared:
		g.renderOverlay(dst, "Maze cleared!", fmt.Sprintf("Score: %d  R to play again", g.Score()))
	case OutcomeCaught:
		g.renderOverlay(dst, "Caught!", fmt.Sprintf("Score: %d  R to restart", g.Score()))
	default:
		if g.paused {
			g.renderOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d | Left: %d | Maze: %s",
		g.title, g.Score(), g.session.Grid().CollectiblesLeft(), g.level.Name)
	if g.loadErr != nil {
		hud += " | config error, using defaults"
	}
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// mapOrigin returns the screen position of the maze's top-left cell.
func (g *Game) mapOrigin(dst *core.Screen) (x, y int) {
	n := g.session.Grid().Size()
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	r := area.Centered(2*n, n)
	return r.X, r.Y
}

func (g *Game) renderMaze(dst *core.Screen, offX, offY int) {
	grid := g.session.Grid()
	n := grid.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x := offX + 2*col
			y := offY + row
			switch grid.CellAt(row*n + col) {
			case maze.Wall:
				dst.SetColored(x, y, glyphWall, core.ColorBlue)
				dst.SetColored(x+1, y, glyphWall, core.ColorBlue)
			case maze.Collectible:
				dst.SetColored(x, y, glyphCollectible, core.ColorWhite)
			}
		}
	}
}

// screenPos maps a pixel position to screen coordinates: half-cell columns
// and nearest-cell rows.
func (g *Game) screenPos(p maze.Position, offX, offY int) (x, y int) {
	s := g.session.CellSize()
	half := s / 2
	row, _ := p.Nearest(s)
	col2 := (2*p.X + half) / s
	return offX + col2, offY + row
}

func (g *Game) renderAgents(dst *core.Screen, offX, offY int) {
	for _, a := range g.session.Adversaries() {
		x, y := g.screenPos(a.Position(), offX, offY)
		dst.SetColored(x, y, glyphAdversary, a.Color())
	}

	p := g.session.Player()
	x, y := g.screenPos(p.Position(), offX, offY)
	color := core.ColorBrightYellow
	if g.outcome == OutcomeCaught {
		color = core.ColorRed
	}
	dst.SetColored(x, y, playerGlyphs[p.Direction()], color)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
