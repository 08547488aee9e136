package maze

import "github.com/vovakirdan/tui-mazechase/internal/core"

// Policy decides an agent's heading. It is consulted only when the agent is
// cell-aligned, with the linear index of the cell it occupies.
type Policy interface {
	NextDirection(cell int, current Direction, mv Mover) Direction
}

// AgentView is the read-only surface of any agent.
type AgentView interface {
	Position() Position
	Direction() Direction
}

// PlayerView exposes the player's latched input as well.
type PlayerView interface {
	AgentView
	Requested() Direction
}

// AdversaryView adds the identifying tag and colour used by renderers.
type AdversaryView interface {
	AgentView
	Tag() string
	Color() core.Color
}

// Agent holds the motion state shared by the player and adversaries.
type Agent struct {
	pos   Position
	dir   Direction
	speed int
}

// Position returns the agent's pixel position.
func (a *Agent) Position() Position {
	return a.pos
}

// Direction returns the heading the agent is moving in.
func (a *Agent) Direction() Direction {
	return a.dir
}

// advance moves the agent one tick. The policy runs only at cell alignment;
// between cells the agent keeps its heading. Returns the occupied cell and
// whether the policy ran.
func (a *Agent) advance(mv Mover, cellSize int, p Policy) (cell int, aligned bool) {
	cell = -1
	if a.pos.Aligned(cellSize) {
		row, col := a.pos.Containing(cellSize)
		cell = mv.grid.Index(row, col)
		a.dir = p.NextDirection(cell, a.dir, mv)
		aligned = true
	}

	dx, dy := a.dir.Vector()
	a.pos.X += dx * a.speed
	a.pos.Y += dy * a.speed
	return cell, aligned
}

// Player is the input-driven agent.
type Player struct {
	Agent
	requested Direction
}

// Requested returns the latched input direction (None if nothing was asked).
func (p *Player) Requested() Direction {
	return p.requested
}

// request latches d. Anything other than a cardinal direction is ignored.
func (p *Player) request(d Direction) {
	if d.Cardinal() {
		p.requested = d
	}
}

// NextDirection implements the queued-turn policy: take the requested turn
// as soon as it is open, otherwise keep going until a wall stops the player.
func (p *Player) NextDirection(cell int, current Direction, mv Mover) Direction {
	if p.requested != None {
		if ok, _ := mv.TryStep(cell, p.requested); ok {
			return p.requested
		}
	}
	if ok, _ := mv.TryStep(cell, current); !ok {
		return None
	}
	return current
}

// step advances the player and eats the collectible of any cell it is
// aligned on.
func (p *Player) step(mv Mover, cellSize int) {
	cell, aligned := p.advance(mv, cellSize, p)
	if aligned {
		mv.grid.ConsumeIfCollectible(cell)
	}
}

// Adversary is an autonomous chaser with its own decision policy.
type Adversary struct {
	Agent
	tag    string
	color  core.Color
	policy Policy
}

// Tag returns the adversary's identifying name.
func (a *Adversary) Tag() string {
	return a.tag
}

// Color returns the adversary's display colour.
func (a *Adversary) Color() core.Color {
	return a.color
}

func (a *Adversary) step(mv Mover, cellSize int) {
	a.advance(mv, cellSize, a.policy)
}
