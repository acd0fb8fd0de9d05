package system

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/flappycube/ecs"
	"github.com/milk9111/flappycube/ecs/component"
	"github.com/milk9111/flappycube/ecs/entity"
	"github.com/milk9111/flappycube/settings"
)

// scoreWindow is how close to x=0 a column's lead block must be to count as
// cleared. It is narrower than one scroll step so a column scores once.
const scoreWindow = 0.01

// MovementSystem scrolls the ground and pipe blocks left and recycles blocks
// that leave the screen on the right, so the level never ends.
type MovementSystem struct {
	speed     float64
	ground    int
	column    int
	startRow  int
	gapHeight float64
	rng       *rand.Rand
	roll      entity.GapRoller
}

func NewMovementSystem(cfg *settings.Settings, rng *rand.Rand) *MovementSystem {
	return &MovementSystem{
		speed:     cfg.Player.MoveSpeed,
		ground:    cfg.Level.GroundBlocks,
		column:    cfg.Level.PipeColumn,
		startRow:  cfg.Level.PipeStartY,
		gapHeight: cfg.Level.GapHeight,
		rng:       rng,
		roll:      entity.RollGapRow,
	}
}

// SetGapRoller replaces the uniform gap roll used when a column recycles.
func (m *MovementSystem) SetGapRoller(roll entity.GapRoller) {
	if roll != nil {
		m.roll = roll
	}
}

func (m *MovementSystem) Update(w *ecs.World) {
	m.scrollGround(w)
	m.scrollPipes(w)
}

// GroundBand returns the x range ground blocks wrap within: a block already
// past lo is moved back to hi, then scrolled.
func GroundBand(blocks int) (lo, hi float64) {
	half := math.Floor(float64(blocks) / 2)
	return -half - 1, half - 1
}

// PipeBand is GroundBand for pipes. Pipe columns are spaced on half-units, so
// the band is not floored.
func PipeBand(blocks int) (lo, hi float64) {
	half := float64(blocks) / 2
	return -half - 1, half - 1
}

func (m *MovementSystem) scrollGround(w *ecs.World) {
	lo, hi := GroundBand(m.ground)
	for _, e := range w.Collection(entity.TagGroundBlock) {
		pos, ok := ecs.Get[*component.Position](w, e, component.KindPosition)
		if !ok {
			continue
		}
		if pos.X < lo {
			pos.X = hi
		}
		pos.X -= m.speed
	}
}

// scrollPipes walks the pipe blocks in creation order. Every run of
// m.column blocks is one column, bottom row first.
func (m *MovementSystem) scrollPipes(w *ecs.World) {
	lo, hi := PipeBand(m.ground)
	score, _ := ecs.Resource[component.Score](w)

	counter := 0
	gap, rolled := 0, false
	for _, e := range w.Collection(entity.TagPipeBlock) {
		if counter >= m.column {
			counter = 0
			rolled = false
		}
		row := counter + m.startRow
		counter++

		pos, ok := ecs.Get[*component.Position](w, e, component.KindPosition)
		if !ok {
			continue
		}

		if row == m.startRow && pos.X < scoreWindow && pos.X > -scoreWindow && score != nil {
			score.Value++
			w.Events().Push(ecs.Event{Type: ecs.EventScore, Data: ecs.ScoreEvent{Score: score.Value}})
		}

		if pos.X < lo {
			if !rolled {
				gap = m.roll(m.rng, m.startRow, m.column)
				rolled = true
			}
			pos.X = hi
			pos.Y = entity.PipeBlockY(row, gap, m.gapHeight)
		}
		pos.X -= m.speed
	}
}
