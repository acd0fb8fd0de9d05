package script

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/flappycube/ecs/entity"
	"go.uber.org/zap"
)

// GapScript is a compiled tengo script that picks pipe gap rows.
//
// The script sees four globals: start_row, column, roll and gap. roll is a
// uniform pick in [0, column) and gap starts out as start_row + roll, so an
// empty script behaves like the built-in roll. Whatever the script leaves in
// gap is clamped to the column's rows.
type GapScript struct {
	name     string
	compiled *tengo.Compiled
}

// LoadGapScript reads and compiles the script at path.
func LoadGapScript(path string) (*GapScript, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gap script: read %s: %w", path, err)
	}
	return NewGapScript(path, src)
}

// NewGapScript compiles src. name is only used in errors and logs.
func NewGapScript(name string, src []byte) (*GapScript, error) {
	s := tengo.NewScript(src)
	for _, v := range []string{"start_row", "column", "roll", "gap"} {
		if err := s.Add(v, 0); err != nil {
			return nil, fmt.Errorf("gap script %s: %w", name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("gap script %s: compile: %w", name, err)
	}
	return &GapScript{name: name, compiled: compiled}, nil
}

// Roll runs the script once for a column of column rows starting at startRow.
func (g *GapScript) Roll(rng *rand.Rand, startRow, column int) (int, error) {
	roll := rng.IntN(column)
	c := g.compiled
	for name, v := range map[string]int{
		"start_row": startRow,
		"column":    column,
		"roll":      roll,
		"gap":       startRow + roll,
	} {
		if err := c.Set(name, v); err != nil {
			return 0, fmt.Errorf("gap script %s: set %s: %w", g.name, name, err)
		}
	}
	if err := c.Run(); err != nil {
		return 0, fmt.Errorf("gap script %s: run: %w", g.name, err)
	}
	gap := c.Get("gap").Int()
	return min(max(gap, startRow), startRow+column-1), nil
}

// Roller adapts the script to entity.GapRoller. A failing run is logged and
// the column falls back to the uniform roll.
func (g *GapScript) Roller(log *zap.Logger) entity.GapRoller {
	if log == nil {
		log = zap.NewNop()
	}
	return func(rng *rand.Rand, startRow, column int) int {
		gap, err := g.Roll(rng, startRow, column)
		if err != nil {
			log.Warn("gap script failed", zap.String("script", g.name), zap.Error(err))
			return entity.RollGapRow(rng, startRow, column)
		}
		return gap
	}
}
