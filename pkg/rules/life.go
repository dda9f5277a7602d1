package rules

import (
	"fmt"

	"github.com/swifmaneum/cellpylib/pkg/core"
)

// mooreCenter is the row-major index of the target cell in a Moore r=1
// neighbourhood.
const mooreCenter = 4

// GameOfLife returns Conway's rule: a live cell with two or three live
// neighbours survives, a dead cell with exactly three is born, all else
// dies. It expects the 9-cell Moore r=1 neighbourhood the 2D engine
// produces with its defaults.
func GameOfLife() core.Rule {
	return func(n core.Neighbourhood, _ core.Cell, _ int) (uint8, error) {
		if len(n) != 9 {
			return 0, fmt.Errorf("%w: Game of Life needs a Moore r=1 neighbourhood, got %d cells", core.ErrInvalidParameter, len(n))
		}
		alive := 0
		for i, v := range n {
			if i != mooreCenter && v == 1 {
				alive++
			}
		}
		center := n[mooreCenter]
		if (center == 1 && (alive == 2 || alive == 3)) || (center == 0 && alive == 3) {
			return 1, nil
		}
		return 0, nil
	}
}
