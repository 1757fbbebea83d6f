package life

import "math/rand/v2"

// RandomParams controls Grid.Randomize.
type RandomParams struct {
	Distribution  int // A cell is seeded alive with odds 1 in Distribution
	Concentration int // Percent chance each cell around a seed is alive
	Radius        int // Half-width of the square re-rolled around each seed
}

// DefaultRandomParams matches the initial settings of the editor.
var DefaultRandomParams = RandomParams{Distribution: 2, Concentration: 33, Radius: 6}

// NewRand returns a deterministic PCG generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Randomize rewrites the whole grid.
//
// Cells are visited column by column (x outer, y inner). Each is seeded alive
// with odds 1 in Distribution. Around every seed the half-open square
// [x-Radius, x+Radius) × [y-Radius, y+Radius), clamped into the grid, is
// re-rolled with Concentration percent odds. Re-rolls overwrite cells that
// were already visited and cells visited later overwrite the re-rolls, so the
// result depends on this scan order.
func (g *Grid) Randomize(rng *rand.Rand, p RandomParams) {
	dist := max(p.Distribution, 1)
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			alive := rng.IntN(dist) == 0
			g.Set(x, y, alive)
			if !alive {
				continue
			}
			for k := x - p.Radius; k < x+p.Radius; k++ {
				for l := y - p.Radius; l < y+p.Radius; l++ {
					cx := clampi(k, 0, g.w-1)
					cy := clampi(l, 0, g.h-1)
					g.Set(cx, cy, rng.IntN(100)+1 <= p.Concentration)
				}
			}
		}
	}
}
