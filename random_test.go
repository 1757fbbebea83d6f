package life_test

import (
	"testing"

	"github.com/go-theft-auto/life"
)

func TestRandomizeFullConcentration(t *testing.T) {
	g := life.NewGrid(12, 9)
	g.Randomize(life.NewRand(7), life.RandomParams{Distribution: 1, Concentration: 100, Radius: 2})

	if got, want := g.Population(), 12*9; got != want {
		t.Errorf("population = %d, want %d", got, want)
	}
	g.EnforceBorder()
	if got, want := g.Population(), 10*7; got != want {
		t.Errorf("interior population = %d, want %d", got, want)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	p := life.RandomParams{Distribution: 5, Concentration: 40, Radius: 3}
	a := life.NewGrid(30, 30)
	b := life.NewGrid(30, 30)
	a.Randomize(life.NewRand(42), p)
	b.Randomize(life.NewRand(42), p)

	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			if a.Alive(x, y) != b.Alive(x, y) {
				t.Fatalf("grids differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestRandomizeSparse(t *testing.T) {
	g := life.NewGrid(40, 40)
	g.Fill()
	g.Randomize(life.NewRand(3), life.RandomParams{Distribution: 100, Concentration: 1, Radius: 1})

	// Seeds are 1 in 100 and their neighborhoods mostly die, so the grid
	// must end up far from full.
	if pop := g.Population(); pop > 200 {
		t.Errorf("population = %d, want a sparse grid", pop)
	}
}
