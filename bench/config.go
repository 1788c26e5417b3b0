package bench

import "fmt"

// Config identifies one run of the parameter sweep.
type Config struct {
	Lanes      int
	Iterations int
}

// TotalOps returns the number of circuit evaluations one run performs.
func (c Config) TotalOps() int {
	return c.Lanes * c.Iterations
}

func (c Config) String() string {
	return fmt.Sprintf("lanes=%d iterations=%d", c.Lanes, c.Iterations)
}

// DefaultSweep returns the benchmark configurations in report order. Three
// lane tiers, five iteration counts each; iteration counts shrink as lanes
// grow so total work per tier stays comparable.
func DefaultSweep() []Config {
	return []Config{
		{Lanes: 1, Iterations: 1 << 13},
		{Lanes: 1, Iterations: 1 << 14},
		{Lanes: 1, Iterations: 1 << 15},
		{Lanes: 1, Iterations: 1 << 16},
		{Lanes: 1, Iterations: 1 << 17},

		{Lanes: 4, Iterations: 1 << 11},
		{Lanes: 4, Iterations: 1 << 12},
		{Lanes: 4, Iterations: 1 << 13},
		{Lanes: 4, Iterations: 1 << 14},
		{Lanes: 4, Iterations: 1 << 15},

		{Lanes: 16, Iterations: 1 << 9},
		{Lanes: 16, Iterations: 1 << 10},
		{Lanes: 16, Iterations: 1 << 11},
		{Lanes: 16, Iterations: 1 << 12},
		{Lanes: 16, Iterations: 1 << 13},
	}
}
