package astar

import (
	"fmt"

	"github.com/rogpeppe/pqbench/grid"
	"github.com/rogpeppe/pqbench/internal/fifo"
)

type step struct {
	pos  grid.Pos
	cost uint32
}

// BreadthFirst returns the length of a shortest path from one cell
// to another by exhaustive breadth-first search, without a heuristic
// or a priority queue. It follows the same rules and returns the
// same errors as Searcher.Search, so it can be used to check results.
func BreadthFirst(m *grid.Bool2D, from, to grid.Pos) (uint32, error) {
	if !m.In(from) || !m.In(to) {
		return 0, fmt.Errorf("search from %v to %v in %dx%d grid: %w", from, to, m.Height(), m.Width(), ErrOutOfBounds)
	}
	visited := grid.New(m.Height(), m.Width())
	neighbors := make([]grid.Pos, 0, 4)
	var q fifo.Queue[step]
	q.Push(step{from, 0})
	visited.Set(from, true)
	for {
		s, ok := q.Pop()
		if !ok {
			return 0, fmt.Errorf("search from %v to %v: %w", from, to, ErrNoPath)
		}
		if s.pos == to {
			return s.cost, nil
		}
		neighbors = m.Neighbors(s.pos, neighbors[:0])
		for _, n := range neighbors {
			if visited.Get(n) || !m.Get(n) {
				continue
			}
			visited.Set(n, true)
			q.Push(step{n, s.cost + 1})
		}
	}
}
