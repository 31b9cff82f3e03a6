// Package astar implements A* shortest-path search over 4-connected
// unit-cost grids, parameterised by the priority queue it uses for
// the frontier.
//
// A cell is marked as visited when it is first pushed, not when it
// is popped, so each cell enters the queue at most once. With unit
// edge costs, a consistent heuristic and queues that break full-cost
// ties in favour of the smaller accumulated cost (see pqueue.Before),
// the first path found to the target is still a shortest one.
// This does not carry over to weighted graphs.
package astar

import (
	"errors"
	"fmt"

	"github.com/rogpeppe/pqbench/grid"
	"github.com/rogpeppe/pqbench/pqueue"
)

var (
	// ErrNoPath is returned when the target cannot be reached.
	ErrNoPath = errors.New("no path")

	// ErrOutOfBounds is returned when the source or target
	// lies outside the grid.
	ErrOutOfBounds = errors.New("position outside grid")
)

// Heuristic returns an estimate of the cost of reaching
// the target from p.
type Heuristic func(p grid.Pos) uint32

// Manhattan returns the Manhattan distance heuristic towards to.
// It is admissible and consistent on 4-connected unit-cost grids.
func Manhattan(to grid.Pos) Heuristic {
	return func(p grid.Pos) uint32 {
		return absDiff(p.Row, to.Row) + absDiff(p.Col, to.Col)
	}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// Searcher runs searches over a single grid. It owns a queue and
// a visited field, both of which are cleared and reused by each
// search. A Searcher must not be used concurrently.
type Searcher struct {
	m         *grid.Bool2D
	q         pqueue.Queue
	visited   *grid.Bool2D
	neighbors []grid.Pos
	expanded  int
}

// NewSearcher returns a Searcher over m that uses q as its frontier.
// Cells of m that are true are passable. m must not be changed
// while the Searcher is in use.
func NewSearcher(m *grid.Bool2D, q pqueue.Queue) *Searcher {
	return &Searcher{
		m:         m,
		q:         q,
		visited:   grid.New(m.Height(), m.Width()),
		neighbors: make([]grid.Pos, 0, 4),
	}
}

// Expanded returns the number of entries popped by the last search.
func (s *Searcher) Expanded() int {
	return s.expanded
}

// Search returns the length of a shortest path from one cell to another
// moving north, south, east or west through passable cells, guided by h.
// The source cell itself need not be passable.
//
// It returns an error wrapping ErrNoPath if there is no such path
// and ErrOutOfBounds if either position is outside the grid.
// An error from the queue is returned as is, wrapped.
func (s *Searcher) Search(from, to grid.Pos, h Heuristic) (uint32, error) {
	if !s.m.In(from) || !s.m.In(to) {
		return 0, fmt.Errorf("search from %v to %v in %dx%d grid: %w", from, to, s.m.Height(), s.m.Width(), ErrOutOfBounds)
	}
	s.q.Clear()
	s.visited.Clear()
	s.expanded = 0

	if err := s.q.Push(pqueue.Entry{
		Pos:      from,
		Cost:     0,
		FullCost: h(from),
	}); err != nil {
		return 0, fmt.Errorf("search from %v to %v: %w", from, to, err)
	}
	s.visited.Set(from, true)
	for {
		e, ok := s.q.Pop()
		if !ok {
			return 0, fmt.Errorf("search from %v to %v: %w", from, to, ErrNoPath)
		}
		s.expanded++
		if e.Pos == to {
			return e.Cost, nil
		}
		s.neighbors = s.m.Neighbors(e.Pos, s.neighbors[:0])
		for _, n := range s.neighbors {
			if s.visited.Get(n) || !s.m.Get(n) {
				continue
			}
			s.visited.Set(n, true)
			cost := e.Cost + 1
			if err := s.q.Push(pqueue.Entry{
				Pos:      n,
				Cost:     cost,
				FullCost: cost + h(n),
			}); err != nil {
				return 0, fmt.Errorf("search from %v to %v: %w", from, to, err)
			}
		}
	}
}

// Search is a convenience function that searches m once using q.
// See Searcher.Search.
func Search(m *grid.Bool2D, from, to grid.Pos, h Heuristic, q pqueue.Queue) (uint32, error) {
	return NewSearcher(m, q).Search(from, to, h)
}
