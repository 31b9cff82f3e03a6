package bench

import (
	"errors"
	"fmt"

	"github.com/rogpeppe/pqbench/astar"
	"github.com/rogpeppe/pqbench/grid"
	"github.com/rogpeppe/pqbench/pqueue"
	"github.com/rogpeppe/pqbench/workload"
)

var (
	// ErrUnexpectedCost is returned by an A* trial whose search
	// finds a path of a different length than expected.
	ErrUnexpectedCost = errors.New("unexpected path cost")

	// ErrInconsistent is returned by CheckConsistent when
	// queue backends produce different search results.
	ErrInconsistent = errors.New("queue backends disagree")
)

// Search describes the A* problem timed by the suite.
type Search struct {
	Map      *grid.Bool2D
	From, To grid.Pos
	// Expected holds the cost every search must find.
	Expected uint32
}

// Suite returns one A* trial and one push/pop trial per backend,
// named astar_<backend> and pushpop_<backend>. Each A* trial
// owns its own queue and visited field, reused across calls.
// Each push/pop trial runs pushpop rounds of the churn.
func Suite(s Search, pushpop int) []Named {
	var trials []Named
	for _, b := range pqueue.Backends() {
		trials = append(trials, Named{
			Name:  "astar_" + b.Name,
			Trial: SearchTrial(s, b.New()),
		})
	}
	for _, b := range workload.Backends() {
		trials = append(trials, Named{
			Name:  "pushpop_" + b.Name,
			Trial: PushPopTrial(b.New(), pushpop),
		})
	}
	return trials
}

// SearchTrial returns a trial that runs s using q and fails if
// the result differs from s.Expected.
func SearchTrial(s Search, q pqueue.Queue) Trial {
	searcher := astar.NewSearcher(s.Map, q)
	h := astar.Manhattan(s.To)
	return func() error {
		got, err := searcher.Search(s.From, s.To, h)
		if err != nil {
			return err
		}
		if got != s.Expected {
			return fmt.Errorf("%w: got %d want %d", ErrUnexpectedCost, got, s.Expected)
		}
		return nil
	}
}

// PushPopTrial returns a trial that churns q for the given
// number of rounds starting at key 0, leaving it empty.
func PushPopTrial(q workload.KeyQueue, rounds int) Trial {
	return func() error {
		return workload.Churn(q, 0, rounds)
	}
}

// CheckConsistent searches m once with every queue backend and once
// breadth-first, and returns the cost they all agree on. It returns
// an error wrapping ErrInconsistent if they produce different costs
// or if some find a path and others do not.
func CheckConsistent(m *grid.Bool2D, from, to grid.Pos) (uint32, error) {
	type outcome struct {
		backend string
		cost    uint32
		err     error
	}
	var outcomes []outcome
	for _, b := range pqueue.Backends() {
		cost, err := astar.Search(m, from, to, astar.Manhattan(to), b.New())
		if err != nil && !errors.Is(err, astar.ErrNoPath) {
			return 0, fmt.Errorf("backend %s: %w", b.Name, err)
		}
		outcomes = append(outcomes, outcome{b.Name, cost, err})
	}
	cost, err := astar.BreadthFirst(m, from, to)
	outcomes = append(outcomes, outcome{"breadth-first", cost, err})
	first := outcomes[0]
	for _, o := range outcomes[1:] {
		if (o.err == nil) != (first.err == nil) || o.cost != first.cost {
			return 0, fmt.Errorf("%w: %s got %d (%v), %s got %d (%v)", ErrInconsistent, first.backend, first.cost, first.err, o.backend, o.cost, o.err)
		}
	}
	return first.cost, first.err
}
