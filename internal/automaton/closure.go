package automaton

// epsilonClosures computes, for every state in g, the set of states reachable
// through epsilon edges alone. The closure is reflexive: a state always
// belongs to its own closure.
//
// Work-list fixpoint: a state's closure is recomputed from the closures of
// its direct epsilon successors, and whenever it grows every epsilon
// predecessor goes back on the list. Set union is monotone, so the loop
// terminates even though Kleene fragments wire epsilon cycles into the graph.
func epsilonClosures(g *Graph) []StateSet {
	n := g.Len()

	preds := make([][]StateID, n)
	for id := 0; id < n; id++ {
		for _, to := range g.State(StateID(id)).Epsilon {
			preds[to] = append(preds[to], StateID(id))
		}
	}

	closures := make([]StateSet, n)
	for id := 0; id < n; id++ {
		closures[id] = NewStateSet(StateID(id))
	}

	work := make([]StateID, 0, n)
	queued := make([]bool, n)
	for id := 0; id < n; id++ {
		work = append(work, StateID(id))
		queued[id] = true
	}

	for len(work) > 0 {
		id := work[0]
		work = work[1:]
		queued[id] = false

		grew := false
		for _, to := range g.State(id).Epsilon {
			if closures[id].AddAll(closures[to]) {
				grew = true
			}
		}
		if !grew {
			continue
		}
		for _, p := range preds[id] {
			if !queued[p] {
				work = append(work, p)
				queued[p] = true
			}
		}
	}

	return closures
}
