package automaton

// StateSet is the set type used for closures and simulation frontiers.
type StateSet map[StateID]struct{}

func NewStateSet(ids ...StateID) StateSet {
	set := make(StateSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s StateSet) Contains(id StateID) bool {
	_, ok := s[id]
	return ok
}

func (s StateSet) Add(id StateID) { s[id] = struct{}{} }

// AddAll unions other into s and reports whether s grew.
func (s StateSet) AddAll(other StateSet) bool {
	grew := false
	for id := range other {
		if _, ok := s[id]; !ok {
			s[id] = struct{}{}
			grew = true
		}
	}
	return grew
}

func (s StateSet) Intersects(other StateSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for id := range small {
		if _, ok := big[id]; ok {
			return true
		}
	}
	return false
}
