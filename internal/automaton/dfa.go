package automaton

var _ Acceptor = (*DFA)(nil)

// DFA is the deterministic table-walker: single-valued transitions, no
// epsilon edges. It is only ever produced by the description loader, so its
// states keep their external labels.
type DFA struct {
	States    []string
	Trans     map[string]map[rune]string
	Start     string
	Accepting map[string]struct{}
}

// Accepts walks the transition table. A missing transition rejects.
func (d *DFA) Accepts(input string) bool {
	current := d.Start
	for _, sym := range input {
		next, ok := d.Trans[current][sym]
		if !ok {
			return false
		}
		current = next
	}
	_, ok := d.Accepting[current]
	return ok
}
