package domain

// TransitionDiff lists the edges that differ between two transition mappings.
// It is used to summarise what ε-elimination changed.
type TransitionDiff struct {
	Added   []Transition `json:"added,omitempty"`
	Removed []Transition `json:"removed,omitempty"`
}

// Diff calculates the difference between the old and new transitions.
// It returns nil when both describe the same set of edges.
func Diff(oldT, newT Transitions) *TransitionDiff {
	oldEdges := edgeSet(oldT)
	newEdges := edgeSet(newT)

	diff := &TransitionDiff{}
	for _, e := range newT.Edges() {
		if !oldEdges[e] {
			diff.Added = append(diff.Added, e)
		}
	}
	for _, e := range oldT.Edges() {
		if !newEdges[e] {
			diff.Removed = append(diff.Removed, e)
		}
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any changes.
func (d *TransitionDiff) IsEmpty() bool {
	return d == nil || (len(d.Added) == 0 && len(d.Removed) == 0)
}

// EpsilonRemoved counts removed ε-moves.
func (d *TransitionDiff) EpsilonRemoved() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, e := range d.Removed {
		if e.IsEpsilon() {
			n++
		}
	}
	return n
}

func edgeSet(t Transitions) map[Transition]bool {
	set := make(map[Transition]bool)
	for _, e := range t.Edges() {
		set[e] = true
	}
	return set
}
