package layout

// key identifies an exact label position.
type key struct{ x, y float64 }

// Resolve separates labels sharing an exact (X, Y) position, in place.
//
// Each round ranks the members of every position group by their order in
// labels and adds (rank-1)*step to Y. Rounds stop after the first round that
// finds no duplicates, or after maxRounds rounds. It returns the number of
// rounds executed and the number of labels still sharing a position.
func Resolve(labels []Label, step float64, maxRounds int) (rounds, residual int) {
	for rounds < maxRounds {
		rounds++
		if !relax(labels, step) {
			return rounds, 0
		}
	}
	return rounds, countDuplicates(labels)
}

// relax runs one round and reports whether any duplicate was found.
func relax(labels []Label, step float64) bool {
	seen := make(map[key]int, len(labels))
	found := false
	for i := range labels {
		k := key{labels[i].X, labels[i].Y}
		seen[k]++
		if rank := seen[k]; rank > 1 {
			found = true
			labels[i].Y += float64(rank-1) * step
		}
	}
	return found
}

// countDuplicates returns how many labels share their position with an
// earlier label.
func countDuplicates(labels []Label) int {
	seen := make(map[key]bool, len(labels))
	n := 0
	for _, l := range labels {
		k := key{l.X, l.Y}
		if seen[k] {
			n++
		}
		seen[k] = true
	}
	return n
}
