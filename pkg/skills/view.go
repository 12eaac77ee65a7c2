package skills

// View is a mode-specific slice of the catalog ready for layout.
type View struct {
	Mode    Mode
	Records []Record
	Level   LevelFunc
}

// Prepare builds the view for mode: levels are sign-flipped for charting,
// and in [ModeTarget] only skills marked for growth remain.
func Prepare(records []Record, mode Mode) View {
	flipped := FlipSign(records)
	if mode == ModeTarget {
		return View{Mode: mode, Records: TargetView(flipped), Level: TargetLevel}
	}
	return View{Mode: ModeCurrent, Records: flipped, Level: CurrentLevel}
}

// FlipSign returns a copy of records with current and target levels negated.
func FlipSign(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.Level = -r.Level
		if r.Target != nil {
			r.Target = Float(-*r.Target)
		}
		out[i] = r
	}
	return out
}

// TargetView returns the skills marked for growth: records with a target
// that differs from the current level. Each label carries the remaining
// distance to the target.
func TargetView(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Target == nil || *r.Target == r.Level {
			continue
		}
		r.Display = growthLabel(r)
		out = append(out, r)
	}
	return out
}

// Categories returns order followed by any category found in records but
// missing from order, in first-appearance order.
func Categories(records []Record, order []string) []string {
	seen := make(map[string]bool, len(order))
	out := make([]string, 0, len(order))
	for _, c := range order {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, r := range records {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}
