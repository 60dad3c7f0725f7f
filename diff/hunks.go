package diff

// Hunk is a maximal contiguous group of edits plus surrounding context.
type Hunk struct {
	Edits EditScript
}

// SplitHunks groups an edit script into hunks for unified-diff emission.
// Walking edits in order: at each Equals edit longer than 2*context, the
// current hunk is closed with a trailing Equals of length context and a
// new hunk is opened with a leading Equals of length context. The final
// hunk's trailing Equals is trimmed to at most context. Any hunk whose
// only edit is a single Equals is discarded.
func SplitHunks(edits EditScript, context int) []Hunk {
	var hunks []Hunk
	var current EditScript

	flush := func() {
		if len(current) == 0 {
			return
		}
		if len(current) == 1 && current[0].Op == Equals {
			current = nil
			return
		}
		hunks = append(hunks, Hunk{Edits: current})
		current = nil
	}

	for _, e := range edits {
		if e.Op != Equals || e.Len() <= 2*context {
			current = append(current, e)
			continue
		}
		// Long Equals run: close out the current hunk with `context`
		// trailing lines, then open the next hunk with `context` leading
		// lines from the same run.
		if len(current) > 0 {
			trail := e
			if trail.Len() > context {
				trail.End = trail.Start + context
			}
			current = append(current, trail)
		}
		flush()
		lead := e
		if lead.Len() > context {
			lead.Start = lead.End - context
		}
		current = append(current, lead)
	}
	flush()

	// Trim the very first hunk's leading Equals if it's the run that opened
	// the whole edit script (no prior hunk to have already trimmed it) and
	// the very last hunk's trailing Equals to at most `context`.
	if len(hunks) > 0 {
		first := &hunks[0].Edits[0]
		if first.Op == Equals && first.Len() > context {
			first.Start = first.End - context
		}
		last := &hunks[len(hunks)-1].Edits[len(hunks[len(hunks)-1].Edits)-1]
		if last.Op == Equals && last.Len() > context {
			last.End = last.Start + context
		}
	}
	return hunks
}
