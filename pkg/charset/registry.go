package charset

// buildCandidates builds the ordered, deduplicated trial list: the seed
// guess first, then the fixed fallback sequence with any label already
// present skipped. The result is an ordered sequence, not a set; scan order
// decides ties and early exits downstream.
func buildCandidates(seed string, fallbacks []string) []string {
	candidates := make([]string, 0, len(fallbacks)+1)
	seen := make(map[string]bool, len(fallbacks)+1)

	if seed != "" {
		candidates = append(candidates, seed)
		seen[seed] = true
	}
	for _, label := range fallbacks {
		if seen[label] {
			continue
		}
		candidates = append(candidates, label)
		seen[label] = true
	}
	return candidates
}
