package scoring

// Range is a half-open [Start, End) interval of rune indices into the
// matched string.
type Range struct {
	Start int
	End   int
}

// rangesFromPositions coalesces ascending matched positions into runs of
// adjacent runes.
func rangesFromPositions(positions []int) []Range {
	if len(positions) == 0 {
		return nil
	}
	ranges := make([]Range, 0, len(positions))
	current := Range{Start: positions[0], End: positions[0] + 1}
	for _, pos := range positions[1:] {
		if pos == current.End {
			current.End = pos + 1
			continue
		}
		ranges = append(ranges, current)
		current = Range{Start: pos, End: pos + 1}
	}
	return append(ranges, current)
}
