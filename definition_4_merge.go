package appearance

// MergeIntervals coalesces overlapping and touching segments.
// Result is sorted ascending and for consecutive segments next.TimeStart > current.TimeEnd.
// The passed slice is not modified.
func MergeIntervals(segments []TimeInterval) []TimeInterval {
	if len(segments) == 0 {
		return nil
	}

	sorted := make([]TimeInterval, len(segments))
	copy(sorted, segments)

	sortIntervals(sorted)

	result := []TimeInterval{sorted[0]}

	for _, segment := range sorted[1:] {
		last := &result[len(result)-1]

		// touching segments count as one continuous connection
		if segment.TimeStart <= last.TimeEnd {
			last.TimeEnd = max(last.TimeEnd, segment.TimeEnd)

			continue
		}

		result = append(result, segment)
	}

	return result
}

func SumDurations(segments []TimeInterval) int64 {
	var total int64

	for _, segment := range segments {
		total = total + segment.Duration()
	}

	return total
}
