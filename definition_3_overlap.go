package appearance

// GetOverlaps returns, for every (tutor, pupil) pair, the part where both are
// present inside the lesson window.
// Zero length and inverted results are dropped, duplicates are kept.
func GetOverlaps(tutor, pupil IntervalSet, window TimeInterval) []TimeInterval {
	var result []TimeInterval

	for tutorInterval := range tutor {
		for pupilInterval := range pupil {
			overlap, isOverlapping := window.Intersect(
				tutorInterval,
				pupilInterval,
			)
			if !isOverlapping {
				continue
			}

			result = append(result, overlap)
		}
	}

	return result
}
