package appearance

import (
	"fmt"
	"sort"
)

type TimeInterval struct {
	TimeStart int64
	TimeEnd   int64
}

func (interval TimeInterval) Duration() int64 {
	return interval.TimeEnd - interval.TimeStart
}

// Intersect returns the common part of the interval with all others.
// ok is false when the result is empty or inverted.
func (interval TimeInterval) Intersect(others ...TimeInterval) (TimeInterval, bool) {
	overlapStart := interval.TimeStart
	overlapEnd := interval.TimeEnd

	for _, other := range others {
		overlapStart = max(overlapStart, other.TimeStart)
		overlapEnd = min(overlapEnd, other.TimeEnd)
	}

	if overlapStart < overlapEnd {
		return TimeInterval{
				TimeStart: overlapStart,
				TimeEnd:   overlapEnd,
			},
			true
	}

	return TimeInterval{},
		false
}

func (interval TimeInterval) String() string {
	return fmt.Sprintf(
		"[%d-%d]",

		interval.TimeStart,
		interval.TimeEnd,
	)
}

func sortIntervals(intervals []TimeInterval) {
	sort.Slice(
		intervals,
		func(i, j int) bool {
			if intervals[i].TimeStart != intervals[j].TimeStart {
				return intervals[i].TimeStart < intervals[j].TimeStart
			}

			return intervals[i].TimeEnd < intervals[j].TimeEnd
		},
	)
}
