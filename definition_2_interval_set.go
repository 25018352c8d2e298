package appearance

type RawTimestampSeries []int64

// IntervalSet holds unique (login, logout) pairs.
type IntervalSet map[TimeInterval]struct{}

// NewIntervalSet pairs element 2i (login) with element 2i+1 (logout).
// A trailing unpaired timestamp is dropped.
// Pairing is positional, login <= logout is not checked.
func NewIntervalSet(series RawTimestampSeries) IntervalSet {
	result := make(IntervalSet, len(series)/2)

	for ix := 0; ix+1 < len(series); ix = ix + 2 {
		result[TimeInterval{
			TimeStart: series[ix],
			TimeEnd:   series[ix+1],
		}] = struct{}{}
	}

	return result
}

func (set IntervalSet) Len() int {
	return len(set)
}

func (set IntervalSet) Contains(interval TimeInterval) bool {
	_, exists := set[interval]

	return exists
}

// Sorted returns the members ordered by start, then end.
func (set IntervalSet) Sorted() []TimeInterval {
	result := make([]TimeInterval, 0, len(set))

	for interval := range set {
		result = append(result, interval)
	}

	sortIntervals(result)

	return result
}
