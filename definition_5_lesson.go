package appearance

import (
	"encoding/json"
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

type Role uint8

const (
	RolePupil = Role(iota + 1)
	RoleTutor
)

func (r Role) String() string {
	switch r {
	case RolePupil:
		return "pupil"

	case RoleTutor:
		return "tutor"
	}

	return fmt.Sprintf("role(%d)", uint8(r))
}

type Lesson struct {
	Pupil RawTimestampSeries
	Tutor RawTimestampSeries

	Window TimeInterval
}

type lessonJSON struct {
	Lesson []int64             `json:"lesson"`
	Pupil  *RawTimestampSeries `json:"pupil"`
	Tutor  *RawTimestampSeries `json:"tutor"`
}

func errMissingKey(caller, key string) error {
	return goerrors.ErrValidation{
		Caller: caller,
		Issue: goerrors.ErrNilInput{
			InputName: key,
		},
	}
}

func (l *Lesson) UnmarshalJSON(data []byte) error {
	var raw lessonJSON

	if errUnmarshal := json.Unmarshal(data, &raw); errUnmarshal != nil {
		return errUnmarshal
	}

	if raw.Lesson == nil {
		return errMissingKey("UnmarshalJSON - Lesson", "lesson")
	}

	if len(raw.Lesson) != 2 {
		return goerrors.ErrInvalidInput{
			Caller:     "UnmarshalJSON - Lesson",
			InputName:  "lesson",
			InputValue: raw.Lesson,
			Issue: fmt.Errorf(
				"expected [start, end], got %d elements",
				len(raw.Lesson),
			),
		}
	}

	if raw.Pupil == nil {
		return errMissingKey("UnmarshalJSON - Lesson", "pupil")
	}

	if raw.Tutor == nil {
		return errMissingKey("UnmarshalJSON - Lesson", "tutor")
	}

	*l = Lesson{
		Window: TimeInterval{
			TimeStart: raw.Lesson[0],
			TimeEnd:   raw.Lesson[1],
		},
		Pupil: *raw.Pupil,
		Tutor: *raw.Tutor,
	}

	return nil
}

func (l Lesson) MarshalJSON() ([]byte, error) {
	pupil := l.Pupil
	if pupil == nil {
		pupil = RawTimestampSeries{}
	}

	tutor := l.Tutor
	if tutor == nil {
		tutor = RawTimestampSeries{}
	}

	return json.Marshal(
		lessonJSON{
			Lesson: []int64{
				l.Window.TimeStart,
				l.Window.TimeEnd,
			},
			Pupil: &pupil,
			Tutor: &tutor,
		},
	)
}

func (l *Lesson) SeriesFor(role Role) (RawTimestampSeries, error) {
	switch role {
	case RolePupil:
		return l.Pupil, nil

	case RoleTutor:
		return l.Tutor, nil
	}

	return nil,
		goerrors.ErrInvalidInput{
			Caller:     "SeriesFor",
			InputName:  "role",
			InputValue: role,
			Issue: errors.New(
				"unknown role",
			),
		}
}

func (l *Lesson) GetIntervalsByRole(role Role) (IntervalSet, error) {
	series, errGet := l.SeriesFor(role)
	if errGet != nil {
		return nil,
			errGet
	}

	return NewIntervalSet(series),
		nil
}

// Connections returns the merged segments during which both parties
// were present inside the lesson window.
func (l *Lesson) Connections() ([]TimeInterval, error) {
	pupilIntervals, errPupil := l.GetIntervalsByRole(RolePupil)
	if errPupil != nil {
		return nil,
			errPupil
	}

	tutorIntervals, errTutor := l.GetIntervalsByRole(RoleTutor)
	if errTutor != nil {
		return nil,
			errTutor
	}

	overlaps := GetOverlaps(tutorIntervals, pupilIntervals, l.Window)
	if len(overlaps) == 0 {
		return nil, nil
	}

	return MergeIntervals(overlaps),
		nil
}

// Appearance returns the total time pupil and tutor were both connected
// within the lesson window.
func Appearance(lesson *Lesson) (int64, error) {
	if lesson == nil {
		return 0,
			goerrors.ErrNilInput{
				InputName: "lesson",
			}
	}

	connections, errConnections := lesson.Connections()
	if errConnections != nil {
		return 0,
			errConnections
	}

	return SumDurations(connections),
		nil
}
