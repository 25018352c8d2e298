package appearance

import (
	"encoding/json"
	"math/rand"
	"testing"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/stretchr/testify/require"
)

func TestAppearance(t *testing.T) {
	tests := []struct {
		name     string
		lesson   Lesson
		expected int64
	}{
		{
			name: "1. two disjoint connections",
			lesson: Lesson{
				Window: TimeInterval{TimeStart: 0, TimeEnd: 100},
				Tutor:  RawTimestampSeries{0, 50, 60, 100},
				Pupil:  RawTimestampSeries{10, 70},
			},
			expected: 50,
		},
		{
			name: "2. no overlap",
			lesson: Lesson{
				Window: TimeInterval{TimeStart: 0, TimeEnd: 30},
				Tutor:  RawTimestampSeries{0, 10},
				Pupil:  RawTimestampSeries{20, 30},
			},
			expected: 0,
		},
		{
			name: "3. touching segments counted once",
			lesson: Lesson{
				Window: TimeInterval{TimeStart: 0, TimeEnd: 20},
				Tutor:  RawTimestampSeries{0, 10, 10, 20},
				Pupil:  RawTimestampSeries{0, 20},
			},
			expected: 20,
		},
		{
			name: "4. empty pupil",
			lesson: Lesson{
				Window: TimeInterval{TimeStart: 0, TimeEnd: 20},
				Tutor:  RawTimestampSeries{0, 20},
			},
			expected: 0,
		},
		{
			name: "5. overlapping pupil reconnects not double counted",
			lesson: Lesson{
				Window: TimeInterval{TimeStart: 0, TimeEnd: 100},
				Tutor:  RawTimestampSeries{0, 100},
				Pupil:  RawTimestampSeries{10, 60, 20, 40, 50, 80},
			},
			expected: 70,
		},
		{
			name: "6. real lesson",
			lesson: Lesson{
				Window: TimeInterval{TimeStart: 1594663200, TimeEnd: 1594666800},
				Pupil: RawTimestampSeries{
					1594663340, 1594663389,
					1594663390, 1594663395,
					1594663396, 1594666472,
				},
				Tutor: RawTimestampSeries{
					1594663290, 1594663430,
					1594663443, 1594666473,
				},
			},
			expected: 3117,
		},
		{
			name: "7. real lesson, presence beyond window",
			lesson: Lesson{
				Window: TimeInterval{TimeStart: 1594692000, TimeEnd: 1594695600},
				Pupil:  RawTimestampSeries{1594692033, 1594696347},
				Tutor: RawTimestampSeries{
					1594692017, 1594692066,
					1594692068, 1594696341,
				},
			},
			expected: 3565,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				duration, errAppearance := Appearance(&tt.lesson)
				require.NoError(t, errAppearance)
				require.Equal(t, tt.expected, duration)

				swapped := Lesson{
					Window: tt.lesson.Window,
					Tutor:  tt.lesson.Pupil,
					Pupil:  tt.lesson.Tutor,
				}

				durationSwapped, errSwapped := Appearance(&swapped)
				require.NoError(t, errSwapped)
				require.Equal(t, duration, durationSwapped, "roles must be symmetric")
			},
		)
	}
}

func TestAppearanceNilLesson(t *testing.T) {
	duration, errAppearance := Appearance(nil)
	require.Error(t, errAppearance)
	require.Zero(t, duration)
}

func TestConnections(t *testing.T) {
	lesson := Lesson{
		Window: TimeInterval{TimeStart: 0, TimeEnd: 100},
		Tutor:  RawTimestampSeries{0, 50, 60, 100},
		Pupil:  RawTimestampSeries{10, 70},
	}

	connections, errConnections := lesson.Connections()
	require.NoError(t, errConnections)
	require.Equal(t,
		[]TimeInterval{
			{TimeStart: 10, TimeEnd: 50},
			{TimeStart: 60, TimeEnd: 70},
		},
		connections,
	)
}

func TestSeriesFor(t *testing.T) {
	lesson := Lesson{
		Pupil: RawTimestampSeries{1, 2},
		Tutor: RawTimestampSeries{3, 4},
	}

	t.Run(
		"1. known roles",
		func(t *testing.T) {
			pupil, errPupil := lesson.SeriesFor(RolePupil)
			require.NoError(t, errPupil)
			require.Equal(t, lesson.Pupil, pupil)

			tutor, errTutor := lesson.SeriesFor(RoleTutor)
			require.NoError(t, errTutor)
			require.Equal(t, lesson.Tutor, tutor)
		},
	)

	t.Run(
		"2. unknown role",
		func(t *testing.T) {
			series, errGet := lesson.SeriesFor(Role(9))
			require.Error(t, errGet)
			require.Nil(t, series)

			intervals, errIntervals := lesson.GetIntervalsByRole(Role(0))
			require.Error(t, errIntervals)
			require.Nil(t, intervals)
		},
	)

	require.Equal(t, "pupil", RolePupil.String())
	require.Equal(t, "tutor", RoleTutor.String())
}

func TestLessonJSON(t *testing.T) {
	t.Run(
		"1. valid record",
		func(t *testing.T) {
			var lesson Lesson

			require.NoError(t,
				json.Unmarshal(
					[]byte(`{"lesson":[0,100],"pupil":[10,70],"tutor":[0,50,60,100]}`),
					&lesson,
				),
			)
			require.Equal(t,
				Lesson{
					Window: TimeInterval{TimeStart: 0, TimeEnd: 100},
					Pupil:  RawTimestampSeries{10, 70},
					Tutor:  RawTimestampSeries{0, 50, 60, 100},
				},
				lesson,
			)

			encoded, errMarshal := json.Marshal(lesson)
			require.NoError(t, errMarshal)
			require.JSONEq(t,
				`{"lesson":[0,100],"pupil":[10,70],"tutor":[0,50,60,100]}`,
				string(encoded),
			)
		},
	)

	t.Run(
		"2. missing lesson window",
		func(t *testing.T) {
			var lesson Lesson

			errUnmarshal := json.Unmarshal([]byte(`{"pupil":[1,2],"tutor":[1,2]}`), &lesson)
			require.Error(t, errUnmarshal)
			require.ErrorAs(t, errUnmarshal, &goerrors.ErrValidation{})
		},
	)

	t.Run(
		"3. lesson window with three elements",
		func(t *testing.T) {
			var lesson Lesson

			errUnmarshal := json.Unmarshal([]byte(`{"lesson":[1,2,3],"pupil":[],"tutor":[]}`), &lesson)
			require.Error(t, errUnmarshal)
			require.ErrorAs(t, errUnmarshal, &goerrors.ErrInvalidInput{})
		},
	)

	t.Run(
		"4. non integer timestamp",
		func(t *testing.T) {
			var lesson Lesson

			require.Error(t,
				json.Unmarshal([]byte(`{"lesson":[0,10],"pupil":["a"],"tutor":[]}`), &lesson),
			)
		},
	)

	t.Run(
		"5. missing pupil series",
		func(t *testing.T) {
			var lesson Lesson

			errUnmarshal := json.Unmarshal([]byte(`{"lesson":[0,100],"tutor":[10,70]}`), &lesson)
			require.Error(t, errUnmarshal)

			var errValidation goerrors.ErrValidation
			require.ErrorAs(t, errUnmarshal, &errValidation)
			require.Equal(t,
				goerrors.ErrNilInput{InputName: "pupil"},
				errValidation.Issue,
			)
		},
	)

	t.Run(
		"6. missing tutor series",
		func(t *testing.T) {
			var lesson Lesson

			errUnmarshal := json.Unmarshal([]byte(`{"lesson":[0,100],"pupil":[10,70]}`), &lesson)
			require.Error(t, errUnmarshal)

			var errValidation goerrors.ErrValidation
			require.ErrorAs(t, errUnmarshal, &errValidation)
			require.Equal(t,
				goerrors.ErrNilInput{InputName: "tutor"},
				errValidation.Issue,
			)
		},
	)

	t.Run(
		"7. empty series are present",
		func(t *testing.T) {
			var lesson Lesson

			require.NoError(t,
				json.Unmarshal([]byte(`{"lesson":[0,100],"pupil":[],"tutor":[]}`), &lesson),
			)

			duration, errAppearance := Appearance(&lesson)
			require.NoError(t, errAppearance)
			require.Zero(t, duration)

			encoded, errMarshal := json.Marshal(Lesson{Window: lesson.Window})
			require.NoError(t, errMarshal)
			require.JSONEq(t,
				`{"lesson":[0,100],"pupil":[],"tutor":[]}`,
				string(encoded),
			)
		},
	)
}

func randomSeries(r *rand.Rand, window TimeInterval) RawTimestampSeries {
	var result RawTimestampSeries

	span := window.Duration() + 40

	for range r.Intn(6) {
		login := window.TimeStart - 20 + r.Int63n(span)

		result = append(result, login, login+r.Int63n(30))
	}

	return result
}

func shufflePairs(r *rand.Rand, series RawTimestampSeries) RawTimestampSeries {
	result := make(RawTimestampSeries, len(series))
	copy(result, series)

	r.Shuffle(
		len(result)/2,
		func(i, j int) {
			result[2*i], result[2*j] = result[2*j], result[2*i]
			result[2*i+1], result[2*j+1] = result[2*j+1], result[2*i+1]
		},
	)

	return result
}

func TestAppearanceProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for range 500 {
		window := TimeInterval{TimeStart: 100, TimeEnd: 100 + r.Int63n(200)}

		lesson := Lesson{
			Window: window,
			Tutor:  randomSeries(r, window),
			Pupil:  randomSeries(r, window),
		}

		duration, errAppearance := Appearance(&lesson)
		require.NoError(t, errAppearance)

		require.GreaterOrEqual(t, duration, int64(0))
		require.LessOrEqual(t, duration, window.Duration(), "clipped to window")

		again, errAgain := Appearance(&lesson)
		require.NoError(t, errAgain)
		require.Equal(t, duration, again, "deterministic")

		shuffled := Lesson{
			Window: window,
			Tutor:  shufflePairs(r, lesson.Tutor),
			Pupil:  shufflePairs(r, lesson.Pupil),
		}

		durationShuffled, errShuffled := Appearance(&shuffled)
		require.NoError(t, errShuffled)
		require.Equal(t, duration, durationShuffled, "pair order independent")

		swapped := Lesson{
			Window: window,
			Tutor:  lesson.Pupil,
			Pupil:  lesson.Tutor,
		}

		durationSwapped, errSwapped := Appearance(&swapped)
		require.NoError(t, errSwapped)
		require.Equal(t, duration, durationSwapped, "symmetric")
	}
}
