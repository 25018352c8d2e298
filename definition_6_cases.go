package appearance

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type TestCase struct {
	Intervals Lesson `json:"intervals"`
	Answer    int64  `json:"answer"`
}

type testCaseJSON struct {
	Intervals *Lesson `json:"intervals"`
	Answer    *int64  `json:"answer"`
}

func (c *TestCase) UnmarshalJSON(data []byte) error {
	var raw testCaseJSON

	if errUnmarshal := json.Unmarshal(data, &raw); errUnmarshal != nil {
		return errUnmarshal
	}

	if raw.Intervals == nil {
		return errMissingKey("UnmarshalJSON - TestCase", "intervals")
	}

	if raw.Answer == nil {
		return errMissingKey("UnmarshalJSON - TestCase", "answer")
	}

	*c = TestCase{
		Intervals: *raw.Intervals,
		Answer:    *raw.Answer,
	}

	return nil
}

// LoadCases decodes a JSON array of cases.
func LoadCases(r io.Reader) ([]TestCase, error) {
	var result []TestCase

	if errDecode := json.NewDecoder(r).Decode(&result); errDecode != nil {
		return nil,
			fmt.Errorf("decoding cases: %w", errDecode)
	}

	return result,
		nil
}

func LoadCasesFromFile(path string) ([]TestCase, error) {
	f, errOpen := os.Open(path)
	if errOpen != nil {
		return nil,
			fmt.Errorf("opening cases file: %w", errOpen)
	}
	defer f.Close()

	cases, errLoad := LoadCases(f)
	if errLoad != nil {
		return nil,
			fmt.Errorf("%s: %w", path, errLoad)
	}

	return cases,
		nil
}
