package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"quiz_engine_backend/internal/model"
)

// TestStore is the persistence port for tests and the result log.
//
// Loads tolerate a missing or corrupt backing document and return an empty
// slice. Writes fail with *util.DataAccessError.
type TestStore interface {
	LoadAllTests(ctx context.Context) ([]*model.Test, error)
	SaveAllTests(ctx context.Context, tests []*model.Test) error
	LoadStatistics(ctx context.Context) ([]*model.TestResult, error)
	SaveStatistic(ctx context.Context, result *model.TestResult) error
}

func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeTests(data []byte) ([]*model.Test, error) {
	var tests []*model.Test
	if err := json.Unmarshal(data, &tests); err != nil {
		return nil, err
	}
	return compactTests(tests), nil
}

func decodeResults(data []byte) ([]*model.TestResult, error) {
	var results []*model.TestResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// compactTests drops null entries so callers never see nil tests, questions or answers.
func compactTests(tests []*model.Test) []*model.Test {
	out := make([]*model.Test, 0, len(tests))
	for _, t := range tests {
		if t == nil {
			continue
		}
		qs := make([]*model.Question, 0, len(t.Questions))
		for _, q := range t.Questions {
			if q == nil {
				continue
			}
			as := make([]*model.Answer, 0, len(q.Answers))
			for _, a := range q.Answers {
				if a != nil {
					as = append(as, a)
				}
			}
			q.Answers = as
			qs = append(qs, q)
		}
		t.Questions = qs
		out = append(out, t)
	}
	return out
}
