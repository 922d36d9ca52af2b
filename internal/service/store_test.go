package service

import (
	"context"
	"quiz_engine_backend/internal/model"
	"sync"
)

// memStore is an in-memory TestStore that records how it was used.
type memStore struct {
	mu        sync.Mutex
	tests     []*model.Test
	results   []*model.TestResult
	saveCalls int
	saveErr   error
	appendErr error
}

func (s *memStore) LoadAllTests(ctx context.Context) ([]*model.Test, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Test, len(s.tests))
	for i, t := range s.tests {
		out[i] = t.Clone()
	}
	return out, nil
}

func (s *memStore) SaveAllTests(ctx context.Context, tests []*model.Test) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.tests = make([]*model.Test, len(tests))
	for i, t := range tests {
		s.tests[i] = t.Clone()
	}
	return nil
}

func (s *memStore) LoadStatistics(ctx context.Context) ([]*model.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.TestResult{}, s.results...), nil
}

func (s *memStore) SaveStatistic(ctx context.Context, result *model.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	s.results = append(s.results, result)
	return nil
}

// buildTest returns a test whose questions each have one correct answer
// followed by wrongPerQuestion wrong ones.
func buildTest(title string, questions, wrongPerQuestion int) *model.Test {
	test := model.NewTest(title, 0)
	for i := 0; i < questions; i++ {
		q := model.NewQuestion(title + " question")
		q.AddAnswer(model.NewAnswer("right", true))
		for j := 0; j < wrongPerQuestion; j++ {
			q.AddAnswer(model.NewAnswer("wrong", false))
		}
		test.AddQuestion(q)
	}
	return test
}

func correctAnswerID(q *model.Question) string {
	for _, a := range q.Answers {
		if a.IsCorrect {
			return a.ID
		}
	}
	return ""
}

func wrongAnswerID(q *model.Question) string {
	for _, a := range q.Answers {
		if !a.IsCorrect {
			return a.ID
		}
	}
	return ""
}
