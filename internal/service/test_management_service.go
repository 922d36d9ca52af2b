package service

import (
	"context"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/repository"
	"quiz_engine_backend/internal/util"
	"quiz_engine_backend/pkg/logger"
	"quiz_engine_backend/pkg/monitoring"
	"quiz_engine_backend/pkg/tracing"

	"go.uber.org/zap"
)

// TestManagementService owns the in-memory test collection of one
// administrative session. Mutations are not durable until SaveChanges.
// It is not safe for concurrent use.
type TestManagementService struct {
	Store repository.TestStore
	tests []*model.Test
}

func NewTestManagementService(ctx context.Context, store repository.TestStore) (*TestManagementService, error) {
	tests, err := store.LoadAllTests(ctx)
	if err != nil {
		return nil, err
	}
	if tests == nil {
		tests = []*model.Test{}
	}
	logger.Log.Info("Tests loaded", zap.Int("count", len(tests)))
	return &TestManagementService{Store: store, tests: tests}, nil
}

func (s *TestManagementService) getTest(testID string) (int, *model.Test, error) {
	for i, t := range s.tests {
		if t.ID == testID {
			return i, t, nil
		}
	}
	return -1, nil, util.TestNotFound(testID)
}

func (s *TestManagementService) getQuestion(testID, questionID string) (*model.Test, int, *model.Question, error) {
	_, test, err := s.getTest(testID)
	if err != nil {
		return nil, -1, nil, err
	}
	i, q := test.FindQuestion(questionID)
	if q == nil {
		return nil, -1, nil, util.QuestionNotFound(questionID)
	}
	return test, i, q, nil
}

func (s *TestManagementService) getAnswer(testID, questionID, answerID string) (*model.Question, int, *model.Answer, error) {
	_, _, q, err := s.getQuestion(testID, questionID)
	if err != nil {
		return nil, -1, nil, err
	}
	i, a := q.FindAnswer(answerID)
	if a == nil {
		return nil, -1, nil, util.AnswerNotFound(answerID)
	}
	return q, i, a, nil
}

// CreateTest appends a new test; timePerQuestion <= 0 selects the default.
func (s *TestManagementService) CreateTest(title string, timePerQuestion int) *model.Test {
	test := model.NewTest(title, timePerQuestion)
	s.tests = append(s.tests, test)
	return test
}

func (s *TestManagementService) EditTestSettings(testID, title string, timePerQuestion int) error {
	_, test, err := s.getTest(testID)
	if err != nil {
		return err
	}
	test.Title = title
	test.TimePerQuestion = timePerQuestion
	return nil
}

func (s *TestManagementService) RemoveTest(testID string) error {
	i, _, err := s.getTest(testID)
	if err != nil {
		return err
	}
	s.tests = append(s.tests[:i], s.tests[i+1:]...)
	return nil
}

func (s *TestManagementService) AddQuestion(testID, text string) (*model.Question, error) {
	_, test, err := s.getTest(testID)
	if err != nil {
		return nil, err
	}
	q := model.NewQuestion(text)
	test.AddQuestion(q)
	return q, nil
}

func (s *TestManagementService) EditQuestion(testID, questionID, text string) error {
	_, _, q, err := s.getQuestion(testID, questionID)
	if err != nil {
		return err
	}
	q.Text = text
	return nil
}

func (s *TestManagementService) RemoveQuestion(testID, questionID string) error {
	test, i, _, err := s.getQuestion(testID, questionID)
	if err != nil {
		return err
	}
	test.Questions = append(test.Questions[:i], test.Questions[i+1:]...)
	return nil
}

func (s *TestManagementService) GetQuestions(testID string) ([]*model.Question, error) {
	_, test, err := s.getTest(testID)
	if err != nil {
		return nil, err
	}
	return test.Questions, nil
}

func (s *TestManagementService) AddAnswer(testID, questionID, text string, isCorrect bool) (*model.Answer, error) {
	_, _, q, err := s.getQuestion(testID, questionID)
	if err != nil {
		return nil, err
	}
	a := model.NewAnswer(text, isCorrect)
	q.AddAnswer(a)
	return a, nil
}

func (s *TestManagementService) EditAnswer(testID, questionID, answerID, text string, isCorrect bool) error {
	_, _, a, err := s.getAnswer(testID, questionID, answerID)
	if err != nil {
		return err
	}
	a.Text = text
	a.IsCorrect = isCorrect
	return nil
}

func (s *TestManagementService) RemoveAnswer(testID, questionID, answerID string) error {
	q, i, _, err := s.getAnswer(testID, questionID, answerID)
	if err != nil {
		return err
	}
	q.Answers = append(q.Answers[:i], q.Answers[i+1:]...)
	return nil
}

func (s *TestManagementService) GetAnswers(testID, questionID string) ([]*model.Answer, error) {
	_, _, q, err := s.getQuestion(testID, questionID)
	if err != nil {
		return nil, err
	}
	return q.Answers, nil
}

// GetAllTests returns the live collection; callers see later mutations.
func (s *TestManagementService) GetAllTests() []*model.Test {
	return s.tests
}

func (s *TestManagementService) FindTestByID(testID string) (*model.Test, error) {
	_, test, err := s.getTest(testID)
	return test, err
}

// Validate returns the first question that has answers but no correct one.
func (s *TestManagementService) Validate() error {
	for _, test := range s.tests {
		for _, q := range test.Questions {
			if len(q.Answers) > 0 && !q.HasCorrectAnswer() {
				return &util.QuestionValidationError{
					TestID:       test.ID,
					TestTitle:    test.Title,
					QuestionID:   q.ID,
					QuestionText: util.Excerpt(q.Text, util.ExcerptLength),
				}
			}
		}
	}
	return nil
}

// SaveChanges validates every test and then replaces the stored collection.
// Nothing is written when validation fails.
func (s *TestManagementService) SaveChanges(ctx context.Context) (err error) {
	ctx, span := tracing.Start(ctx, "TestManagementService.SaveChanges")
	defer func() { tracing.End(span, err) }()

	if err := s.Validate(); err != nil {
		monitoring.SaveOutcomes.WithLabelValues("invalid").Inc()
		logger.Log.Info("Save rejected", zap.Error(err))
		return err
	}

	if err := s.Store.SaveAllTests(ctx, s.tests); err != nil {
		monitoring.SaveOutcomes.WithLabelValues("error").Inc()
		return err
	}

	monitoring.SaveOutcomes.WithLabelValues("saved").Inc()
	logger.Log.Info("Tests saved", zap.Int("count", len(s.tests)))
	return nil
}
