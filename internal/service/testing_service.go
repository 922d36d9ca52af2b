package service

import (
	"math/rand/v2"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/util"
	"time"
)

// Results is the score of one attempt.
type Results struct {
	Percent float64 `json:"percent"`
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
}

// TestingService runs one attempt at a test. It works on a private copy of
// the test, so later edits to the test and other sessions never interfere.
//
// The attempt is in progress while GetNextQuestion returns questions and is
// complete once it returns nil.
type TestingService struct {
	state *model.SessionState
}

// CheckStartable reports why test cannot be attempted, or nil.
func CheckStartable(test *model.Test) error {
	if len(test.Questions) == 0 {
		return &util.InvalidTestError{Reason: "has no questions"}
	}
	for _, q := range test.Questions {
		if len(q.Answers) == 0 {
			return &util.InvalidTestError{
				Reason:       "has no answers",
				QuestionText: util.Excerpt(q.Text, util.ExcerptLength),
			}
		}
		if !q.HasCorrectAnswer() {
			return &util.InvalidTestError{
				Reason:       "has no correct answer",
				QuestionText: util.Excerpt(q.Text, util.ExcerptLength),
			}
		}
	}
	return nil
}

func NewTestingService(test *model.Test) (*TestingService, error) {
	if err := CheckStartable(test); err != nil {
		return nil, err
	}

	copied := test.Clone()
	rand.Shuffle(len(copied.Questions), func(i, j int) {
		copied.Questions[i], copied.Questions[j] = copied.Questions[j], copied.Questions[i]
	})

	return &TestingService{
		state: &model.SessionState{
			ID:          model.GenerateUUID(),
			StudentName: model.DefaultStudentName,
			Test:        copied,
			Cursor:      -1,
			Answers:     make(map[string]string),
			StartedAt:   time.Now(),
		},
	}, nil
}

// RestoreTestingService resumes a session from stored state.
func RestoreTestingService(state *model.SessionState) *TestingService {
	if state.Answers == nil {
		state.Answers = make(map[string]string)
	}
	return &TestingService{state: state}
}

func (s *TestingService) ID() string {
	return s.state.ID
}

func (s *TestingService) Test() *model.Test {
	return s.state.Test
}

func (s *TestingService) SetStudentName(name string) {
	if name == "" {
		name = model.DefaultStudentName
	}
	s.state.StudentName = name
}

func (s *TestingService) StudentName() string {
	return s.state.StudentName
}

// State exposes the session for storage.
func (s *TestingService) State() *model.SessionState {
	return s.state
}

// GetNextQuestion advances to the next question and shuffles its answers.
// It returns nil once every question has been handed out.
func (s *TestingService) GetNextQuestion() *model.Question {
	questions := s.state.Test.Questions
	if s.state.Cursor < len(questions) {
		s.state.Cursor++
	}
	if s.state.Cursor >= len(questions) {
		return nil
	}

	q := questions[s.state.Cursor]
	rand.Shuffle(len(q.Answers), func(i, j int) {
		q.Answers[i], q.Answers[j] = q.Answers[j], q.Answers[i]
	})
	return q
}

// CurrentQuestion is the question last returned by GetNextQuestion, or nil.
func (s *TestingService) CurrentQuestion() *model.Question {
	c := s.state.Cursor
	if c < 0 || c >= len(s.state.Test.Questions) {
		return nil
	}
	return s.state.Test.Questions[c]
}

func (s *TestingService) Finished() bool {
	return s.state.Cursor >= len(s.state.Test.Questions)
}

// SubmitAnswer records answerID for questionID, replacing an earlier choice.
// The pair is not checked; an answer from another question simply scores as wrong.
func (s *TestingService) SubmitAnswer(questionID, answerID string) {
	s.state.Answers[questionID] = answerID
}

// StopTest ends the attempt early. Questions not answered count as wrong.
func (s *TestingService) StopTest() Results {
	return s.CalculateResults()
}

func (s *TestingService) CalculateResults() Results {
	questions := s.state.Test.Questions
	total := len(questions)
	if total == 0 {
		return Results{}
	}

	correct := 0
	for _, q := range questions {
		selected, ok := s.state.Answers[q.ID]
		if !ok {
			continue
		}
		if _, a := q.FindAnswer(selected); a != nil && a.IsCorrect {
			correct++
		}
	}

	return Results{
		Percent: util.Round2(float64(correct) / float64(total) * 100),
		Correct: correct,
		Total:   total,
	}
}
