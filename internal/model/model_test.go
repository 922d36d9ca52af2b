package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTest() *Test {
	test := NewTest("Geography", 30)
	q := NewQuestion("Capital of France?")
	q.AddAnswer(NewAnswer("Paris", true))
	q.AddAnswer(NewAnswer("Lyon", false))
	test.AddQuestion(q)
	return test
}

func TestNewTestDefaultsTimePerQuestion(t *testing.T) {
	assert.Equal(t, DefaultTimePerQuestion, NewTest("t", 0).TimePerQuestion)
	assert.Equal(t, DefaultTimePerQuestion, NewTest("t", -5).TimePerQuestion)
	assert.Equal(t, 45, NewTest("t", 45).TimePerQuestion)
}

func TestNewEntitiesGetDistinctIDs(t *testing.T) {
	a, b := NewTest("a", 0), NewTest("b", 0)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, NewQuestion("q").ID, NewQuestion("q").ID)
	assert.NotEqual(t, NewAnswer("x", false).ID, NewAnswer("x", false).ID)
}

func TestCloneSharesNothing(t *testing.T) {
	orig := sampleTest()
	c := orig.Clone()

	c.Title = "changed"
	c.Questions[0].Text = "changed"
	c.Questions[0].Answers[0].IsCorrect = false
	c.Questions[0].Answers = c.Questions[0].Answers[:1]
	c.Questions = append(c.Questions, NewQuestion("extra"))

	assert.Equal(t, "Geography", orig.Title)
	require.Len(t, orig.Questions, 1)
	assert.Equal(t, "Capital of France?", orig.Questions[0].Text)
	require.Len(t, orig.Questions[0].Answers, 2)
	assert.True(t, orig.Questions[0].Answers[0].IsCorrect)
}

func TestHasCorrectAnswer(t *testing.T) {
	q := NewQuestion("q")
	assert.False(t, q.HasCorrectAnswer())
	q.AddAnswer(NewAnswer("wrong", false))
	assert.False(t, q.HasCorrectAnswer())
	q.AddAnswer(NewAnswer("right", true))
	assert.True(t, q.HasCorrectAnswer())
}

func TestFindQuestionAndAnswer(t *testing.T) {
	test := sampleTest()
	q := test.Questions[0]

	i, found := test.FindQuestion(q.ID)
	assert.Equal(t, 0, i)
	assert.Same(t, q, found)

	i, found = test.FindQuestion("missing")
	assert.Equal(t, -1, i)
	assert.Nil(t, found)

	i, a := q.FindAnswer(q.Answers[1].ID)
	assert.Equal(t, 1, i)
	assert.Equal(t, "Lyon", a.Text)

	_, a = q.FindAnswer("missing")
	assert.Nil(t, a)
}

func TestTestJSONUsesStorageKeys(t *testing.T) {
	data, err := json.Marshal(sampleTest())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "time_per_question")
	assert.NotContains(t, raw, "Position")

	questions := raw["questions"].([]interface{})
	answers := questions[0].(map[string]interface{})["answers"].([]interface{})
	assert.Contains(t, answers[0], "is_correct")
}

func TestTestResultDefaultsStudentName(t *testing.T) {
	r := NewTestResult("id", "title", 50, "")
	assert.Equal(t, DefaultStudentName, r.StudentName)

	var decoded TestResult
	require.NoError(t, json.Unmarshal([]byte(`{"test_title":"T","test_id":"x","score_percent":75}`), &decoded))
	assert.Equal(t, DefaultStudentName, decoded.StudentName)
	assert.Equal(t, 75.0, decoded.ScorePercent)
	assert.Equal(t, "x", decoded.TestID)

	require.NoError(t, json.Unmarshal([]byte(`{"test_id":"x","student_name":"Ann"}`), &decoded))
	assert.Equal(t, "Ann", decoded.StudentName)
}

func TestSessionStateCloneCopiesAnswers(t *testing.T) {
	s := &SessionState{ID: "s", Test: sampleTest(), Answers: map[string]string{"q": "a"}}
	c := s.Clone()
	c.Answers["q"] = "b"
	c.Test.Title = "other"

	assert.Equal(t, "a", s.Answers["q"])
	assert.Equal(t, "Geography", s.Test.Title)
}
