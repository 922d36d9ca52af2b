package service

import (
	"context"
	"errors"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagement(t *testing.T, store *memStore) *TestManagementService {
	t.Helper()
	svc, err := NewTestManagementService(context.Background(), store)
	require.NoError(t, err)
	return svc
}

func TestManagementLoadsStoredTests(t *testing.T) {
	stored := buildTest("Geo", 2, 1)
	svc := newManagement(t, &memStore{tests: []*model.Test{stored}})

	found, err := svc.FindTestByID(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Geo", found.Title)
	assert.Len(t, svc.GetAllTests(), 1)
}

func TestManagementEmptyStore(t *testing.T) {
	svc := newManagement(t, &memStore{})
	assert.NotNil(t, svc.GetAllTests())
	assert.Empty(t, svc.GetAllTests())
}

func TestManagementCreateAndEdit(t *testing.T) {
	svc := newManagement(t, &memStore{})

	test := svc.CreateTest("Math", 0)
	assert.Equal(t, model.DefaultTimePerQuestion, test.TimePerQuestion)

	require.NoError(t, svc.EditTestSettings(test.ID, "Algebra", 90))
	found, err := svc.FindTestByID(test.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algebra", found.Title)
	assert.Equal(t, 90, found.TimePerQuestion)

	q, err := svc.AddQuestion(test.ID, "2+2?")
	require.NoError(t, err)
	require.NoError(t, svc.EditQuestion(test.ID, q.ID, "3+3?"))

	a, err := svc.AddAnswer(test.ID, q.ID, "5", false)
	require.NoError(t, err)
	require.NoError(t, svc.EditAnswer(test.ID, q.ID, a.ID, "6", true))

	answers, err := svc.GetAnswers(test.ID, q.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "6", answers[0].Text)
	assert.True(t, answers[0].IsCorrect)

	questions, err := svc.GetQuestions(test.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "3+3?", questions[0].Text)
}

func TestManagementGetAllTestsIsLive(t *testing.T) {
	svc := newManagement(t, &memStore{})
	svc.CreateTest("A", 0)

	all := svc.GetAllTests()
	svc.CreateTest("B", 0)

	assert.Len(t, all, 1)
	assert.Len(t, svc.GetAllTests(), 2)

	all[0].Title = "renamed"
	assert.Equal(t, "renamed", svc.GetAllTests()[0].Title)
}

func TestManagementRemove(t *testing.T) {
	svc := newManagement(t, &memStore{})
	test := svc.CreateTest("Math", 0)
	q1, _ := svc.AddQuestion(test.ID, "one")
	q2, _ := svc.AddQuestion(test.ID, "two")
	a1, _ := svc.AddAnswer(test.ID, q1.ID, "x", true)
	a2, _ := svc.AddAnswer(test.ID, q1.ID, "y", false)

	require.NoError(t, svc.RemoveAnswer(test.ID, q1.ID, a1.ID))
	answers, _ := svc.GetAnswers(test.ID, q1.ID)
	require.Len(t, answers, 1)
	assert.Equal(t, a2.ID, answers[0].ID)

	require.NoError(t, svc.RemoveQuestion(test.ID, q1.ID))
	questions, _ := svc.GetQuestions(test.ID)
	require.Len(t, questions, 1)
	assert.Equal(t, q2.ID, questions[0].ID)

	require.NoError(t, svc.RemoveTest(test.ID))
	assert.Empty(t, svc.GetAllTests())
}

func TestManagementNotFound(t *testing.T) {
	svc := newManagement(t, &memStore{})
	test := svc.CreateTest("Math", 0)
	q, _ := svc.AddQuestion(test.ID, "q")

	_, err := svc.FindTestByID("missing")
	assert.ErrorIs(t, err, util.ErrTestNotFound)

	assert.ErrorIs(t, svc.EditTestSettings("missing", "x", 1), util.ErrTestNotFound)
	assert.ErrorIs(t, svc.RemoveTest("missing"), util.ErrTestNotFound)

	_, err = svc.AddQuestion("missing", "q")
	assert.ErrorIs(t, err, util.ErrTestNotFound)
	assert.ErrorIs(t, svc.EditQuestion(test.ID, "missing", "x"), util.ErrQuestionNotFound)
	assert.ErrorIs(t, svc.RemoveQuestion(test.ID, "missing"), util.ErrQuestionNotFound)

	_, err = svc.AddAnswer(test.ID, "missing", "a", true)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
	assert.ErrorIs(t, svc.EditAnswer(test.ID, q.ID, "missing", "a", true), util.ErrAnswerNotFound)
	assert.ErrorIs(t, svc.RemoveAnswer(test.ID, q.ID, "missing"), util.ErrAnswerNotFound)

	var nf *util.NotFoundError
	require.True(t, errors.As(svc.RemoveAnswer(test.ID, q.ID, "gone"), &nf))
	assert.Equal(t, "gone", nf.ID)
}

func TestManagementSavePersists(t *testing.T) {
	store := &memStore{}
	svc := newManagement(t, store)
	test := svc.CreateTest("Math", 0)
	q, _ := svc.AddQuestion(test.ID, "2+2?")
	svc.AddAnswer(test.ID, q.ID, "4", true)
	svc.AddQuestion(test.ID, "no answers yet")

	require.NoError(t, svc.SaveChanges(context.Background()))
	assert.Equal(t, 1, store.saveCalls)
	require.Len(t, store.tests, 1)
	assert.Len(t, store.tests[0].Questions, 2)
}

func TestManagementSaveRejectsQuestionWithoutCorrectAnswer(t *testing.T) {
	store := &memStore{tests: []*model.Test{buildTest("Stored", 1, 1)}}
	svc := newManagement(t, store)
	test := svc.CreateTest("Math", 0)
	long := strings.Repeat("x", 80)
	q, _ := svc.AddQuestion(test.ID, long)
	svc.AddAnswer(test.ID, q.ID, "wrong", false)

	err := svc.SaveChanges(context.Background())
	require.ErrorIs(t, err, util.ErrQuestionValidation)

	var qv *util.QuestionValidationError
	require.ErrorAs(t, err, &qv)
	assert.Equal(t, test.ID, qv.TestID)
	assert.Equal(t, "Math", qv.TestTitle)
	assert.Equal(t, q.ID, qv.QuestionID)
	assert.Equal(t, strings.Repeat("x", util.ExcerptLength)+"...", qv.QuestionText)

	assert.Equal(t, 0, store.saveCalls)
	require.Len(t, store.tests, 1)
	assert.Equal(t, "Stored", store.tests[0].Title)
}

func TestManagementSaveReportsStoreFailure(t *testing.T) {
	store := &memStore{saveErr: &util.DataAccessError{Op: "save tests", Err: errors.New("disk full")}}
	svc := newManagement(t, store)
	svc.CreateTest("Math", 0)

	err := svc.SaveChanges(context.Background())
	assert.ErrorIs(t, err, util.ErrDataAccess)
	assert.Len(t, svc.GetAllTests(), 1)
}
