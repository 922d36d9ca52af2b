package service

import (
	"context"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/repository"
	"quiz_engine_backend/internal/util"
	"quiz_engine_backend/pkg/logger"
	"quiz_engine_backend/pkg/monitoring"
	"sync"

	"go.uber.org/zap"
)

// SessionService keeps testing sessions alive across requests and records
// the result when one is stopped. Calls on the same session are serialized
// within the process so load, mutate and save never interleave.
type SessionService struct {
	Sessions repository.SessionRepository
	Stats    *StatisticsService

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func NewSessionService(sessions repository.SessionRepository, stats *StatisticsService) *SessionService {
	return &SessionService{Sessions: sessions, Stats: stats}
}

// lock holds the session's mutex until the returned func is called.
// Entries are dropped once no caller holds or waits on them.
func (s *SessionService) lock(sessionID string) func() {
	s.mu.Lock()
	if s.locks == nil {
		s.locks = make(map[string]*sessionLock)
	}
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		s.locks[sessionID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, sessionID)
		}
		s.mu.Unlock()
	}
}

// Start opens a session on a copy of test. test must not change during the call.
func (s *SessionService) Start(ctx context.Context, test *model.Test, student string) (*TestingService, error) {
	ts, err := NewTestingService(test)
	if err != nil {
		return nil, err
	}
	ts.SetStudentName(student)

	if err := s.Sessions.Save(ctx, ts.State()); err != nil {
		return nil, err
	}

	monitoring.SessionsStarted.Inc()
	logger.Log.Info("Testing session started",
		zap.String("sessionId", ts.ID()),
		zap.String("testId", test.ID),
		zap.String("student", ts.StudentName()),
	)
	return ts, nil
}

// Get loads the session without changing it.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*TestingService, error) {
	unlock := s.lock(sessionID)
	defer unlock()
	return s.load(ctx, sessionID)
}

func (s *SessionService) load(ctx context.Context, sessionID string) (*TestingService, error) {
	state, err := s.Sessions.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Stopped {
		return nil, util.SessionNotFound(sessionID)
	}
	return RestoreTestingService(state), nil
}

// Next hands out the next question; nil means every question has been shown.
func (s *SessionService) Next(ctx context.Context, sessionID string) (*model.Question, *TestingService, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	ts, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	q := ts.GetNextQuestion()
	if err := s.Sessions.Save(ctx, ts.State()); err != nil {
		return nil, nil, err
	}
	return q, ts, nil
}

func (s *SessionService) Submit(ctx context.Context, sessionID, questionID, answerID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	ts, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	ts.SubmitAnswer(questionID, answerID)
	return s.Sessions.Save(ctx, ts.State())
}

// Stop scores the session, records the result and discards the session.
// If recording fails the session is kept so the caller can retry.
func (s *SessionService) Stop(ctx context.Context, sessionID string) (Results, *model.TestResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	ts, err := s.load(ctx, sessionID)
	if err != nil {
		return Results{}, nil, err
	}

	results := ts.StopTest()
	test := ts.Test()
	recorded, err := s.Stats.RecordResult(ctx, test.ID, test.Title, results.Percent, ts.StudentName())
	if err != nil {
		return results, nil, err
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Warn("Failed to discard finished session", zap.String("sessionId", sessionID), zap.Error(err))
		ts.State().Stopped = true
		if err := s.Sessions.Save(ctx, ts.State()); err != nil {
			logger.Log.Error("Failed to mark session stopped", zap.String("sessionId", sessionID), zap.Error(err))
		}
	}
	return results, recorded, nil
}
