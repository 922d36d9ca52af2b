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

// StatisticsService records results and aggregates them per test.
// Every query reads the store afresh.
type StatisticsService struct {
	Store repository.TestStore
}

func NewStatisticsService(store repository.TestStore) *StatisticsService {
	return &StatisticsService{Store: store}
}

// RecordResult appends a result. Score and test id are stored as given.
func (s *StatisticsService) RecordResult(ctx context.Context, testID, testTitle string, score float64, student string) (result *model.TestResult, err error) {
	ctx, span := tracing.Start(ctx, "StatisticsService.RecordResult")
	defer func() { tracing.End(span, err) }()

	result = model.NewTestResult(testID, testTitle, score, student)
	if err := s.Store.SaveStatistic(ctx, result); err != nil {
		return nil, err
	}

	monitoring.ResultsRecorded.Inc()
	monitoring.ScorePercent.Observe(score)
	logger.Log.Info("Result recorded",
		zap.String("testId", testID),
		zap.String("student", result.StudentName),
		zap.Float64("score", score),
	)
	return result, nil
}

// GetTestStatistics returns one entry per stored test, in store order.
// Results whose test no longer exists are ignored.
func (s *StatisticsService) GetTestStatistics(ctx context.Context) (stats []model.TestStatistic, err error) {
	ctx, span := tracing.Start(ctx, "StatisticsService.GetTestStatistics")
	defer func() { tracing.End(span, err) }()

	results, err := s.Store.LoadStatistics(ctx)
	if err != nil {
		return nil, err
	}
	tests, err := s.Store.LoadAllTests(ctx)
	if err != nil {
		return nil, err
	}

	type agg struct {
		count int
		sum   float64
	}
	byTest := make(map[string]*agg, len(tests))
	for _, t := range tests {
		byTest[t.ID] = &agg{}
	}
	for _, r := range results {
		if a, ok := byTest[r.TestID]; ok {
			a.count++
			a.sum += r.ScorePercent
		}
	}

	stats = make([]model.TestStatistic, 0, len(tests))
	for _, t := range tests {
		a := byTest[t.ID]
		stat := model.TestStatistic{TestID: t.ID, Title: t.Title}
		if a.count > 0 {
			stat.Attempts = a.count
			stat.AverageScore = util.Round2(a.sum / float64(a.count))
		}
		stats = append(stats, stat)
	}
	return stats, nil
}
