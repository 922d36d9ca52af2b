package service

import (
	"context"
	"errors"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsAveragesPerTest(t *testing.T) {
	geo := buildTest("Geo", 1, 1)
	math := buildTest("Math", 1, 1)
	store := &memStore{tests: []*model.Test{geo, math}}
	svc := NewStatisticsService(store)
	ctx := context.Background()

	_, err := svc.RecordResult(ctx, geo.ID, geo.Title, 80, "Ann")
	require.NoError(t, err)
	_, err = svc.RecordResult(ctx, geo.ID, geo.Title, 100, "Bo")
	require.NoError(t, err)
	_, err = svc.RecordResult(ctx, "deleted-test", "Old", 10, "Cy")
	require.NoError(t, err)

	stats, err := svc.GetTestStatistics(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, model.TestStatistic{TestID: geo.ID, Title: "Geo", Attempts: 2, AverageScore: 90}, stats[0])
	assert.Equal(t, model.TestStatistic{TestID: math.ID, Title: "Math", Attempts: 0, AverageScore: 0}, stats[1])
}

func TestStatisticsRoundsAverage(t *testing.T) {
	geo := buildTest("Geo", 1, 1)
	store := &memStore{
		tests: []*model.Test{geo},
		results: []*model.TestResult{
			model.NewTestResult(geo.ID, "Geo", 100, ""),
			model.NewTestResult(geo.ID, "Geo", 0, ""),
			model.NewTestResult(geo.ID, "Geo", 0, ""),
		},
	}

	stats, err := NewStatisticsService(store).GetTestStatistics(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 33.33, stats[0].AverageScore)
	assert.Equal(t, 3, stats[0].Attempts)
}

func TestStatisticsUsesCurrentTitle(t *testing.T) {
	geo := buildTest("Geography", 1, 1)
	store := &memStore{
		tests:   []*model.Test{geo},
		results: []*model.TestResult{model.NewTestResult(geo.ID, "Geo (old title)", 70, "")},
	}

	stats, err := NewStatisticsService(store).GetTestStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Geography", stats[0].Title)
}

func TestStatisticsEmptyStore(t *testing.T) {
	stats, err := NewStatisticsService(&memStore{}).GetTestStatistics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestRecordResultStoresAsGiven(t *testing.T) {
	store := &memStore{}
	svc := NewStatisticsService(store)

	r, err := svc.RecordResult(context.Background(), "t1", "Title", 66.67, "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultStudentName, r.StudentName)

	require.Len(t, store.results, 1)
	assert.Equal(t, "t1", store.results[0].TestID)
	assert.Equal(t, "Title", store.results[0].TestTitle)
	assert.Equal(t, 66.67, store.results[0].ScorePercent)
}

func TestRecordResultPropagatesStoreError(t *testing.T) {
	store := &memStore{appendErr: &util.DataAccessError{Op: "save statistics", Err: errors.New("disk full")}}

	_, err := NewStatisticsService(store).RecordResult(context.Background(), "t1", "T", 50, "Ann")
	assert.ErrorIs(t, err, util.ErrDataAccess)
}
