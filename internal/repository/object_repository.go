package repository

import (
	"context"
	"errors"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/util"
	"quiz_engine_backend/pkg/logger"
	"quiz_engine_backend/pkg/storage"
	"sync"

	"go.uber.org/zap"
)

const jsonContentType = "application/json"

// ObjectRepository keeps the tests and results documents in object storage.
type ObjectRepository struct {
	Provider storage.Provider
	TestsKey string
	StatsKey string
	mu       sync.Mutex
}

func NewObjectRepository(provider storage.Provider) *ObjectRepository {
	return &ObjectRepository{
		Provider: provider,
		TestsKey: util.TestsObjectKey,
		StatsKey: util.StatsObjectKey,
	}
}

func (r *ObjectRepository) LoadAllTests(ctx context.Context) ([]*model.Test, error) {
	data, err := r.Provider.Download(ctx, r.TestsKey)
	if err != nil {
		r.warnLoad(r.TestsKey, err)
		return []*model.Test{}, nil
	}
	tests, err := decodeTests(data)
	if err != nil {
		r.warnLoad(r.TestsKey, err)
		return []*model.Test{}, nil
	}
	return tests, nil
}

func (r *ObjectRepository) SaveAllTests(ctx context.Context, tests []*model.Test) error {
	data, err := encodeJSON(tests)
	if err != nil {
		return &util.DataAccessError{Op: "encode tests", Path: r.TestsKey, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := storage.UploadBytes(ctx, r.Provider, r.TestsKey, data, jsonContentType); err != nil {
		logger.Log.Error("Failed to upload tests", zap.String("provider", r.Provider.Name()), zap.Error(err))
		return &util.DataAccessError{Op: "save tests", Path: r.TestsKey, Err: err}
	}
	return nil
}

func (r *ObjectRepository) LoadStatistics(ctx context.Context) ([]*model.TestResult, error) {
	results, err := r.readStatistics(ctx)
	if err != nil {
		r.warnLoad(r.StatsKey, err)
		return []*model.TestResult{}, nil
	}
	return results, nil
}

// readStatistics treats a missing or corrupt log as empty and fails on any
// other download error, so an append never overwrites a log it could not read.
func (r *ObjectRepository) readStatistics(ctx context.Context) ([]*model.TestResult, error) {
	data, err := r.Provider.Download(ctx, r.StatsKey)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return []*model.TestResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	results, err := decodeResults(data)
	if err != nil {
		r.warnLoad(r.StatsKey, err)
		return []*model.TestResult{}, nil
	}
	return results, nil
}

func (r *ObjectRepository) SaveStatistic(ctx context.Context, result *model.TestResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	results, err := r.readStatistics(ctx)
	if err != nil {
		logger.Log.Error("Failed to download statistics before append", zap.String("provider", r.Provider.Name()), zap.Error(err))
		return &util.DataAccessError{Op: "load statistics", Path: r.StatsKey, Err: err}
	}

	data, err := encodeJSON(append(results, result))
	if err != nil {
		return &util.DataAccessError{Op: "encode statistics", Path: r.StatsKey, Err: err}
	}

	if err := storage.UploadBytes(ctx, r.Provider, r.StatsKey, data, jsonContentType); err != nil {
		logger.Log.Error("Failed to upload statistics", zap.String("provider", r.Provider.Name()), zap.Error(err))
		return &util.DataAccessError{Op: "save statistics", Path: r.StatsKey, Err: err}
	}
	return nil
}

func (r *ObjectRepository) warnLoad(key string, err error) {
	if errors.Is(err, storage.ErrObjectNotFound) {
		logger.Log.Debug("Object missing, treating as empty", zap.String("key", key))
		return
	}
	logger.Log.Warn("Object unreadable, treating as empty",
		zap.String("provider", r.Provider.Name()),
		zap.String("key", key),
		zap.Error(err),
	)
}
