package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/util"
	"quiz_engine_backend/pkg/logger"
	"sync"

	"go.uber.org/zap"
)

// FileRepository keeps tests and results in two JSON files.
type FileRepository struct {
	TestsPath string
	StatsPath string
	mu        sync.Mutex
}

func NewFileRepository(testsPath, statsPath string) *FileRepository {
	r := &FileRepository{TestsPath: testsPath, StatsPath: statsPath}
	r.ensureFileExists(testsPath)
	r.ensureFileExists(statsPath)
	return r
}

func (r *FileRepository) ensureFileExists(path string) {
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := writeFileAtomic(path, []byte("[]\n")); err != nil {
		logger.Log.Error("Failed to create data file", zap.String("path", path), zap.Error(err))
	}
}

func (r *FileRepository) LoadAllTests(ctx context.Context) ([]*model.Test, error) {
	data, err := os.ReadFile(r.TestsPath)
	if err != nil {
		logger.Log.Warn("Tests file unreadable, starting empty", zap.String("path", r.TestsPath), zap.Error(err))
		return []*model.Test{}, nil
	}
	tests, err := decodeTests(data)
	if err != nil {
		logger.Log.Warn("Tests file corrupt, starting empty", zap.String("path", r.TestsPath), zap.Error(err))
		return []*model.Test{}, nil
	}
	return tests, nil
}

func (r *FileRepository) SaveAllTests(ctx context.Context, tests []*model.Test) error {
	data, err := encodeJSON(tests)
	if err != nil {
		return &util.DataAccessError{Op: "encode tests", Path: r.TestsPath, Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeFileAtomic(r.TestsPath, data); err != nil {
		logger.Log.Error("Failed to save tests", zap.String("path", r.TestsPath), zap.Error(err))
		return &util.DataAccessError{Op: "save tests", Path: r.TestsPath, Err: err}
	}
	return nil
}

func (r *FileRepository) LoadStatistics(ctx context.Context) ([]*model.TestResult, error) {
	results, err := r.readStatistics()
	if err != nil {
		logger.Log.Warn("Statistics file unreadable, treating as empty", zap.String("path", r.StatsPath), zap.Error(err))
		return []*model.TestResult{}, nil
	}
	return results, nil
}

// readStatistics treats a missing or corrupt log as empty and fails on any
// other read error, so an append never overwrites a log it could not read.
func (r *FileRepository) readStatistics() ([]*model.TestResult, error) {
	data, err := os.ReadFile(r.StatsPath)
	if errors.Is(err, os.ErrNotExist) {
		return []*model.TestResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	results, err := decodeResults(data)
	if err != nil {
		logger.Log.Warn("Statistics file corrupt, treating as empty", zap.String("path", r.StatsPath), zap.Error(err))
		return []*model.TestResult{}, nil
	}
	return results, nil
}

// SaveStatistic appends result by rewriting the whole log.
func (r *FileRepository) SaveStatistic(ctx context.Context, result *model.TestResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	results, err := r.readStatistics()
	if err != nil {
		logger.Log.Error("Failed to read statistics before append", zap.String("path", r.StatsPath), zap.Error(err))
		return &util.DataAccessError{Op: "load statistics", Path: r.StatsPath, Err: err}
	}

	data, err := encodeJSON(append(results, result))
	if err != nil {
		return &util.DataAccessError{Op: "encode statistics", Path: r.StatsPath, Err: err}
	}

	if err := writeFileAtomic(r.StatsPath, data); err != nil {
		logger.Log.Error("Failed to save statistics", zap.String("path", r.StatsPath), zap.Error(err))
		return &util.DataAccessError{Op: "save statistics", Path: r.StatsPath, Err: err}
	}
	return nil
}

// writeFileAtomic writes through a temp file in the same directory and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
