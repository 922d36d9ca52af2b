package repository

import (
	"context"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/util"

	"gorm.io/gorm"
)

// GormRepository stores tests, questions, answers and results as rows.
// Order within each level is kept in the position column.
type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

func (r *GormRepository) LoadAllTests(ctx context.Context) ([]*model.Test, error) {
	var tests []*model.Test
	err := r.DB.WithContext(ctx).
		Preload("Questions", orderByPosition).
		Preload("Questions.Answers", orderByPosition).
		Order("position asc").
		Find(&tests).Error
	if err != nil {
		return nil, &util.DataAccessError{Op: "load tests", Err: err}
	}
	return compactTests(tests), nil
}

// SaveAllTests replaces every stored test in one transaction.
func (r *GormRepository) SaveAllTests(ctx context.Context, tests []*model.Test) error {
	var (
		testRows     = make([]*model.Test, 0, len(tests))
		questionRows []*model.Question
		answerRows   []*model.Answer
	)

	for i, t := range tests {
		row := *t
		row.Position = i
		row.Questions = nil
		testRows = append(testRows, &row)

		for j, q := range t.Questions {
			qRow := *q
			qRow.TestID = t.ID
			qRow.Position = j
			qRow.Answers = nil
			questionRows = append(questionRows, &qRow)

			for k, a := range q.Answers {
				aRow := *a
				aRow.QuestionID = q.ID
				aRow.Position = k
				answerRows = append(answerRows, &aRow)
			}
		}
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := all.Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := all.Delete(&model.Test{}).Error; err != nil {
			return err
		}

		if len(testRows) > 0 {
			if err := tx.Omit("Questions").Create(&testRows).Error; err != nil {
				return err
			}
		}
		if len(questionRows) > 0 {
			if err := tx.Omit("Answers").Create(&questionRows).Error; err != nil {
				return err
			}
		}
		if len(answerRows) > 0 {
			if err := tx.Create(&answerRows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &util.DataAccessError{Op: "save tests", Err: err}
	}
	return nil
}

func (r *GormRepository) LoadStatistics(ctx context.Context) ([]*model.TestResult, error) {
	var results []*model.TestResult
	if err := r.DB.WithContext(ctx).Order("id asc").Find(&results).Error; err != nil {
		return nil, &util.DataAccessError{Op: "load statistics", Err: err}
	}
	return results, nil
}

func (r *GormRepository) SaveStatistic(ctx context.Context, result *model.TestResult) error {
	row := *result
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return &util.DataAccessError{Op: "save statistic", Err: err}
	}
	return nil
}
