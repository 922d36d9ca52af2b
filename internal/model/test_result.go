package model

import (
	"encoding/json"
	"time"
)

// TestResult is the immutable record of one finished attempt.
// TestTitle is a copy taken when the result was recorded.
// swagger:model TestResult
type TestResult struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	TestTitle    string    `gorm:"size:255" json:"test_title"`
	TestID       string    `gorm:"index;type:varchar(36)" json:"test_id"`
	ScorePercent float64   `json:"score_percent"`
	StudentName  string    `gorm:"size:255" json:"student_name"`
	CreatedAt    time.Time `json:"-"`
}

func (TestResult) TableName() string {
	return "test_results"
}

func NewTestResult(testID, testTitle string, scorePercent float64, studentName string) *TestResult {
	if studentName == "" {
		studentName = DefaultStudentName
	}
	return &TestResult{
		TestTitle:    testTitle,
		TestID:       testID,
		ScorePercent: scorePercent,
		StudentName:  studentName,
	}
}

func (r *TestResult) UnmarshalJSON(data []byte) error {
	type alias TestResult
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.StudentName == "" {
		a.StudentName = DefaultStudentName
	}
	*r = TestResult(a)
	return nil
}

// TestStatistic aggregates the recorded results of one test.
type TestStatistic struct {
	TestID       string  `json:"testId"`
	Title        string  `json:"title"`
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
}
