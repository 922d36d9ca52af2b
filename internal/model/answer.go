package model

// Answer is one choice of a Question.
// swagger:model Answer
type Answer struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	QuestionID string `gorm:"index;type:varchar(36)" json:"-"`
	Position   int    `gorm:"default:0" json:"-"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"is_correct"`
}

func (Answer) TableName() string {
	return "answers"
}

func NewAnswer(text string, isCorrect bool) *Answer {
	return &Answer{
		ID:        GenerateUUID(),
		Text:      text,
		IsCorrect: isCorrect,
	}
}

func (a *Answer) Clone() *Answer {
	c := *a
	return &c
}
