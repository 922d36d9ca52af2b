package model

// Question is a prompt with an ordered set of answers.
// swagger:model Question
type Question struct {
	ID       string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TestID   string    `gorm:"index;type:varchar(36)" json:"-"`
	Position int       `gorm:"default:0" json:"-"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	Answers  []*Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers"`
}

func (Question) TableName() string {
	return "questions"
}

func NewQuestion(text string) *Question {
	return &Question{
		ID:      GenerateUUID(),
		Text:    text,
		Answers: []*Answer{},
	}
}

func (q *Question) AddAnswer(a *Answer) {
	q.Answers = append(q.Answers, a)
}

// HasCorrectAnswer reports whether at least one answer is marked correct.
func (q *Question) HasCorrectAnswer() bool {
	for _, a := range q.Answers {
		if a.IsCorrect {
			return true
		}
	}
	return false
}

func (q *Question) FindAnswer(answerID string) (int, *Answer) {
	for i, a := range q.Answers {
		if a.ID == answerID {
			return i, a
		}
	}
	return -1, nil
}

func (q *Question) Clone() *Question {
	c := *q
	c.Answers = make([]*Answer, len(q.Answers))
	for i, a := range q.Answers {
		c.Answers[i] = a.Clone()
	}
	return &c
}
