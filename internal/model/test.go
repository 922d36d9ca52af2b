package model

// Test is a named collection of questions with an advisory per-question time budget.
// swagger:model Test
type Test struct {
	ID              string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title           string      `gorm:"size:255;not null" json:"title"`
	TimePerQuestion int         `gorm:"default:60" json:"time_per_question"` // Seconds
	Position        int         `gorm:"default:0" json:"-"`
	Questions       []*Question `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Test) TableName() string {
	return "tests"
}

func NewTest(title string, timePerQuestion int) *Test {
	if timePerQuestion <= 0 {
		timePerQuestion = DefaultTimePerQuestion
	}
	return &Test{
		ID:              GenerateUUID(),
		Title:           title,
		TimePerQuestion: timePerQuestion,
		Questions:       []*Question{},
	}
}

func (t *Test) AddQuestion(q *Question) {
	t.Questions = append(t.Questions, q)
}

func (t *Test) FindQuestion(questionID string) (int, *Question) {
	for i, q := range t.Questions {
		if q.ID == questionID {
			return i, q
		}
	}
	return -1, nil
}

// Clone returns a deep copy sharing no questions or answers with t.
func (t *Test) Clone() *Test {
	c := *t
	c.Questions = make([]*Question, len(t.Questions))
	for i, q := range t.Questions {
		c.Questions[i] = q.Clone()
	}
	return &c
}
