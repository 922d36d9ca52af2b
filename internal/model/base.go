package model

import (
	"github.com/google/uuid"
)

// DefaultStudentName is recorded when a student does not give a name.
const DefaultStudentName = "Anonymous"

// DefaultTimePerQuestion is the advisory per-question time budget in seconds.
const DefaultTimePerQuestion = 60

func GenerateUUID() string {
	return uuid.New().String()
}
