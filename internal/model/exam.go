package model

import (
	"time"

	"github.com/google/uuid"
)

// Exam represents an authored exam.
type Exam struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Subject   string     `json:"subject"`
	AuthorID  string     `json:"author_id"`
	Questions []Question `json:"questions" validate:"min=1,dive"`
	CreatedAt time.Time  `json:"created_at"`
}

// TotalMarks is the sum of all question marks.
func (e *Exam) TotalMarks() int {
	total := 0
	for _, q := range e.Questions {
		total += q.Mark
	}
	return total
}
