package repository

import (
	"errors"

	"github.com/stemsi/exstem-console/internal/model"
)

// ErrNoExam is returned when no exam has been authored yet.
var ErrNoExam = errors.New("no exam available")

// ExamRepository holds the single most recently authored exam. Storing a new
// exam replaces the previous one.
type ExamRepository struct {
	last *model.Exam
}

func NewExamRepository() *ExamRepository {
	return &ExamRepository{}
}

// SetLast makes exam the one students take next.
func (r *ExamRepository) SetLast(exam *model.Exam) {
	r.last = exam
}

// GetLast returns the current exam or ErrNoExam.
func (r *ExamRepository) GetLast() (*model.Exam, error) {
	if r.last == nil {
		return nil, ErrNoExam
	}
	return r.last, nil
}
