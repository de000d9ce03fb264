package model

import (
	"time"

	"github.com/google/uuid"
)

// Answer is a student's graded response to one question.
type Answer struct {
	QuestionID int    `json:"question_id"`
	Response   string `json:"response"`
	Correct    bool   `json:"correct"`
	Awarded    int    `json:"awarded"`
}

// Submission accumulates a student's score for one run through an exam.
type Submission struct {
	ID          uuid.UUID `json:"id"`
	ExamID      uuid.UUID `json:"exam_id"`
	Student     Student   `json:"student"`
	Answers     []Answer  `json:"answers"`
	Score       int       `json:"score"`
	TotalMarks  int       `json:"total_marks"`
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
}
