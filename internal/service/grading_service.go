package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-console/internal/grading"
	"github.com/stemsi/exstem-console/internal/model"
)

// GradingService scores a student's run through an exam. The score lives on
// the Submission; the exam itself is only read.
type GradingService struct {
	log zerolog.Logger
}

func NewGradingService(log zerolog.Logger) *GradingService {
	return &GradingService{
		log: log.With().Str("component", "grading_service").Logger(),
	}
}

// Start opens a submission for student against exam.
func (s *GradingService) Start(exam *model.Exam, student model.Student) *model.Submission {
	return &model.Submission{
		ID:         uuid.New(),
		ExamID:     exam.ID,
		Student:    student,
		Answers:    make([]model.Answer, 0, len(exam.Questions)),
		TotalMarks: exam.TotalMarks(),
	}
}

// Answer grades response to q and adds any awarded marks to sub.
func (s *GradingService) Answer(sub *model.Submission, q model.Question, response string) model.Answer {
	awarded, correct := grading.Award(q, response)

	ans := model.Answer{
		QuestionID: q.ID,
		Response:   response,
		Correct:    correct,
		Awarded:    awarded,
	}
	sub.Answers = append(sub.Answers, ans)
	sub.Score += awarded

	s.log.Debug().
		Str("submission_id", sub.ID.String()).
		Int("question_id", q.ID).
		Bool("correct", correct).
		Msg("Answer graded")
	return ans
}

// Finish stamps the submission time.
func (s *GradingService) Finish(sub *model.Submission) {
	sub.SubmittedAt = time.Now()

	s.log.Info().
		Str("submission_id", sub.ID.String()).
		Str("exam_id", sub.ExamID.String()).
		Str("student_id", sub.Student.ID).
		Int("score", sub.Score).
		Int("total_marks", sub.TotalMarks).
		Msg("Submission graded")
}
