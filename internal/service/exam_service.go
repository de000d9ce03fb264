package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-console/internal/model"
	"github.com/stemsi/exstem-console/internal/repository"
	"github.com/stemsi/exstem-console/internal/response"
	"github.com/stemsi/exstem-console/internal/validator"
)

// ExamService handles exam authoring and the last-exam slot.
type ExamService struct {
	examRepo     *repository.ExamRepository
	questionRepo *repository.QuestionRepository
	validate     *validator.Validator
	log          zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(
	examRepo *repository.ExamRepository,
	questionRepo *repository.QuestionRepository,
	validate *validator.Validator,
	log zerolog.Logger,
) *ExamService {
	return &ExamService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		validate:     validate,
		log:          log.With().Str("component", "exam_service").Logger(),
	}
}

// NewExam starts an empty exam authored by doctor on the doctor's subject.
func (s *ExamService) NewExam(doctor model.Doctor, title string) *model.Exam {
	return &model.Exam{
		ID:        uuid.New(),
		Title:     title,
		Subject:   doctor.Subject,
		AuthorID:  doctor.ID,
		CreatedAt: time.Now(),
	}
}

// ApplyLabelDefaults forces a usable correct-label set on choice questions:
// single-choice needs exactly one label and multiple-choice at least one. A
// question that does not qualify gets {"A"}. The returned code is the notice
// to show the author; ok is false when nothing changed.
func (s *ExamService) ApplyLabelDefaults(q *model.Question) (code response.ErrCode, ok bool) {
	switch q.Type {
	case model.QuestionTypeSingleChoice:
		if len(q.CorrectLabels) == 1 {
			return "", false
		}
		code = response.ErrSingleCorrectRequired
	case model.QuestionTypeMultipleChoice:
		if len(q.CorrectLabels) > 0 {
			return "", false
		}
		code = response.ErrAnyCorrectRequired
	default:
		return "", false
	}

	s.log.Warn().
		Str("type", string(q.Type)).
		Strs("labels", q.CorrectLabels).
		Msg("Correct labels defaulted")

	q.CorrectLabels = []string{model.DefaultLabel}
	return code, true
}

// AddQuestion validates q, assigns it the next question id and appends it to exam.
func (s *ExamService) AddQuestion(exam *model.Exam, q model.Question) (model.Question, error) {
	if err := s.validate.Struct(q); err != nil {
		return model.Question{}, fmt.Errorf("question %d: %w", len(exam.Questions)+1, err)
	}

	q.ID = s.questionRepo.NextID()
	exam.Questions = append(exam.Questions, q)
	return q, nil
}

// Publish validates exam and makes it the last exam, replacing any previous one.
func (s *ExamService) Publish(exam *model.Exam) error {
	if err := s.validate.Struct(exam); err != nil {
		return fmt.Errorf("publish exam: %w", err)
	}

	s.examRepo.SetLast(exam)

	s.log.Info().
		Str("exam_id", exam.ID.String()).
		Str("subject", exam.Subject).
		Int("questions", len(exam.Questions)).
		Int("total_marks", exam.TotalMarks()).
		Msg("Exam published")
	return nil
}

// LastExam returns the exam students take, or repository.ErrNoExam.
func (s *ExamService) LastExam() (*model.Exam, error) {
	return s.examRepo.GetLast()
}
