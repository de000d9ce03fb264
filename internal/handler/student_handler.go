package handler

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-console/internal/console"
	"github.com/stemsi/exstem-console/internal/grading"
	"github.com/stemsi/exstem-console/internal/model"
	"github.com/stemsi/exstem-console/internal/repository"
	"github.com/stemsi/exstem-console/internal/response"
	"github.com/stemsi/exstem-console/internal/service"
)

// StudentHandler runs the exam-taking flow against the last authored exam.
type StudentHandler struct {
	p              *console.Prompter
	examService    *service.ExamService
	gradingService *service.GradingService
	log            zerolog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(p *console.Prompter, examService *service.ExamService, gradingService *service.GradingService, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		p:              p,
		examService:    examService,
		gradingService: gradingService,
		log:            log.With().Str("component", "student_handler").Logger(),
	}
}

// Run asks who is taking the exam and grades their answers. Without an exam
// it only reports that none is available.
func (h *StudentHandler) Run() error {
	exam, err := h.examService.LastExam()
	if errors.Is(err, repository.ErrNoExam) {
		h.p.Println()
		h.p.Fail(response.ErrExamNotAvailable)
		return nil
	}
	if err != nil {
		return err
	}

	h.p.Println("\n--- Student Mode ---")
	id, err := h.p.Line("Student ID: ")
	if err != nil {
		return err
	}
	name, err := h.p.Line("Student Name: ")
	if err != nil {
		return err
	}

	student := model.Student{Person: model.Person{ID: id, Name: name, Faculty: exam.Subject}}

	_, err = h.TakeExam(exam, student)
	return err
}

// TakeExam presents every question of exam in order and returns the graded submission.
func (h *StudentHandler) TakeExam(exam *model.Exam, student model.Student) (*model.Submission, error) {
	h.p.Printf("\nStarting Exam: %s  |  Subject: %s\n", exam.Title, exam.Subject)
	h.p.Printf("Student: %s (%s)\n\n", student.Name, student.ID)

	sub := h.gradingService.Start(exam, student)
	h.log.Debug().
		Str("exam_id", exam.ID.String()).
		Str("submission_id", sub.ID.String()).
		Str("student_id", student.ID).
		Msg("Exam started")

	for i, q := range exam.Questions {
		h.p.Printf("Q%d [%s]  (%d mark): %s\n", i+1, q.Difficulty, q.Mark, q.Text)

		answer, err := h.askAnswer(q)
		if err != nil {
			return nil, err
		}
		h.gradingService.Answer(sub, q, answer)

		h.p.Println()
	}

	h.gradingService.Finish(sub)
	h.p.Printf("Submitted. Final Score: %d/%d\n\n", sub.Score, sub.TotalMarks)
	return sub, nil
}

func (h *StudentHandler) askAnswer(q model.Question) (string, error) {
	switch q.Type {
	case model.QuestionTypeTrueFalse:
		v, err := h.p.TrueFalse("Your answer (T/F)")
		if err != nil {
			return "", err
		}
		return grading.TrueFalseKey(v), nil

	case model.QuestionTypeSingleChoice:
		printOptions(h.p, q.Options)
		return h.p.Label("Choose one label (A, B, C, ...)")

	case model.QuestionTypeMultipleChoice:
		printOptions(h.p, q.Options)
		s, err := h.p.Text("Choose labels without spaces (e.g., AC)")
		if err != nil {
			return "", err
		}
		return strings.ToUpper(strings.TrimSpace(s)), nil

	default:
		return h.p.Text("Your text answer")
	}
}

func printOptions(p *console.Prompter, options []string) {
	for i, opt := range options {
		p.Printf("  %s) %s\n", model.OptionLabel(i), opt)
	}
}
