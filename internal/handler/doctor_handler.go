package handler

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-console/internal/console"
	"github.com/stemsi/exstem-console/internal/grading"
	"github.com/stemsi/exstem-console/internal/model"
	"github.com/stemsi/exstem-console/internal/response"
	"github.com/stemsi/exstem-console/internal/service"
	"github.com/stemsi/exstem-console/internal/validator"
)

// MaxQuestions bounds how many questions one exam may hold.
const MaxQuestions = 200

var questionTypes = []model.QuestionType{
	model.QuestionTypeTrueFalse,
	model.QuestionTypeSingleChoice,
	model.QuestionTypeMultipleChoice,
	model.QuestionTypeFill,
}

// DoctorHandler runs the exam authoring flow. A finished exam becomes the last
// exam and is handed straight to the student flow.
type DoctorHandler struct {
	p              *console.Prompter
	subjectService *service.SubjectService
	examService    *service.ExamService
	student        *StudentHandler
	log            zerolog.Logger
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(
	p *console.Prompter,
	subjectService *service.SubjectService,
	examService *service.ExamService,
	student *StudentHandler,
	log zerolog.Logger,
) *DoctorHandler {
	return &DoctorHandler{
		p:              p,
		subjectService: subjectService,
		examService:    examService,
		student:        student,
		log:            log.With().Str("component", "doctor_handler").Logger(),
	}
}

// Run authors one exam, publishes it and switches to the student flow.
func (h *DoctorHandler) Run() error {
	h.p.Println("\n--- Doctor Mode ---")

	id, err := h.p.Line("Doctor ID: ")
	if err != nil {
		return err
	}
	name, err := h.p.Line("Doctor Name: ")
	if err != nil {
		return err
	}
	faculty, err := h.p.Line("Faculty: ")
	if err != nil {
		return err
	}

	subject, err := h.PickOrCreateSubject()
	if err != nil {
		return err
	}

	doctor := model.Doctor{
		Person:  model.Person{ID: id, Name: name, Faculty: faculty},
		Subject: subject,
	}

	title, err := h.p.Line("Exam Title: ")
	if err != nil {
		return err
	}
	exam := h.examService.NewExam(doctor, title)

	n, err := h.p.Int("How many questions? ", 1, MaxQuestions)
	if err != nil {
		return err
	}

	for i := 1; i <= n; i++ {
		q, err := h.buildQuestion(i)
		if err != nil {
			return err
		}
		if _, err := h.examService.AddQuestion(exam, q); err != nil {
			return h.reject(err)
		}
	}

	if err := h.examService.Publish(exam); err != nil {
		return h.reject(err)
	}
	h.p.Printf("\nExam CREATED: \"%s\" | Subject: %s | Total Marks: %d\n", exam.Title, exam.Subject, exam.TotalMarks())

	h.p.Println("\n--- Switch to Student Mode ---")
	return h.student.Run()
}

// PickOrCreateSubject lets the doctor choose a subject by number or add a new
// one. Numbers are never rejected; see SubjectService.Select.
func (h *DoctorHandler) PickOrCreateSubject() (string, error) {
	if h.subjectService.Count() == 0 {
		name, err := h.p.Text("No subjects yet. Enter a subject name to create")
		if err != nil {
			return "", err
		}
		return h.subjectService.Create(name), nil
	}

	h.p.Println("\nAvailable Subjects:")
	for i, s := range h.subjectService.GetAll() {
		h.p.Printf("%d) %s\n", i+1, s)
	}

	in, err := h.p.Line("Pick subject number or type N to create new: ")
	if err != nil {
		return "", err
	}

	if h.subjectService.WantsNew(in) {
		name, err := h.p.Text("New subject name")
		if err != nil {
			return "", err
		}
		return h.subjectService.Create(name), nil
	}

	return h.subjectService.Select(in)
}

func (h *DoctorHandler) buildQuestion(i int) (model.Question, error) {
	h.p.Printf("\nQuestion #%d\n", i)
	h.p.Println("Type: 1) True/False  2) Single Choice  3) Multiple Choice  4) Fill/Complete")

	t, err := h.p.Int("Choose type (1-4): ", 1, len(questionTypes))
	if err != nil {
		return model.Question{}, err
	}
	text, err := h.p.Text("Question text")
	if err != nil {
		return model.Question{}, err
	}
	difficulty, err := h.p.Difficulty()
	if err != nil {
		return model.Question{}, err
	}
	mark, err := h.p.Int("Mark for this question: ", model.MinMark, model.MaxMark)
	if err != nil {
		return model.Question{}, err
	}

	q := model.Question{
		Text:       text,
		Type:       questionTypes[t-1],
		Difficulty: difficulty,
		Mark:       mark,
	}

	switch q.Type {
	case model.QuestionTypeTrueFalse:
		v, err := h.p.TrueFalse("Correct answer (T/F)")
		if err != nil {
			return model.Question{}, err
		}
		q.CorrectText = grading.TrueFalseKey(v)

	case model.QuestionTypeSingleChoice, model.QuestionTypeMultipleChoice:
		if err := h.buildOptions(&q); err != nil {
			return model.Question{}, err
		}
		if code, ok := h.examService.ApplyLabelDefaults(&q); ok {
			h.p.Fail(code)
		}

	case model.QuestionTypeFill:
		q.CorrectText, err = h.p.RequiredText("Correct text")
		if err != nil {
			return model.Question{}, err
		}
	}

	return q, nil
}

// buildOptions collects the options of a choice question. Labels follow
// option order, so at most six options give labels A to F.
func (h *DoctorHandler) buildOptions(q *model.Question) error {
	count, err := h.p.Int("How many options? (2-6): ", model.MinOptions, model.MaxOptions)
	if err != nil {
		return err
	}

	q.Options = make([]string, 0, count)
	q.CorrectLabels = nil

	for i := 0; i < count; i++ {
		label := model.OptionLabel(i)

		text, err := h.p.Text("Option " + label)
		if err != nil {
			return err
		}
		q.Options = append(q.Options, text)

		correct, err := h.p.YesNo("Is " + label + " correct? (y/n)")
		if err != nil {
			return err
		}
		if correct {
			q.CorrectLabels = append(q.CorrectLabels, label)
		}
	}
	return nil
}

// reject reports an exam that failed validation and returns to the menu.
// Other errors are passed through.
func (h *DoctorHandler) reject(err error) error {
	var verr *validator.Error
	if !errors.As(err, &verr) {
		return err
	}

	h.log.Error().Err(err).Msg("Exam rejected")
	response.FailWithFields(h.p.Out(), response.ErrExamNotCreated, verr.Fields)
	return nil
}
