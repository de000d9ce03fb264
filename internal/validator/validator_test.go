package validator

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stemsi/exstem-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestion() model.Question {
	return model.Question{
		ID:            1,
		Text:          "Capital of France?",
		Type:          model.QuestionTypeSingleChoice,
		Difficulty:    model.DifficultyEasy,
		Mark:          5,
		Options:       []string{"Paris", "London", "Berlin"},
		CorrectLabels: []string{"A"},
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validator.Error, got %v", err)
	return verr.Fields
}

func TestStructAcceptsValidQuestions(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(validQuestion()))

	tf := model.Question{Type: model.QuestionTypeTrueFalse, Difficulty: model.DifficultyHard, Mark: 1, CorrectText: "F"}
	assert.NoError(t, v.Struct(tf))

	fill := model.Question{Type: model.QuestionTypeFill, Difficulty: model.DifficultyIntermediate, Mark: 100, CorrectText: "photosynthesis"}
	assert.NoError(t, v.Struct(fill))

	mc := validQuestion()
	mc.Type = model.QuestionTypeMultipleChoice
	mc.CorrectLabels = []string{"A", "C"}
	assert.NoError(t, v.Struct(mc))
}

func TestStructRejectsMarkOutOfRange(t *testing.T) {
	v := New()

	q := validQuestion()
	q.Mark = 0
	fields := fieldsOf(t, v.Struct(q))
	assert.Contains(t, fields, "mark")

	q.Mark = 101
	fields = fieldsOf(t, v.Struct(q))
	assert.Contains(t, fields, "mark")
}

func TestStructRejectsUnknownTags(t *testing.T) {
	v := New()

	q := validQuestion()
	q.Type = "ESSAY"
	q.Difficulty = "Extreme"
	fields := fieldsOf(t, v.Struct(q))
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "difficulty")
}

func TestStructSingleChoiceNeedsExactlyOneLabel(t *testing.T) {
	v := New()

	q := validQuestion()
	q.CorrectLabels = []string{"A", "B"}
	fields := fieldsOf(t, v.Struct(q))
	assert.Equal(t, "correct_labels must contain exactly one label", fields["correct_labels"])

	q.CorrectLabels = nil
	fields = fieldsOf(t, v.Struct(q))
	assert.Equal(t, "correct_labels must contain exactly one label", fields["correct_labels"])
}

func TestStructMultipleChoiceNeedsALabel(t *testing.T) {
	v := New()

	q := validQuestion()
	q.Type = model.QuestionTypeMultipleChoice
	q.CorrectLabels = nil
	fields := fieldsOf(t, v.Struct(q))
	assert.Equal(t, "correct_labels must contain at least one label", fields["correct_labels"])
}

func TestStructChoiceOptionBounds(t *testing.T) {
	v := New()

	q := validQuestion()
	q.Options = []string{"only"}
	fields := fieldsOf(t, v.Struct(q))
	assert.Equal(t, "options must contain between 2 and 6 items", fields["options"])
}

func TestStructLabelOutsideOptions(t *testing.T) {
	v := New()

	q := validQuestion()
	q.CorrectLabels = []string{"D"}
	fields := fieldsOf(t, v.Struct(q))
	assert.Equal(t, "correct_labels must only name existing options", fields["correct_labels"])
}

func TestStructLabelsMustBeUppercaseLetters(t *testing.T) {
	v := New()

	q := validQuestion()
	q.CorrectLabels = []string{"a"}
	fields := fieldsOf(t, v.Struct(q))
	assert.Contains(t, fields, "correct_labels[0]")
}

func TestStructTrueFalseAnswer(t *testing.T) {
	v := New()

	q := model.Question{Type: model.QuestionTypeTrueFalse, Difficulty: model.DifficultyEasy, Mark: 1, CorrectText: "TRUE"}
	fields := fieldsOf(t, v.Struct(q))
	assert.Equal(t, "correct_text must be T or F", fields["correct_text"])

	q.CorrectText = "T"
	q.Options = []string{"x", "y"}
	fields = fieldsOf(t, v.Struct(q))
	assert.Equal(t, "options must be empty for this question type", fields["options"])
}

func TestStructFillNeedsText(t *testing.T) {
	v := New()

	q := model.Question{Type: model.QuestionTypeFill, Difficulty: model.DifficultyEasy, Mark: 1, CorrectText: "   "}
	fields := fieldsOf(t, v.Struct(q))
	assert.Contains(t, fields, "correct_text")
}

func TestStructExamNeedsQuestions(t *testing.T) {
	v := New()

	exam := &model.Exam{ID: uuid.New(), Title: "Midterm"}
	fields := fieldsOf(t, v.Struct(exam))
	assert.Contains(t, fields, "questions")

	bad := validQuestion()
	bad.Mark = 500
	exam.Questions = []model.Question{validQuestion(), bad}
	fields = fieldsOf(t, v.Struct(exam))
	assert.Contains(t, fields, "questions[1].mark")
}

func TestErrorMessageIsSorted(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "second", "a": "first"}}
	assert.Equal(t, "validation failed: a: first; b: second", err.Error())
}
