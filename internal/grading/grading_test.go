package grading

import (
	"testing"

	"github.com/stemsi/exstem-console/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSameText(t *testing.T) {
	assert.True(t, SameText("  Paris ", "paris"))
	assert.True(t, SameText("", "   "))
	assert.False(t, SameText("Paris", "London"))
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"AC", []string{"A", "C"}},
		{"ca", []string{"C", "A"}},
		{"ACA", []string{"A", "C"}},
		{" a, c ; b ", []string{"A", "C", "B"}},
		{"123", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLabels(tt.in), "input %q", tt.in)
	}
}

func TestSameLabelSet(t *testing.T) {
	correct := []string{"A", "C"}

	assert.True(t, SameLabelSet(ParseLabels("AC"), correct))
	assert.True(t, SameLabelSet(ParseLabels("CA"), correct))
	assert.True(t, SameLabelSet(ParseLabels("ACA"), correct))
	assert.False(t, SameLabelSet(ParseLabels("A"), correct))
	assert.False(t, SameLabelSet(ParseLabels("ACD"), correct))
	assert.False(t, SameLabelSet(ParseLabels("AB"), correct))
}

func TestIsCorrectTrueFalse(t *testing.T) {
	q := model.Question{Type: model.QuestionTypeTrueFalse, CorrectText: "T", Mark: 10}

	for _, ans := range []string{"t", "T", "TRUE", "true", " True "} {
		assert.True(t, IsCorrect(q, ans), "answer %q", ans)
	}
	assert.False(t, IsCorrect(q, "F"))
	assert.False(t, IsCorrect(q, "false"))
	assert.False(t, IsCorrect(q, "yes"))
}

func TestParseTrueFalse(t *testing.T) {
	for _, s := range []string{"t", "T", "true", " TRUE "} {
		v, ok := ParseTrueFalse(s)
		assert.True(t, ok, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"f", "F", "false", "False"} {
		v, ok := ParseTrueFalse(s)
		assert.True(t, ok, s)
		assert.False(t, v, s)
	}
	for _, s := range []string{"", "y", "tru", "1"} {
		_, ok := ParseTrueFalse(s)
		assert.False(t, ok, s)
	}
	assert.Equal(t, "T", TrueFalseKey(true))
	assert.Equal(t, "F", TrueFalseKey(false))
}

func TestIsCorrectSingleChoice(t *testing.T) {
	q := model.Question{
		Type:          model.QuestionTypeSingleChoice,
		Options:       []string{"Paris", "London", "Berlin"},
		CorrectLabels: []string{"B"},
		Mark:          3,
	}

	assert.True(t, IsCorrect(q, "b"))
	assert.True(t, IsCorrect(q, "B"))
	assert.False(t, IsCorrect(q, "C"))
	assert.False(t, IsCorrect(q, "A"))

	q.CorrectLabels = []string{"A", "B"}
	assert.False(t, IsCorrect(q, "B"), "ambiguous key never matches")
}

func TestIsCorrectMultipleChoice(t *testing.T) {
	q := model.Question{
		Type:          model.QuestionTypeMultipleChoice,
		Options:       []string{"2", "3", "4", "5"},
		CorrectLabels: []string{"A", "C"},
		Mark:          4,
	}

	assert.True(t, IsCorrect(q, "ca"))
	assert.True(t, IsCorrect(q, "AC"))
	assert.False(t, IsCorrect(q, "A"), "no partial credit")
}

func TestIsCorrectFill(t *testing.T) {
	q := model.Question{Type: model.QuestionTypeFill, CorrectText: "Photosynthesis"}

	assert.True(t, IsCorrect(q, "  photosynthesis "))
	assert.False(t, IsCorrect(q, "respiration"))
}

func TestIsCorrectUnknownType(t *testing.T) {
	assert.False(t, IsCorrect(model.Question{Type: "ESSAY", CorrectText: "x"}, "x"))
}

func TestAward(t *testing.T) {
	q := model.Question{Type: model.QuestionTypeFill, CorrectText: "go", Mark: 7}

	got, ok := Award(q, "Go")
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	got, ok = Award(q, "rust")
	assert.False(t, ok)
	assert.Zero(t, got)
}
