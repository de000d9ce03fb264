package grading

import "github.com/stemsi/exstem-console/internal/model"

// IsCorrect grades a single answer. There is no partial credit: a
// multiple-choice answer naming only some of the correct labels is wrong.
func IsCorrect(q model.Question, answer string) bool {
	switch q.Type {
	case model.QuestionTypeTrueFalse:
		if v, ok := ParseTrueFalse(answer); ok {
			answer = TrueFalseKey(v)
		}
		return SameText(answer, q.CorrectText)
	case model.QuestionTypeFill:
		return SameText(answer, q.CorrectText)
	case model.QuestionTypeSingleChoice:
		return len(q.CorrectLabels) == 1 && SameText(answer, q.CorrectLabels[0])
	case model.QuestionTypeMultipleChoice:
		return SameLabelSet(ParseLabels(answer), q.CorrectLabels)
	default:
		return false
	}
}

// Award returns the marks earned for answer: the full mark or zero.
func Award(q model.Question, answer string) (int, bool) {
	if IsCorrect(q, answer) {
		return q.Mark, true
	}
	return 0, false
}
