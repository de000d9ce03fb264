package validator

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/stemsi/exstem-console/internal/model"
)

const (
	tagOneCorrect  = "one_correct"
	tagAnyCorrect  = "any_correct"
	tagOptionCount = "option_count"
	tagLabelRange  = "label_range"
	tagNoOptions   = "no_options"
	tagTrueFalse   = "true_false"
	tagRequired    = "required"
)

var ruleMessages = map[string]string{
	tagOneCorrect:  "{0} must contain exactly one label",
	tagAnyCorrect:  "{0} must contain at least one label",
	tagOptionCount: "{0} must contain between 2 and 6 items",
	tagLabelRange:  "{0} must only name existing options",
	tagNoOptions:   "{0} must be empty for this question type",
	tagTrueFalse:   "{0} must be T or F",
}

func registerModelRules(v *govalidator.Validate, trans ut.Translator) {
	v.RegisterStructValidation(questionRules, model.Question{})

	for tag, msg := range ruleMessages {
		tag, msg := tag, msg
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error {
				return t.Add(tag, msg, true)
			},
			func(t ut.Translator, fe govalidator.FieldError) string {
				s, _ := t.T(tag, fe.Field())
				return s
			},
		)
	}
}

// questionRules checks the invariants that depend on the question type.
func questionRules(sl govalidator.StructLevel) {
	q := sl.Current().Interface().(model.Question)

	switch q.Type {
	case model.QuestionTypeTrueFalse:
		if q.CorrectText != "T" && q.CorrectText != "F" {
			sl.ReportError(q.CorrectText, "correct_text", "CorrectText", tagTrueFalse, "")
		}
	case model.QuestionTypeFill:
		if strings.TrimSpace(q.CorrectText) == "" {
			sl.ReportError(q.CorrectText, "correct_text", "CorrectText", tagRequired, "")
		}
	case model.QuestionTypeSingleChoice:
		if len(q.CorrectLabels) != 1 {
			sl.ReportError(q.CorrectLabels, "correct_labels", "CorrectLabels", tagOneCorrect, "")
		}
	case model.QuestionTypeMultipleChoice:
		if len(q.CorrectLabels) == 0 {
			sl.ReportError(q.CorrectLabels, "correct_labels", "CorrectLabels", tagAnyCorrect, "")
		}
	}

	if !q.Type.IsChoice() {
		if len(q.Options) > 0 {
			sl.ReportError(q.Options, "options", "Options", tagNoOptions, "")
		}
		if len(q.CorrectLabels) > 0 {
			sl.ReportError(q.CorrectLabels, "correct_labels", "CorrectLabels", tagNoOptions, "")
		}
		return
	}

	if len(q.Options) < model.MinOptions || len(q.Options) > model.MaxOptions {
		sl.ReportError(q.Options, "options", "Options", tagOptionCount, "")
	}

	valid := make(map[string]bool, len(q.Options))
	for i := range q.Options {
		valid[model.OptionLabel(i)] = true
	}
	for _, label := range q.CorrectLabels {
		if !valid[label] {
			sl.ReportError(q.CorrectLabels, "correct_labels", "CorrectLabels", tagLabelRange, "")
			return
		}
	}
}
