package model

// QuestionType tags how a question is answered and graded.
type QuestionType string

const (
	QuestionTypeTrueFalse      QuestionType = "TF"
	QuestionTypeSingleChoice   QuestionType = "SC"
	QuestionTypeMultipleChoice QuestionType = "MC"
	QuestionTypeFill           QuestionType = "Fill"
)

// IsChoice reports whether answers are picked from labelled options.
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultipleChoice
}

// Difficulty is shown to students next to each question.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "Easy"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyHard         Difficulty = "Hard"
)

const (
	// MinOptions and MaxOptions bound the option count of choice questions.
	MinOptions = 2
	MaxOptions = 6

	MinMark = 1
	MaxMark = 100

	// DefaultLabel replaces a missing or ambiguous correct-label selection.
	DefaultLabel = "A"
)

// Question represents a single exam question.
//
// Choice questions keep their options in order; the option at index i is
// labelled OptionLabel(i). True/false questions store "T" or "F" in
// CorrectText, fill-in questions store the expected free text.
type Question struct {
	ID            int          `json:"id"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type" validate:"oneof=TF SC MC Fill"`
	Difficulty    Difficulty   `json:"difficulty" validate:"oneof=Easy Intermediate Hard"`
	Mark          int          `json:"mark" validate:"min=1,max=100"`
	Options       []string     `json:"options" validate:"max=6"`
	CorrectLabels []string     `json:"correct_labels" validate:"dive,len=1,uppercase"`
	CorrectText   string       `json:"correct_text,omitempty"`
}

// OptionLabel returns the label of the option at position i: "A" for 0, "B" for 1, ...
func OptionLabel(i int) string {
	return string(rune('A' + i))
}
