package response

// ErrCode is a typed code for every notice the console prints on invalid or
// missing input.
type ErrCode string

const (
	// ─── Input ─────────────────────────────────────────────────────────
	ErrInvalidNumber    ErrCode = "INVALID_NUMBER"
	ErrInvalidTrueFalse ErrCode = "INVALID_TRUE_FALSE"
	ErrInvalidChoice    ErrCode = "INVALID_CHOICE"
	ErrBlankAnswer      ErrCode = "BLANK_ANSWER"

	// ─── Authoring ─────────────────────────────────────────────────────
	ErrSingleCorrectRequired ErrCode = "SINGLE_CORRECT_REQUIRED"
	ErrAnyCorrectRequired    ErrCode = "ANY_CORRECT_REQUIRED"
	ErrExamNotCreated        ErrCode = "EXAM_NOT_CREATED"

	// ─── Taking ────────────────────────────────────────────────────────
	ErrExamNotAvailable ErrCode = "EXAM_NOT_AVAILABLE"

	// ─── Session ───────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Input ─────────────────────────────────────────────────────────
	case ErrInvalidNumber:
		return "Please enter a valid number."
	case ErrInvalidTrueFalse:
		return "Enter T or F."
	case ErrInvalidChoice:
		return "Invalid choice."
	case ErrBlankAnswer:
		return "An answer is required."

	// ─── Authoring ─────────────────────────────────────────────────────
	case ErrSingleCorrectRequired:
		return "Exactly one correct label required. Defaulting to A."
	case ErrAnyCorrectRequired:
		return "At least one correct label required. Defaulting to A."
	case ErrExamNotCreated:
		return "Exam could not be created."

	// ─── Taking ────────────────────────────────────────────────────────
	case ErrExamNotAvailable:
		return "No exam available yet. Ask a doctor to create one first."

	// ─── Session ───────────────────────────────────────────────────────
	case ErrInternal:
		return "Something went wrong. Returning to the menu."
	default:
		return "An unexpected error occurred."
	}
}
