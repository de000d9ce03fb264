package repository

// QuestionRepository hands out question ids. Ids start at 1, only grow, and
// are shared by every exam authored in the process.
type QuestionRepository struct {
	nextID int
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{nextID: 1}
}

// NextID returns the next unused question id.
func (r *QuestionRepository) NextID() int {
	id := r.nextID
	r.nextID++
	return id
}
