package repository

// SubjectRepository is the append-only list of subjects known to the session.
type SubjectRepository struct {
	subjects []string
}

// NewSubjectRepository creates a repository seeded with the given subjects.
func NewSubjectRepository(seed []string) *SubjectRepository {
	return &SubjectRepository{subjects: append([]string(nil), seed...)}
}

// Create appends a subject and returns its 1-based position.
func (r *SubjectRepository) Create(name string) int {
	r.subjects = append(r.subjects, name)
	return len(r.subjects)
}

// GetAll returns the subjects in insertion order.
func (r *SubjectRepository) GetAll() []string {
	return append([]string(nil), r.subjects...)
}

func (r *SubjectRepository) Count() int {
	return len(r.subjects)
}
