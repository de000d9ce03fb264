package model

// Person holds the identity fields shared by every role.
type Person struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Faculty string `json:"faculty"`
}

// Doctor authors exams for a subject.
type Doctor struct {
	Person
	Subject string `json:"subject"`
}

// Student takes the last created exam.
type Student struct {
	Person
}
