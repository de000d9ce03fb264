package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-console/internal/repository"
)

// ErrNoSubjects is returned by Select when there is nothing to pick from.
var ErrNoSubjects = errors.New("no subjects available")

type SubjectService struct {
	subjectRepo *repository.SubjectRepository
	log         zerolog.Logger
}

func NewSubjectService(subjectRepo *repository.SubjectRepository, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		log:         log.With().Str("component", "subject_service").Logger(),
	}
}

func (s *SubjectService) GetAll() []string {
	return s.subjectRepo.GetAll()
}

func (s *SubjectService) Count() int {
	return s.subjectRepo.Count()
}

// Create appends name to the subject list and returns it.
func (s *SubjectService) Create(name string) string {
	pos := s.subjectRepo.Create(name)
	s.log.Debug().Str("subject", name).Int("position", pos).Msg("Subject created")
	return name
}

// WantsNew reports whether input asks for a new subject ("N", any case).
func (s *SubjectService) WantsNew(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "N")
}

// Select resolves a 1-based subject number. Input is never rejected:
// non-numeric input picks the first subject and out-of-range numbers clamp to
// the nearest end of the list.
func (s *SubjectService) Select(input string) (string, error) {
	subjects := s.subjectRepo.GetAll()
	if len(subjects) == 0 {
		return "", ErrNoSubjects
	}

	idx, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		idx = 1
	}
	if idx < 1 {
		idx = 1
	}
	if idx > len(subjects) {
		idx = len(subjects)
	}
	return subjects[idx-1], nil
}
