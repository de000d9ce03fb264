package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-console/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubjectService(seed ...string) *SubjectService {
	return NewSubjectService(repository.NewSubjectRepository(seed), zerolog.Nop())
}

func TestSubjectSelectClamps(t *testing.T) {
	svc := newSubjectService("Intro to CS", "Discrete Math")

	tests := []struct {
		input string
		want  string
	}{
		{"1", "Intro to CS"},
		{"2", "Discrete Math"},
		{" 2 ", "Discrete Math"},
		{"0", "Intro to CS"},
		{"-3", "Intro to CS"},
		{"99", "Discrete Math"},
		{"abc", "Intro to CS"},
		{"", "Intro to CS"},
	}
	for _, tt := range tests {
		got, err := svc.Select(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestSubjectSelectSingleSubject(t *testing.T) {
	svc := newSubjectService("Only")

	got, err := svc.Select("5")
	require.NoError(t, err)
	assert.Equal(t, "Only", got)
}

func TestSubjectSelectEmpty(t *testing.T) {
	_, err := newSubjectService().Select("1")
	assert.ErrorIs(t, err, ErrNoSubjects)
}

func TestSubjectCreateAppends(t *testing.T) {
	svc := newSubjectService("Intro to CS")

	assert.Equal(t, "Physics", svc.Create("Physics"))
	assert.Equal(t, []string{"Intro to CS", "Physics"}, svc.GetAll())
	assert.Equal(t, 2, svc.Count())
}

func TestSubjectWantsNew(t *testing.T) {
	svc := newSubjectService()

	assert.True(t, svc.WantsNew("N"))
	assert.True(t, svc.WantsNew(" n "))
	assert.False(t, svc.WantsNew("No"))
	assert.False(t, svc.WantsNew("1"))
}
