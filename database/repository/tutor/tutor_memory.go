package tutor

import (
	"errors"

	"mentu/models"
)

// ErrTutorNotFound is returned when no tutor matches the requested ID.
var ErrTutorNotFound = errors.New("tutor not found")

// MemoryTutorRepo serves the seeded tutor directory from memory.
type MemoryTutorRepo struct {
	tutors []models.Tutor
}

// NewMemoryTutorRepo returns a repository over the seed directory.
func NewMemoryTutorRepo() *MemoryTutorRepo {
	return &MemoryTutorRepo{tutors: SeedTutors()}
}

// NewMemoryTutorRepoWith returns a repository over the given tutors.
func NewMemoryTutorRepoWith(tutors []models.Tutor) *MemoryTutorRepo {
	return &MemoryTutorRepo{tutors: tutors}
}

func (r *MemoryTutorRepo) GetAll() ([]models.Tutor, error) {
	// Copy so callers can't mutate the directory through the returned slice.
	out := make([]models.Tutor, len(r.tutors))
	copy(out, r.tutors)
	return out, nil
}

func (r *MemoryTutorRepo) GetByID(id string) (*models.Tutor, error) {
	for i := range r.tutors {
		if r.tutors[i].ID == id {
			t := r.tutors[i]
			return &t, nil
		}
	}
	return nil, ErrTutorNotFound
}
