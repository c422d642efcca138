package tutor

import (
	tutorRepo "mentu/database/repository/tutor"
	"mentu/models"
)

// DefaultTutorService serves directory queries from the tutor repository.
type DefaultTutorService struct {
	Repo tutorRepo.TutorRepository
}

func (s *DefaultTutorService) List(query models.TutorQuery) ([]models.Tutor, error) {
	tutors, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return Filter(tutors, query), nil
}

func (s *DefaultTutorService) Get(id string) (*models.Tutor, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultTutorService) Subjects() ([]string, error) {
	tutors, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return Subjects(tutors), nil
}
