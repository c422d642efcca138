package tutor

import "mentu/models"

// TutorService exposes the tutor directory: listing with filters, lookup,
// and the subject list backing the filter UI.
type TutorService interface {
	List(query models.TutorQuery) ([]models.Tutor, error)
	Get(id string) (*models.Tutor, error)
	Subjects() ([]string, error)
}
