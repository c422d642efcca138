package tutor

import "mentu/models"

// TutorRepository defines read access to the tutor directory. The directory
// is seed data in this scope; a persisted implementation can be swapped in
// behind this interface without touching the filter or booking logic.
type TutorRepository interface {
	// GetAll returns every tutor in directory order.
	GetAll() ([]models.Tutor, error)
	// GetByID returns the tutor with the given ID, or ErrTutorNotFound.
	GetByID(id string) (*models.Tutor, error)
}
