package models

// SessionType is the delivery mode of a tutoring session.
type SessionType string

const (
	SessionOnline   SessionType = "online"
	SessionInPerson SessionType = "in-person"
)

// Tutor is a discoverable tutor profile. Tutors are read-only seed data;
// there is no registration or update path in this scope.
type Tutor struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Avatar       string        `json:"avatar,omitempty"`
	Subjects     []string      `json:"subjects"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"reviewCount"`
	HourlyRate   float64       `json:"hourlyRate"`
	Location     string        `json:"location"`
	Availability []string      `json:"availability"`
	SessionTypes []SessionType `json:"sessionTypes"`
	Bio          string        `json:"bio"`
	Experience   string        `json:"experience"`
	SocialHours  int           `json:"socialHours"`
	Verified     bool          `json:"verified"`
}

// OffersSessionType reports whether the tutor supports the given delivery mode.
func (t Tutor) OffersSessionType(st SessionType) bool {
	for _, s := range t.SessionTypes {
		if s == st {
			return true
		}
	}
	return false
}

// HasSubject reports whether subject is in the tutor's subject list (exact match).
func (t Tutor) HasSubject(subject string) bool {
	for _, s := range t.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// TutorQuery holds the three tutor-directory filter criteria. Zero values
// (and the literal "all") act as wildcards.
type TutorQuery struct {
	Search      string `form:"search" json:"search"`
	Subject     string `form:"subject" json:"subject"`
	SessionType string `form:"sessionType" json:"sessionType"`
}
