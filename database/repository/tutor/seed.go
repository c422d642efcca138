package tutor

import "mentu/models"

// SeedTutors returns the launch tutor directory.
func SeedTutors() []models.Tutor {
	return []models.Tutor{
		{
			ID:           "1",
			Name:         "Maria Rodriguez",
			Avatar:       "/female-tutor.jpg",
			Subjects:     []string{"Mathematics", "Calculus", "Statistics"},
			Rating:       4.9,
			ReviewCount:  127,
			HourlyRate:   25,
			Location:     "Campus Library",
			Availability: []string{"Monday 2-6 PM", "Wednesday 1-5 PM", "Friday 3-7 PM"},
			SessionTypes: []models.SessionType{models.SessionOnline, models.SessionInPerson},
			Bio:          "Mathematics major with 3 years of tutoring experience. Specializes in making complex concepts easy to understand.",
			Experience:   "3 years",
			SocialHours:  45,
			Verified:     true,
		},
		{
			ID:           "2",
			Name:         "David Chen",
			Avatar:       "/male-tutor.jpg",
			Subjects:     []string{"Physics", "Chemistry", "Engineering"},
			Rating:       4.8,
			ReviewCount:  89,
			HourlyRate:   30,
			Location:     "Science Building",
			Availability: []string{"Tuesday 10-2 PM", "Thursday 11-3 PM", "Saturday 9-1 PM"},
			SessionTypes: []models.SessionType{models.SessionOnline, models.SessionInPerson},
			Bio:          "PhD student in Physics with extensive experience in STEM subjects. Patient and methodical teaching approach.",
			Experience:   "4 years",
			SocialHours:  62,
			Verified:     true,
		},
		{
			ID:           "3",
			Name:         "Sarah Johnson",
			Avatar:       "/diverse-female-student.png",
			Subjects:     []string{"English", "Literature", "Writing"},
			Rating:       4.7,
			ReviewCount:  156,
			HourlyRate:   20,
			Location:     "Online Only",
			Availability: []string{"Monday 6-9 PM", "Wednesday 7-10 PM", "Sunday 2-6 PM"},
			SessionTypes: []models.SessionType{models.SessionOnline},
			Bio:          "English Literature major passionate about helping students improve their writing and analytical skills.",
			Experience:   "2 years",
			SocialHours:  38,
			Verified:     true,
		},
		{
			ID:           "4",
			Name:         "Alex Thompson",
			Avatar:       "/male-student-studying.png",
			Subjects:     []string{"Computer Science", "Programming", "Web Development"},
			Rating:       4.9,
			ReviewCount:  203,
			HourlyRate:   35,
			Location:     "Computer Lab",
			Availability: []string{"Tuesday 3-7 PM", "Thursday 2-6 PM", "Saturday 10-2 PM"},
			SessionTypes: []models.SessionType{models.SessionOnline, models.SessionInPerson},
			Bio:          "Computer Science senior with internship experience at tech companies. Specializes in practical programming skills.",
			Experience:   "3 years",
			SocialHours:  71,
			Verified:     true,
		},
	}
}
