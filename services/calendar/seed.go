package calendar

import "mentu/models"

// SeedEvents returns the starter events a fresh session's calendar shows.
func SeedEvents() []models.CalendarEvent {
	return []models.CalendarEvent{
		{
			ID:          "1",
			Title:       "Mathematics Quiz",
			Type:        models.EventExam,
			Subject:     "Calculus I",
			Date:        "2025-01-22",
			Time:        "10:00",
			Priority:    models.PriorityHigh,
			Description: "Chapter 3-4 derivatives and limits",
		},
		{
			ID:          "2",
			Title:       "History Essay",
			Type:        models.EventAssignment,
			Subject:     "World History",
			Date:        "2025-01-24",
			Time:        "23:59",
			Priority:    models.PriorityMedium,
			Description: "Write 1500 words on Industrial Revolution",
		},
		{
			ID:          "3",
			Title:       "Physics Lab Report",
			Type:        models.EventAssignment,
			Subject:     "Physics II",
			Date:        "2025-01-25",
			Time:        "14:00",
			Priority:    models.PriorityHigh,
			Description: "Submit lab report on electromagnetic induction",
		},
		{
			ID:          "4",
			Title:       "Group Project Presentation",
			Type:        models.EventProject,
			Subject:     "Computer Science",
			Date:        "2025-01-28",
			Time:        "09:00",
			Priority:    models.PriorityHigh,
			Description: "Present web application project to class",
		},
	}
}
