package booking

import (
	"strconv"

	"mentu/models"
)

// ComputeQuote prices a session: hourly rate times the booked fraction of an
// hour. Display carries the two-decimal currency rendering; the raw total is
// never persisted, only echoed.
func ComputeQuote(hourlyRate float64, durationMinutes int) models.BookingQuote {
	total := hourlyRate * (float64(durationMinutes) / 60)
	return models.BookingQuote{
		HourlyRate: hourlyRate,
		Duration:   durationMinutes,
		Total:      total,
		Display:    strconv.FormatFloat(total, 'f', 2, 64),
	}
}
