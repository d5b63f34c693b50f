package models

import "time"

// Folder represents a study topic. Its flashcards are stored separately,
// keyed by the folder ID.
type Folder struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// CalendarDate truncates t to midnight UTC of the same calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
