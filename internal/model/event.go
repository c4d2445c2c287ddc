package model

import "time"

// CalendarEvent is an approved draft with a schedule slot. The draft is an
// owned copy: later edits to the drafts collection never reach back into a
// scheduled event.
type CalendarEvent struct {
	ID            string    `json:"id"`
	Draft         Draft     `json:"draft"`
	ScheduledDate time.Time `json:"scheduled_date"`
	ApprovedAt    time.Time `json:"approved_at"`
}
