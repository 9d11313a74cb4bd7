package entities

import "time"

// Project groups quotes under one initiative. Projects cannot be deleted
// while referenced by any quote.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}
