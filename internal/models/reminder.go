package models

// DueWordsSummary is one user's due-review backlog, consumed by the reminder job
type DueWordsSummary struct {
	UserID   int    `json:"userId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	DueCount int    `json:"dueCount"`
}
