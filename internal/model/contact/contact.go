package contact

import "time"

// Submission is the contact form payload.
type Submission struct {
	Fullname string `json:"fullname" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Subject  string `json:"subject" validate:"required,min=3"`
	Message  string `json:"message" validate:"required,min=10"`
}

// Record is a stored submission.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Submission
}
