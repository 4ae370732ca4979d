package models

import "time"

// NotificationStatus is the record produced once per scheduler cycle,
// replacing the previous one. SentAt is stamped the instant the send
// result arrived, not when the cycle started.
type NotificationStatus struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	TaskCount int       `json:"task_count"`
	SentAt    time.Time `json:"sent_at"`
	Error     string    `json:"error,omitempty"`
}

// Session is the identity blob the session layer stores per token. It is a
// gate, not a security boundary: holding a token means holding the identity.
type Session struct {
	Email     string    `json:"email"`
	LoggedIn  bool      `json:"logged_in"`
	CreatedAt time.Time `json:"created_at"`
}
