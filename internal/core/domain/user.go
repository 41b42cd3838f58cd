package domain

import "time"

// User models a registered donor account. The IsAdmin flag gates every
// administrative operation (edits, deletes, entry-status toggles, the
// slaughter board). Registration always writes it false; there is no
// self-escalation path through the API.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
