package models

import "time"

// LoginAttempt is the sole persisted entity: one captured credential
// submission. The plaintext Password is stored deliberately alongside its
// bcrypt hash — this service is a capture/audit log, not a credential vault,
// and it replicates the source system's observable behavior. Both secret
// columns are excluded from every read path at the SQL level.
type LoginAttempt struct {
	ID             string    `db:"id"`
	Email          string    `db:"email"`
	Password       string    `db:"password"`
	HashedPassword string    `db:"hashed_password"`
	Timestamp      time.Time `db:"attempt_time"`
	UserAgent      string    `db:"user_agent"`
	IP             string    `db:"ip_address"`
	Success        bool      `db:"success"`
}

// RedactedLoginAttempt is the only shape the list endpoint emits. It has no
// password fields by construction, not by omission at serialization time.
type RedactedLoginAttempt struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"userAgent,omitempty"`
	IP        string    `json:"ip,omitempty"`
	Success   bool      `json:"success"`
}

// Redacted returns the attempt stripped to its externally visible fields.
func (a *LoginAttempt) Redacted() RedactedLoginAttempt {
	return RedactedLoginAttempt{
		ID:        a.ID,
		Email:     a.Email,
		Timestamp: a.Timestamp,
		UserAgent: a.UserAgent,
		IP:        a.IP,
		Success:   a.Success,
	}
}
