package domain

import "time"

// AuthEventType classifies entries in the security audit trail.
type AuthEventType string

const (
	EventUserRegistered AuthEventType = "user_registered"
	EventLoginSucceeded AuthEventType = "login_succeeded"
	EventLoginFailed    AuthEventType = "login_failed"
)

// AuthEvent is an audit record of an authentication outcome. Events are
// written asynchronously and never influence the request they describe.
type AuthEvent struct {
	Type      AuthEventType
	Username  string
	UserID    string
	Timestamp time.Time
}
