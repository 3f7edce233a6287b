package entity

import (
	"context"
	"time"
)

type Role string

const (
	RoleGuest      Role = ""
	RoleUser       Role = "user"
	RoleAdvertiser Role = "advertiser"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdvertiser, RoleAdmin:
		return true
	}
	return false
}

// Home is the landing page of the role's panel.
func (r Role) Home() string {
	switch r {
	case RoleUser:
		return "/panel"
	case RoleAdvertiser:
		return "/advertiser"
	case RoleAdmin:
		return "/secret-dashboard"
	}
	return "/"
}

type ctxKey string

const SessionCtxKey ctxKey = "session"

// Session binds a browser cookie to the backend API token of a logged-in user.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	APIToken  string    `json:"api_token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

const RequestIDCtxKey ctxKey = "request_id"

// RequestID returns the id assigned to the inbound request, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDCtxKey).(string)
	return id
}

// SessionFrom returns the caller's session, nil for guests.
func SessionFrom(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(SessionCtxKey).(*Session)
	return s
}
