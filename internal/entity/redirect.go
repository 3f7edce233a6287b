package entity

import "time"

// RedirectGrant is what the backend hands out for a verified visit.
type RedirectGrant struct {
	TargetURL string `json:"targetUrl"`
	Token     string `json:"token"`
}

type RedirectOutcome string

const (
	OutcomeIssued        RedirectOutcome = "issued"
	OutcomeCaptchaFailed RedirectOutcome = "captcha_failed"
	OutcomeNotFound      RedirectOutcome = "not_found"
	OutcomeError         RedirectOutcome = "error"
)

type RedirectAttempt struct {
	ID        int64           `json:"id"`
	Slug      string          `json:"slug"`
	IP        string          `json:"ip"`
	UserAgent string          `json:"user_agent"`
	Outcome   RedirectOutcome `json:"outcome"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type CaptchaVerdict struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score,omitempty"`
	Action     string   `json:"action,omitempty"`
	Hostname   string   `json:"hostname,omitempty"`
	ErrorCodes []string `json:"errorCodes,omitempty"`
}
