package entity

import "time"

type SupportThread struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SupportMessage struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"threadId"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
