package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Link struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Title     string          `json:"title,omitempty"`
	TargetURL string          `json:"targetUrl"`
	ShortURL  string          `json:"shortUrl"`
	Clicks    int64           `json:"clicks"`
	Earnings  decimal.Decimal `json:"earnings"`
	CreatedAt time.Time       `json:"createdAt"`
}

// DashboardStats are computed by the backend, EPC included.
type DashboardStats struct {
	Clicks   int64           `json:"clicks"`
	Earnings decimal.Decimal `json:"earnings"`
	EPC      decimal.Decimal `json:"epc"`
	Links    int64           `json:"links"`
	Balance  decimal.Decimal `json:"balance"`
}
