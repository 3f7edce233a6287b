package entity

import "github.com/shopspring/decimal"

type User struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    Role            `json:"role"`
	Balance decimal.Decimal `json:"balance"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
