package models

import "time"

// Balance is a member's net position in a group: positive means the member
// is owed money, negative means the member owes.
type Balance struct {
	UserID string  `json:"user_id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// SettlementTransaction is one suggested payment that clears balances.
type SettlementTransaction struct {
	From     string  `json:"from"`
	FromName string  `json:"from_name"`
	To       string  `json:"to"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
}

type BalanceReport struct {
	Balances    []Balance               `json:"balances"`
	Settlements []SettlementTransaction `json:"settlements"`
}

type SettlementSuggestions struct {
	Settlements []SettlementTransaction `json:"settlements"`
}

// Settlement is a recorded payment between two members.
type Settlement struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	FromUser  string    `json:"from_user"`
	ToUser    string    `json:"to_user"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSettlementRequest struct {
	GroupID  string  `json:"group_id"`
	FromUser string  `json:"from_user"`
	ToUser   string  `json:"to_user"`
	Amount   float64 `json:"amount"`
}
