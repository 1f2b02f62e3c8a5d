package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Expense categories understood by the backend.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
	CategoryUtilities     = "utilities"
	CategoryShopping      = "shopping"
	CategoryOther         = "other"
)

type Expense struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	PaidBy      string    `json:"paid_by"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	// SplitData is the server-side encoding of the splits, passed through.
	SplitData   []byte    `json:"split_data,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PaidByUser  *User     `json:"paid_by_user,omitempty"`
}

type ExpenseSplit struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// Splits decodes SplitData. An expense without split data has no splits.
func (e *Expense) Splits() ([]ExpenseSplit, error) {
	if len(e.SplitData) == 0 {
		return nil, nil
	}
	var splits []ExpenseSplit
	if err := json.Unmarshal(e.SplitData, &splits); err != nil {
		return nil, fmt.Errorf("decode split data: %w", err)
	}
	return splits, nil
}

// CreateExpenseRequest is the body of POST /expenses.
type CreateExpenseRequest struct {
	GroupID     string         `json:"group_id"`
	Amount      float64        `json:"amount"`
	Category    string         `json:"category"`
	Description string         `json:"description,omitempty"`
	Date        string         `json:"date,omitempty"`
	Splits      []ExpenseSplit `json:"splits"`
}

// UpdateExpenseRequest is the body of PUT /expenses/{id}.
type UpdateExpenseRequest struct {
	Amount      float64        `json:"amount"`
	Category    string         `json:"category"`
	Description string         `json:"description,omitempty"`
	Splits      []ExpenseSplit `json:"splits"`
}

// VoiceExpenseResult is returned by POST /expenses/voice.
type VoiceExpenseResult struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	Expense     Expense `json:"expense"`
	Transcribed string  `json:"transcribed"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
