package model

import (
	"fmt"
	"time"
)

// Loan represents a loan taken on a given day.
type Loan struct {
	ID       int    `json:"id"`
	LoanType string `json:"loanType"`
	Date     Date   `json:"date"`
}

// NewLoan creates a Loan dated on the calendar day of date.
func NewLoan(id int, loanType string, date time.Time) *Loan {
	return &Loan{
		ID:       id,
		LoanType: loanType,
		Date:     DateOf(date),
	}
}

// String renders the loan for logs. A missing date prints as null.
func (l Loan) String() string {
	date := "null"
	if !l.Date.IsZero() {
		date = l.Date.String()
	}
	return fmt.Sprintf("Loan [id=%d, loanType=%s, date=%s]", l.ID, l.LoanType, date)
}
