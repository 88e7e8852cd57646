package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction is one statement row recovered from extracted PDF text.
// Fields are kept as the strings written to the CSV.
type Transaction struct {
	Date    string // ISO-8601 with numeric offset, e.g. 2024-01-05T14:30:00+07:00
	Title   string
	Amount  string // signed integer-like; "-" kept, "+" and "." stripped
	Comment string
}

// Fields returns the CSV fields in header order: date, title, amount, comment.
func (t Transaction) Fields() []string {
	return []string{t.Date, t.Title, t.Amount, t.Comment}
}

// Value parses Amount as a decimal.
func (t Transaction) Value() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(t.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", t.Amount, err)
	}
	return d, nil
}
