package model

import "github.com/shopspring/decimal"

// Summary aggregates the amounts of a set of transactions.
type Summary struct {
	Count    int
	Incoming decimal.Decimal
	Outgoing decimal.Decimal // negative or zero
	Skipped  int             // amounts that did not parse as decimals
}

// Net returns Incoming + Outgoing.
func (s Summary) Net() decimal.Decimal {
	return s.Incoming.Add(s.Outgoing)
}

// Summarize totals txns by sign.
func Summarize(txns []Transaction) Summary {
	s := Summary{Incoming: decimal.Zero, Outgoing: decimal.Zero}
	for _, t := range txns {
		s.Count++
		v, err := t.Value()
		if err != nil {
			s.Skipped++
			continue
		}
		if v.IsNegative() {
			s.Outgoing = s.Outgoing.Add(v)
		} else {
			s.Incoming = s.Incoming.Add(v)
		}
	}
	return s
}
