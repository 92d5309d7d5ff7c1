package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// Zero returns zero money in the given currency.
func Zero(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// MulInt multiplies the amount by an integer quantity, keeping the currency.
func (m Money) MulInt(qty int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(qty))),
		Currency: m.Currency,
	}
}

// Add sums two amounts. The currency of the receiver wins: the catalog
// operates in a single currency, so mismatches cannot occur in practice.
func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}
