package types

import (
	"github.com/shopspring/decimal"
)

// Amount is a monetary value encoded as a bare JSON number
type Amount struct {
	decimal.Decimal
}

// NewAmount returns an Amount for a whole number of units
func NewAmount(units int64) Amount {
	return Amount{decimal.NewFromInt(units)}
}

// ParseAmount parses a decimal string such as "12.50"
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// MarshalJSON writes the amount without quotes, the way the provider sends it
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and bare numbers
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}
