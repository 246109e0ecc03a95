package domain

import (
	"database/sql/driver" // Valuer/Scanner interfaces

	"github.com/shopspring/decimal" // Arbitrary-precision fixed-point decimals
)

// Amount is a monetary value kept with 2 decimal places. It marshals to
// JSON as a fixed-point string ("160.00", "-500.00") and persists in the
// same representation.
type Amount struct {
	decimal.Decimal
}

// NewAmount builds an Amount from a float64 (convenient for fixtures)
func NewAmount(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// Abs returns the unsigned magnitude
func (a Amount) Abs() Amount {
	return Amount{a.Decimal.Abs()}
}

// Neg returns the value with its sign flipped
func (a Amount) Neg() Amount {
	return Amount{a.Decimal.Neg()}
}

// MarshalJSON renders the amount with exactly two decimal digits
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts both bare numbers and quoted strings
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

// Value stores the normalized 2-decimal representation in the column
func (a Amount) Value() (driver.Value, error) {
	return a.StringFixed(2), nil
}

// Scan reads the column value back into the decimal
func (a *Amount) Scan(v any) error {
	var d decimal.Decimal
	if err := d.Scan(v); err != nil {
		return err
	}
	a.Decimal = d
	return nil
}
