package trade

import "github.com/shopspring/decimal"

// ValidateSale parses a sale quantity and checks it against the credit
// balance.
func ValidateSale(rawAmount string, balance decimal.Decimal) (decimal.Decimal, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.GreaterThan(balance) {
		return decimal.Zero, ErrInsufficient
	}
	return amount, nil
}

// EstimatedProceeds computes the cash value of a sale at the given price
// per ton.
func EstimatedProceeds(amount, pricePerTon decimal.Decimal) decimal.Decimal {
	return amount.Mul(pricePerTon).Round(2)
}
