package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jerry-enebeli/ledgerlite/ledgererr"
)

// GenerateUUIDWithSuffix generates a UUID with a given module name as a prefix,
// e.g. "txn_1b4e28ba-2fa1-11d2-883f-0016d3cca427".
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}

// CheckPrecision rejects amounts that carry more decimal places than the
// ledger keeps, so every stored amount is a whole number of minor units.
func CheckPrecision(amount decimal.Decimal, precision int32) error {
	if !amount.Equal(amount.Truncate(precision)) {
		return ledgererr.New(ledgererr.ErrInvalidArgument,
			fmt.Sprintf("Amount must have at most %d decimal places!", precision), amount.String())
	}
	return nil
}

// ToMinorUnits converts an amount to an integer count of minor units.
func ToMinorUnits(amount decimal.Decimal, precision int32) int64 {
	return amount.Shift(precision).IntPart()
}

// FormatAmount renders amount with exactly precision decimal places.
func FormatAmount(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
