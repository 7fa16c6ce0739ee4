package repository

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// sortableTimeLayout keeps a fixed number of fractional digits so that
// created_at strings sort lexicographically in the same order as the instants
// they encode (RFC3339Nano trims trailing zeros and would not).
const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(sortableTimeLayout)
}

func parseTime(field, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed %s %q: %w", field, v, err)
	}
	return t.UTC(), nil
}

func parseDecimal(field, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("malformed %s %q: %w", field, v, err)
	}
	return d, nil
}
