// Package format renders large currency and XP amounts in a compact
// human-readable form, e.g. 1500 -> "1.5K", 2000000 -> "2M".
package format

import (
	"github.com/shopspring/decimal"
)

type scale struct {
	threshold decimal.Decimal
	suffix    string
}

// Tiers are checked largest first. "qd" is the catch-all for anything at or
// above 10^30; balances are capped far below that, but the formatter is also
// used for jackpot pools and lifetime totals, so it stays permissive.
var scales = []scale{
	{decimal.New(1, 30), "qd"},
	{decimal.New(1, 12), "T"},
	{decimal.New(1, 9), "B"},
	{decimal.New(1, 6), "M"},
	{decimal.New(1, 3), "K"},
}

// Amount formats n with a magnitude suffix. Whole multiples drop the decimal
// point ("2K"), everything else keeps one decimal place ("2.5K").
func Amount(n int64) string {
	d := decimal.NewFromInt(n)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	out := d.String()
	for _, s := range scales {
		if d.GreaterThanOrEqual(s.threshold) {
			scaled := d.Div(s.threshold)
			if scaled.Equal(scaled.Truncate(0)) {
				out = scaled.Truncate(0).String() + s.suffix
			} else {
				out = scaled.Round(1).String() + s.suffix
			}
			break
		}
	}

	if neg {
		return "-" + out
	}
	return out
}
