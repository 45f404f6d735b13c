// Package terbilang spells amounts out in Indonesian words, as printed on
// invoices and receipts ("satu juta lima ratus ribu rupiah").
package terbilang

import (
	"strings"

	"github.com/shopspring/decimal"
)

var units = [...]string{
	"", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas",
}

const (
	thousand    = int64(1_000)
	million     = int64(1_000_000)
	billion     = int64(1_000_000_000)
	trillion    = int64(1_000_000_000_000)
	quadrillion = int64(1_000_000_000_000_000)
)

// Convert returns the Indonesian words for amount in lower case. The
// fractional part, if any, is read digit by digit after "koma". When
// withCurrency is set the phrase ends in "rupiah".
func Convert(amount decimal.Decimal, withCurrency bool) string {
	negative := amount.IsNegative()
	amount = amount.Abs()

	whole := amount.Truncate(0)
	words := spell(whole.IntPart())
	if words == "" {
		words = "nol"
	}

	if frac := amount.Sub(whole); !frac.IsZero() {
		words += " koma " + spellDigits(strings.TrimPrefix(frac.String(), "0."))
	}

	if negative {
		words = "minus " + words
	}
	if withCurrency {
		words += " rupiah"
	}
	return words
}

// Int returns the Indonesian words for n without a currency suffix.
func Int(n int64) string {
	return Convert(decimal.NewFromInt(n), false)
}

func spell(n int64) string {
	switch {
	case n < 12:
		return units[n]
	case n < 20:
		return units[n-10] + " belas"
	case n < 100:
		return join(units[n/10]+" puluh", spell(n%10))
	case n < 200:
		return join("seratus", spell(n-100))
	case n < thousand:
		return join(units[n/100]+" ratus", spell(n%100))
	case n < 2*thousand:
		return join("seribu", spell(n-thousand))
	case n < million:
		return join(spell(n/thousand)+" ribu", spell(n%thousand))
	case n < billion:
		return join(spell(n/million)+" juta", spell(n%million))
	case n < trillion:
		return join(spell(n/billion)+" miliar", spell(n%billion))
	case n < quadrillion:
		return join(spell(n/trillion)+" triliun", spell(n%trillion))
	default:
		return join(spell(n/quadrillion)+" kuadriliun", spell(n%quadrillion))
	}
}

func spellDigits(digits string) string {
	words := make([]string, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '9' {
			continue
		}
		if r == '0' {
			words = append(words, "nol")
			continue
		}
		words = append(words, units[r-'0'])
	}
	return strings.Join(words, " ")
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}
