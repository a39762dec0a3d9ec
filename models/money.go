package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ErrInvalidPrice is returned for price strings that are not plain
// non-negative decimals with at most two fraction digits.
var ErrInvalidPrice = errors.New("invalid price format")

// NormalizePrice validates a submitted price string and formats it with
// exactly two fraction digits ("5" -> "5.00", "9.9" -> "9.90").
func NormalizePrice(price string) (string, error) {
	price = strings.TrimSpace(price)
	if !priceRe.MatchString(price) {
		return "", ErrInvalidPrice
	}
	cents, err := PriceToCents(price)
	if err != nil {
		return "", err
	}
	return CentsToPrice(cents), nil
}

// PriceToCents converts a decimal price string to integer cents. Totals
// are summed in cents so they stay exact regardless of record order.
func PriceToCents(price string) (int64, error) {
	price = strings.TrimSpace(price)
	if !priceRe.MatchString(price) {
		return 0, ErrInvalidPrice
	}
	whole, frac, _ := strings.Cut(price, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	for len(frac) < 2 {
		frac += "0"
	}
	sub, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	return units*100 + sub, nil
}

// CentsToPrice formats integer cents as a two-decimal price string.
func CentsToPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
