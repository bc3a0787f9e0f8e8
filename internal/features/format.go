package features

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(domain.DateLayout)
}

func dateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return n, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "$"))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not an amount", s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("must not be negative")
	}
	return d.Round(2), nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a date (YYYY-MM-DD)", s)
	}
	return t, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "1", "published", "available":
		return true, nil
	case "n", "no", "false", "0", "draft", "sold out":
		return false, nil
	}
	return false, fmt.Errorf("%q is not yes or no", s)
}

// oneOf returns a parser accepting only the listed values
func oneOf(options ...string) func(string) (string, error) {
	return func(s string) (string, error) {
		for _, o := range options {
			if strings.EqualFold(o, s) {
				return o, nil
			}
		}
		return "", fmt.Errorf("must be one of %s", strings.Join(options, ", "))
	}
}

// text is a setter for free-form strings
func text[R any](set func(*R, string)) func(*R, string) error {
	return func(r *R, s string) error {
		set(r, s)
		return nil
	}
}

// choice is a setter restricted to options
func choice[R any](set func(*R, string), options ...string) func(*R, string) error {
	parse := oneOf(options...)
	return func(r *R, s string) error {
		v, err := parse(s)
		if err != nil {
			return err
		}
		set(r, v)
		return nil
	}
}

// intField parses a whole number, runs the optional checks, then sets it
func intField[R any](set func(*R, int), checks ...func(int) error) func(*R, string) error {
	return func(r *R, s string) error {
		n, err := parseInt(s)
		if err != nil {
			return err
		}
		for _, check := range checks {
			if err := check(n); err != nil {
				return err
			}
		}
		set(r, n)
		return nil
	}
}

func between(lo, hi int) func(int) error {
	return func(n int) error {
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func moneyField[R any](set func(*R, decimal.Decimal)) func(*R, string) error {
	return func(r *R, s string) error {
		d, err := parseMoney(s)
		if err != nil {
			return err
		}
		set(r, d)
		return nil
	}
}

func dateField[R any](set func(*R, time.Time)) func(*R, string) error {
	return func(r *R, s string) error {
		t, err := parseDate(s)
		if err != nil {
			return err
		}
		set(r, t)
		return nil
	}
}

func boolField[R any](set func(*R, bool)) func(*R, string) error {
	return func(r *R, s string) error {
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		set(r, b)
		return nil
	}
}
