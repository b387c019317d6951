package converter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const displayPlaces = 4

var validate = validator.New()

// ParseAmount accepts only finite numbers greater than zero.
func ParseAmount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &ValidationError{Field: "amount", Value: text, Reason: "empty"}
	}

	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Value: text, Reason: "not a number"}
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, &ValidationError{Field: "amount", Value: text, Reason: "not finite"}
	}
	if amount <= 0 {
		return 0, &ValidationError{Field: "amount", Value: text, Reason: "must be greater than 0"}
	}
	return amount, nil
}

// Display derives the shown value from the amount text, the cached
// per-unit rate and the last raw conversion result. The rate wins over
// the raw result; nothing is shown for an invalid amount.
func Display(amountText string, rate, lastResult *float64) (string, bool) {
	amount, err := ParseAmount(amountText)
	if err != nil {
		return "", false
	}
	if rate != nil {
		return decimal.NewFromFloat(*rate).
			Mul(decimal.NewFromFloat(amount)).
			StringFixed(displayPlaces), true
	}
	if lastResult != nil {
		return decimal.NewFromFloat(*lastResult).String(), true
	}
	return "", false
}

// FormatRate renders a per-unit rate without trailing zeros.
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).Round(6).String()
}

func validateRequest(req Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "request", Reason: err.Error()}
	}
	fe := fieldErrs[0]
	return &ValidationError{
		Field:  strings.ToLower(fe.Field()),
		Value:  fmt.Sprint(fe.Value()),
		Reason: "failed " + fe.Tag() + " check",
	}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}
