package finance

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// rangeRule is a validate tag on a params field and the code it reports.
type rangeRule struct {
	code    Code
	message string
	ok      func(float64) bool
}

// Every rule also rejects NaN and ±Inf; those failures report InvalidNumber
// whatever the tag.
var rangeRules = map[string]rangeRule{
	"finite": {
		code:    InvalidNumber,
		message: "must be a finite number",
		ok:      func(float64) bool { return true },
	},
	"nonneg": {
		code:    NegativeValue,
		message: "must not be negative",
		ok:      func(v float64) bool { return v >= 0 },
	},
	"term": {
		code:    InvalidPeriod,
		message: "must not be negative",
		ok:      func(v float64) bool { return v >= 0 },
	},
	"period": {
		code:    InvalidPeriod,
		message: "must be greater than zero",
		ok:      func(v float64) bool { return v > 0 },
	},
	"frequency": {
		code:    InvalidFrequency,
		message: "must be a whole number of at least 1",
		ok:      func(v float64) bool { return v >= 1 && v == math.Trunc(v) },
	},
}

var ranges = newRangeValidator()

func newRangeValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, rule := range rangeRules {
		ok := rule.ok
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return isFinite(f) && ok(f)
		})
		if err != nil {
			panic(err)
		}
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkRanges applies the validate tags of params and reports the first
// failing field, in declaration order, as a *ValidationError.
func checkRanges(params any) error {
	err := ranges.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := fieldPath(fe.Namespace())
	v, _ := fe.Value().(float64)
	if !isFinite(v) {
		return reject(InvalidNumber, field, "must be a finite number, got %g", v)
	}

	rule, ok := rangeRules[fe.Tag()]
	if !ok {
		return reject(InvalidNumber, field, "failed %q check, got %g", fe.Tag(), v)
	}
	return reject(rule.code, field, "%s, got %g", rule.message, v)
}

// fieldPath drops the struct name from a validator namespace:
// "RentSplitParams.roommates[1].weight" becomes "roommates[1].weight".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
