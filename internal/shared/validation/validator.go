// Package validation checks request payloads before they reach a store.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Apurer/go-gin-restaurant-api/internal/shared/apperr"
)

// PhoneDigits is the exact number of digits a phone number carries.
const PhoneDigits = 8

// Payload is a decoded request body keyed by field name.
type Payload map[string]any

// RequireFields fails for the first field that is missing or whose string form is blank.
func RequireFields(payload Payload, fields ...string) error {
	for _, field := range fields {
		raw, ok := payload[field]
		if !ok {
			return apperr.Validation(field, "is required")
		}
		text, ok := Stringify(raw)
		if !ok || strings.TrimSpace(text) == "" {
			return apperr.Validation(field, "is required")
		}
	}
	return nil
}

// Stringify renders a decoded JSON or form value the way it was sent.
func Stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case bool:
		return strconv.FormatBool(v), true
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return v[0], true
	default:
		return fmt.Sprint(v), true
	}
}

// ParsePositiveNumber parses value as a finite number strictly greater than zero.
func ParsePositiveNumber(field string, value any) (float64, error) {
	text, _ := Stringify(value)
	number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) || number <= 0 {
		return 0, apperr.Validation(field, "must be a positive number")
	}
	return number, nil
}

// ParsePhone parses value as an integer phone number of exactly PhoneDigits digits.
// Integral decimals such as 29000000.0 are accepted; 29000000.5 is not.
func ParsePhone(field string, value any) (int64, error) {
	text, _ := Stringify(value)
	phone, ok := parseIntegral(strings.TrimSpace(text))
	if !ok || phone <= 0 {
		return 0, apperr.Validation(field, "must be a valid telephone number")
	}
	if !IsPhone(phone) {
		return 0, apperr.Validation(field, fmt.Sprintf("must contain exactly %d digits", PhoneDigits))
	}
	return phone, nil
}

// parseIntegral accepts a plain integer or a number with no fractional part, such as "29000000.0".
func parseIntegral(text string) (int64, bool) {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) >= 1<<53 {
		return 0, false
	}
	return int64(f), true
}

// IsPhone reports whether phone renders as exactly PhoneDigits decimal digits.
func IsPhone(phone int64) bool {
	return phone > 0 && len(strconv.FormatInt(phone, 10)) == PhoneDigits
}

// ParseID parses value as a positive integer identifier.
func ParseID(field string, value any) (int64, error) {
	text, _ := Stringify(value)
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(field, "must be a positive integer")
	}
	return id, nil
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func structValidator() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().Int())
		})
		engine = v
	})
	return engine
}

// Struct runs the `validate` tags of a typed command and reports the first failure.
func Struct(command any) error {
	err := structValidator().Struct(command)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return &apperr.ValidationError{Field: first.Field(), Reason: reasonFor(first), Err: err}
	}
	return err
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "phone":
		return fmt.Sprintf("must contain exactly %d digits", PhoneDigits)
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
