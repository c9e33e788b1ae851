// Package validation checks untrusted form input before it is turned into a domain record.
//
// Each record kind has an input struct carrying validator tags and a Validate function that
// returns a Result: either the normalized record or a FieldErrors report keyed by JSON field name.
// A record built from a failed Result must never reach a repository.
package validation

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// PhoneMessage is reported when a phone number does not match the accepted format.
const PhoneMessage = "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."

var phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)

var webSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ftps": true}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// Bounds such as gte apply to the numeric value of a decimal.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("registering phone validation: %v", err))
	}

	if err := v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
		return isWebURL(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("registering weburl validation: %v", err))
	}

	return v
}

// isWebURL accepts absolute http, https, ftp and ftps URLs with a host.
func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return webSchemes[strings.ToLower(u.Scheme)] && u.Hostname() != ""
}

// FieldErrors is a field-keyed validation report. It implements error.
type FieldErrors struct {
	Fields map[string][]string
}

// Add records a message against a field.
func (fe *FieldErrors) Add(field, message string) {
	if fe.Fields == nil {
		fe.Fields = make(map[string][]string)
	}
	fe.Fields[field] = append(fe.Fields[field], message)
}

// Len returns the number of fields with at least one message.
func (fe *FieldErrors) Len() int {
	if fe == nil {
		return 0
	}
	return len(fe.Fields)
}

// Error joins every message in field order.
func (fe *FieldErrors) Error() string {
	keys := make([]string, 0, len(fe.Fields))
	for k := range fe.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(fe.Fields[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MarshalJSON writes the report as a flat object of field name to messages.
func (fe *FieldErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(fe.Fields)
}

// Result is the outcome of validating one input: a normalized record, or the reasons it was rejected.
type Result[T any] struct {
	Value  T
	Errors *FieldErrors
}

// OK reports whether the input passed every rule.
func (r Result[T]) OK() bool {
	return r.Errors.Len() == 0
}

// Err returns the FieldErrors as an error, or nil when the input is valid.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	return r.Errors
}

func reject[T any](errs *FieldErrors) Result[T] {
	return Result[T]{Errors: errs}
}

// check runs the struct tags of input and converts failures to field messages.
func check(input any) *FieldErrors {
	errs := &FieldErrors{}
	err := validate.Struct(input)
	if err == nil {
		return errs
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("non_field_errors", err.Error())
		return errs
	}
	for _, fieldErr := range validationErrors {
		errs.Add(fieldErr.Field(), message(fieldErr))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "url", "http_url", "weburl":
		return "Enter a valid URL."
	case "oneof":
		return fmt.Sprintf("\"%v\" is not a valid choice.", fe.Value())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "phone":
		return PhoneMessage
	default:
		return "Invalid value."
	}
}

func trim(s *string) {
	*s = strings.TrimSpace(*s)
}

// optional trims an optional string and drops it when nothing is left.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
