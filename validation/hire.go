package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
	"github.com/tfkr-ae/folio/domain"
)

// Salary precision: 12 digits in total, 2 of them after the decimal point.
const (
	salaryMaxDigits     = 12
	salaryDecimalPlaces = 2
)

// HireInput is the body of a hire request.
type HireInput struct {
	ApplicantName  string           `json:"applicant_name" validate:"required,max=100"`
	ApplicantEmail string           `json:"applicant_email" validate:"required,max=254,email"`
	ApplicantPhone string           `json:"applicant_phone" validate:"required,max=20,phone"`
	CompanyName    string           `json:"company_name" validate:"required,max=150"`
	Role           string           `json:"role" validate:"required,max=100"`
	OfferedSalary  *decimal.Decimal `json:"offered_salary" validate:"required,gte=0"`
	Message        *string          `json:"message"`
}

// UnmarshalJSON decodes a hire request body. An offered salary that is not a number is reported
// as a *json.UnmarshalTypeError against offered_salary.
func (in *HireInput) UnmarshalJSON(data []byte) error {
	type plain HireInput
	aux := struct {
		*plain
		OfferedSalary json.RawMessage `json:"offered_salary"`
	}{plain: (*plain)(in)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	in.OfferedSalary = nil
	raw := bytes.TrimSpace(aux.OfferedSalary)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return &json.UnmarshalTypeError{
			Value: jsonKind(raw),
			Type:  reflect.TypeOf(d),
			Field: "offered_salary",
		}
	}
	in.OfferedSalary = &d
	return nil
}

// ValidateHire checks a hire request input.
func ValidateHire(in HireInput) Result[*domain.HireRequest] {
	trim(&in.ApplicantName)
	trim(&in.ApplicantEmail)
	trim(&in.ApplicantPhone)
	trim(&in.CompanyName)
	trim(&in.Role)
	in.Message = optional(in.Message)

	errs := check(in)
	if in.OfferedSalary != nil && errs.Fields["offered_salary"] == nil {
		if msg := checkPrecision(*in.OfferedSalary, salaryMaxDigits, salaryDecimalPlaces); msg != "" {
			errs.Add("offered_salary", msg)
		}
	}
	if errs.Len() > 0 {
		return reject[*domain.HireRequest](errs)
	}

	return Result[*domain.HireRequest]{Value: &domain.HireRequest{
		ApplicantName:  in.ApplicantName,
		ApplicantEmail: in.ApplicantEmail,
		ApplicantPhone: in.ApplicantPhone,
		CompanyName:    in.CompanyName,
		Role:           in.Role,
		OfferedSalary:  *in.OfferedSalary,
		Message:        in.Message,
	}}
}

// checkPrecision reports the first precision rule d breaks, or "" when it fits.
// Digits are counted on the value as written, so 1.50 has two decimal places.
func checkPrecision(d decimal.Decimal, maxDigits, decimalPlaces int) string {
	coefficient := new(big.Int).Abs(d.Coefficient())
	digitCount := len(coefficient.String())
	exponent := int(d.Exponent())

	var total, decimals, whole int
	switch {
	case exponent >= 0:
		total = digitCount
		if coefficient.Sign() != 0 {
			total += exponent
		}
		whole = total
	case -exponent > digitCount:
		total = -exponent
		decimals = -exponent
	default:
		total = digitCount
		decimals = -exponent
		whole = total - decimals
	}

	switch {
	case total > maxDigits:
		return fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits)
	case decimals > decimalPlaces:
		return fmt.Sprintf("Ensure that there are no more than %d decimal places.", decimalPlaces)
	case whole > maxDigits-decimalPlaces:
		return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-decimalPlaces)
	}
	return ""
}
