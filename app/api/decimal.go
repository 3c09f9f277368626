package api

import (
	"bytes"
	"encoding/json"

	"github.com/Radmir1876/Zadaniedek1/models"
	"github.com/shopspring/decimal"
)

// DecimalFields parses the decimal members of a request payload. Values may be sent
// as JSON numbers or strings; problems are collected per field instead of failing
// the whole body.
type DecimalFields struct {
	errs map[string]string
}

// Parse decodes raw as a decimal. Missing values are an error only when required.
func (d *DecimalFields) Parse(field string, raw json.RawMessage, required bool) decimal.Decimal {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		if required {
			d.add(field, "This field is required.")
		}
		return decimal.Decimal{}
	}

	var value decimal.Decimal
	if err := value.UnmarshalJSON(raw); err != nil {
		d.add(field, "A valid number is required.")
		return decimal.Decimal{}
	}
	return value
}

// Err returns the collected problems as a *models.ValidationError, or nil.
func (d *DecimalFields) Err() error {
	if len(d.errs) == 0 {
		return nil
	}
	return &models.ValidationError{Fields: d.errs}
}

func (d *DecimalFields) add(field, message string) {
	if d.errs == nil {
		d.errs = make(map[string]string)
	}
	d.errs[field] = message
}
