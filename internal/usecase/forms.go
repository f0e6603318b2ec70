package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gestao_igreja/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidID          = errors.New("invalid id")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
)

// ValidationError is returned by every form submit that fails validation.
// Fields maps the JSON field name to the failed rule (e.g. "email": "required").
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidField(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

// ConfirmFunc is asked before a delete is committed. A nil ConfirmFunc means the
// caller has already confirmed.
type ConfirmFunc func() bool

// NumberInput is a numeric form field. It mirrors a text input, so it decodes from
// either a JSON string ("150.00") or a JSON number (150).
type NumberInput string

func (n *NumberInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberInput(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumberInput(num.String())
	return nil
}

func (n NumberInput) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(string(n)))
}

func (n NumberInput) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(n)))
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("congregation_status", func(fl validator.FieldLevel) bool {
		switch entities.CongregationStatus(fl.Field().String()) {
		case "", entities.CongregationStatusAtiva, entities.CongregationStatusEmCrescimento, entities.CongregationStatusInativa:
			return true
		}
		return false
	})
	return v
}

// validateForm runs the struct tags of form and converts failures to *ValidationError.
func validateForm(form any) error {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}

// parseFormDate parses an optional ISO date input. Empty yields the zero Date.
func parseFormDate(field, value string) (entities.Date, error) {
	if strings.TrimSpace(value) == "" {
		return entities.Date{}, nil
	}
	d, err := entities.ParseISO(value)
	if err != nil {
		return entities.Date{}, invalidField(field, "datetime")
	}
	return d, nil
}

func orDefault(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}

// optionalInt reads an integer input where blank means 0.
func optionalInt(field string, n NumberInput) (int, error) {
	if strings.TrimSpace(string(n)) == "" {
		return 0, nil
	}
	v, err := n.Int()
	if err != nil {
		return 0, invalidField(field, "number")
	}
	return v, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
