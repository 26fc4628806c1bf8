// Package form validates user input before it is sent to the API.
// Messages match what the login, register and task forms display.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the due date input format.
const DateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("duedate", isDueDate); err != nil {
		panic(err)
	}
	return v
}

func isDueDate(fl validator.FieldLevel) bool {
	_, err := ParseDueDate(fl.Field().String())
	return err == nil
}

// ParseDueDate parses a due date entered as YYYY-MM-DD or RFC 3339.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date: %s", s)
	}
	return t, nil
}

// FieldError is a validation failure on one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the list of field failures, in field order.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Field returns the message for field, or "" if it passed.
func (e Errors) Field(name string) string {
	for _, fe := range e {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

// messages maps "field.tag" to the message shown for that failure.
var messages = map[string]string{
	"username.required":    "Username is required",
	"email.required":       "Email is required",
	"email.email":          "Invalid email format",
	"password.required":    "Password is required",
	"password.min":         "Password must be at least 6 characters",
	"title.required":       "Title is required",
	"description.required": "Description is required",
	"dueDate.required":     "Due date is required",
	"dueDate.duedate":      "Invalid due date",
}

// check runs the struct validator and converts failures to Errors.
// Only the first failing rule of each field is reported.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var out Errors
	seen := make(map[string]bool)
	for _, fe := range verrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		msg, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}
