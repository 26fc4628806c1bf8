package form

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) Errors {
	t.Helper()
	require.Error(t, err)
	var errs Errors
	require.True(t, errors.As(err, &errs), "expected form.Errors, got %T", err)
	return errs
}

func TestLogin_Valid(t *testing.T) {
	f := &Login{Email: " ann@example.com ", Password: "x"}
	require.NoError(t, f.Validate())
	assert.Equal(t, "ann@example.com", f.Email)
}

func TestLogin_Empty(t *testing.T) {
	errs := fieldErrors(t, (&Login{}).Validate())
	assert.Equal(t, Errors{
		{Field: "email", Message: "Email is required"},
		{Field: "password", Message: "Password is required"},
	}, errs)
}

func TestLogin_InvalidEmail(t *testing.T) {
	errs := fieldErrors(t, (&Login{Email: "not-an-email", Password: "x"}).Validate())
	assert.Equal(t, "Invalid email format", errs.Field("email"))
	assert.Empty(t, errs.Field("password"))
}

func TestRegister_ShortPassword(t *testing.T) {
	errs := fieldErrors(t, (&Register{Username: "ann", Email: "ann@example.com", Password: "12345"}).Validate())
	assert.Equal(t, Errors{{Field: "password", Message: "Password must be at least 6 characters"}}, errs)
	assert.Equal(t, "password: Password must be at least 6 characters", errs.Error())
}

func TestRegister_MinimumLengthAccepted(t *testing.T) {
	f := &Register{Username: "ann", Email: "ann@example.com", Password: "123456"}
	assert.NoError(t, f.Validate())
}

func TestRegister_MissingUsername(t *testing.T) {
	errs := fieldErrors(t, (&Register{Username: "  ", Email: "ann@example.com", Password: "123456"}).Validate())
	assert.Equal(t, "Username is required", errs.Field("username"))
}

func TestTask_EmptyTitle(t *testing.T) {
	errs := fieldErrors(t, (&Task{Title: "   ", Description: "d", DueDate: "2024-05-01"}).Validate())
	assert.Equal(t, Errors{{Field: "title", Message: "Title is required"}}, errs)
}

func TestTask_AllMissing(t *testing.T) {
	errs := fieldErrors(t, (&Task{}).Validate())
	assert.Equal(t, "title: Title is required; description: Description is required; dueDate: Due date is required", errs.Error())
}

func TestTask_InvalidDueDate(t *testing.T) {
	errs := fieldErrors(t, (&Task{Title: "t", Description: "d", DueDate: "tomorrow"}).Validate())
	assert.Equal(t, "Invalid due date", errs.Field("dueDate"))
}

func TestTask_Due(t *testing.T) {
	f := &Task{Title: "t", Description: "d", DueDate: "2024-05-01"}
	require.NoError(t, f.Validate())
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), f.Due())
}
