package form

import (
	"strings"
	"time"
)

// Login holds the login form.
type Login struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Validate returns Errors if any field is invalid.
func (f *Login) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return check(f)
}

// Register holds the registration form.
type Register struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// Validate returns Errors if any field is invalid.
func (f *Register) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	return check(f)
}

// Task holds the add/edit task form.
type Task struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	DueDate     string `form:"dueDate" validate:"required,duedate"`
}

// Validate returns Errors if any field is invalid.
// Whitespace-only values count as empty.
func (f *Task) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.DueDate = strings.TrimSpace(f.DueDate)
	return check(f)
}

// Due returns the parsed due date. Call after Validate succeeds.
func (f *Task) Due() time.Time {
	t, _ := ParseDueDate(f.DueDate)
	return t
}
