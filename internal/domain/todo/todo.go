// Package todo holds the Todo entity, its validation rules, the derived
// due-date label and the grouping of todos by completion state and due date.
package todo

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todo-list/internal/domain"
)

// Sentinel values meaning "no value selected" for the date parts.
const (
	NoDay   = "00"
	NoMonth = "00"
	NoYear  = "0000"
)

// NoDueDate is the label of todos without both a month and a year.
const NoDueDate = "No Due Date"

// Field length limits, counted in characters after trimming whitespace.
const (
	MinTitleLength       = 3
	MaxTitleLength       = 25
	MaxDescriptionLength = 200
)

// User-facing validation messages.
const (
	MsgTitleTooShort      = "You must enter a title at least 3 characters long."
	MsgTitleTooLong       = "Title must be less than 25 characters long."
	MsgDescriptionTooLong = "Description cannot exceed 200 characters."

	msgInvalidDay   = "must be %q or a day between 01 and 31, got %q"
	msgInvalidMonth = "must be %q or a month between 01 and 12, got %q"
	msgInvalidYear  = "must be %q or a four digit year, got %q"
)

// Todo is a task record with an optional due date and a completion flag.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Day         string
	Month       string
	Year        string
	Completed   bool
}

// Normalize trims the free-text fields and replaces empty date parts with
// their "unset" sentinels.
func (t *Todo) Normalize() {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	if t.Day == "" {
		t.Day = NoDay
	}
	if t.Month == "" {
		t.Month = NoMonth
	}
	if t.Year == "" {
		t.Year = NoYear
	}
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	checkText(fields, t.Title, t.Description)

	if !validDay(t.Day) {
		fields["day"] = fmt.Sprintf(msgInvalidDay, NoDay, t.Day)
	}
	if !validMonth(t.Month) {
		fields["month"] = fmt.Sprintf(msgInvalidMonth, NoMonth, t.Month)
	}
	if !validYear(t.Year) {
		fields["year"] = fmt.Sprintf(msgInvalidYear, NoYear, t.Year)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ValidateForm applies only the title and description rules. Front-ends run
// it before submitting a form so that the user sees the failure immediately.
func ValidateForm(title, description string) error {
	fields := make(map[string]string)
	checkText(fields, title, description)
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func checkText(fields map[string]string, title, description string) {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	switch {
	case n < MinTitleLength:
		fields["title"] = MsgTitleTooShort
	case n > MaxTitleLength:
		fields["title"] = MsgTitleTooLong
	}
	if utf8.RuneCountInString(strings.TrimSpace(description)) > MaxDescriptionLength {
		fields["description"] = MsgDescriptionTooLong
	}
}

// HasDueDate reports whether both month and year are set.
func (t *Todo) HasDueDate() bool {
	return t.Month != "" && t.Year != "" && t.Month != NoMonth && t.Year != NoYear
}

// DueDate returns the display label of the todo's due date: "MM/YY" when
// month and year are set, otherwise NoDueDate.
func (t *Todo) DueDate() string {
	if !t.HasDueDate() {
		return NoDueDate
	}
	year := t.Year
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return t.Month + "/" + year
}

// dueKey returns a sortable month index (year*12 + month-1) and whether the
// todo has a due date at all.
func (t *Todo) dueKey() (int, bool) {
	if !t.HasDueDate() {
		return 0, false
	}
	month, err := strconv.Atoi(t.Month)
	if err != nil {
		return 0, false
	}
	year, err := strconv.Atoi(t.Year)
	if err != nil {
		return 0, false
	}
	return year*12 + month - 1, true
}

func validDay(s string) bool {
	return s == NoDay || inRange(s, 2, 1, 31)
}

func validMonth(s string) bool {
	return s == NoMonth || inRange(s, 2, 1, 12)
}

func validYear(s string) bool {
	return s == NoYear || inRange(s, 4, 1, 9999)
}

// inRange reports whether s is exactly width ASCII digits with a value in [lo, hi].
func inRange(s string, width, lo, hi int) bool {
	if len(s) != width {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}
