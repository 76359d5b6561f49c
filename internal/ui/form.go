package ui

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field describes the HTML5 constraints of one form control.
type Field struct {
	Name      string
	Type      string
	Required  bool
	MinLength int
	MaxLength int
	Pattern   string
}

// FieldError names a control that failed its constraints.
type FieldError struct {
	Field  string
	Reason string
}

// InvalidFormError is returned when a form fails the validity gate.
type InvalidFormError struct {
	Fields []FieldError
}

func (e *InvalidFormError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "form invalid: " + strings.Join(parts, "; ")
}

// Form is the validity gate in front of a submission. WasValidated flips on
// the first submission attempt, valid or not, and drives the error styling.
type Form struct {
	Fields       []Field
	WasValidated bool
}

// Submit checks values against every field. File inputs are checked through
// values too: their value is the chosen file name.
func (f *Form) Submit(values map[string]string) error {
	f.WasValidated = true

	var errs []FieldError
	for _, field := range f.Fields {
		if reason := checkField(field, strings.TrimSpace(values[field.Name]), values[field.Name]); reason != "" {
			errs = append(errs, FieldError{Field: field.Name, Reason: reason})
		}
	}
	if len(errs) > 0 {
		return &InvalidFormError{Fields: errs}
	}
	return nil
}

func checkField(f Field, trimmed, raw string) string {
	if raw == "" {
		if f.Required {
			return "required"
		}
		return ""
	}
	if f.Required && trimmed == "" && f.Type != "text" && f.Type != "" && f.Type != "textarea" {
		return "required"
	}

	n := utf8.RuneCountInString(raw)
	if f.MinLength > 0 && n < f.MinLength {
		return fmt.Sprintf("at least %d characters", f.MinLength)
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		return fmt.Sprintf("at most %d characters", f.MaxLength)
	}

	switch f.Type {
	case "email":
		at := strings.LastIndex(raw, "@")
		if at <= 0 || at == len(raw)-1 || strings.ContainsAny(raw, " \t") {
			return "not an email address"
		}
	case "url":
		u, err := url.ParseRequestURI(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "not a URL"
		}
	case "number":
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return "not a number"
		}
	}

	if f.Pattern != "" {
		re, err := regexp.Compile("^(?:" + f.Pattern + ")$")
		if err == nil && !re.MatchString(raw) {
			return "does not match the requested format"
		}
	}
	return ""
}

// FileLabel is the text shown next to a file input once a file is chosen.
// Browsers report a fake directory for the chosen file, so only the base
// name is kept.
func FileLabel(filename, fallback string) string {
	if filename == "" {
		return fallback
	}
	return path.Base(strings.ReplaceAll(filename, "\\", "/"))
}
