// Package forms is the validation engine for the client's multi-field forms.
// Validation is a pure mapping from field values to per-field error messages;
// an empty result means the form is submittable.
package forms

import (
	"net/url"
	"regexp"
	"strings"
)

// Kind selects the rule set applied to a set of fields.
type Kind string

const (
	KindLogin  Kind = "login"
	KindSignup Kind = "signup"
	KindReport Kind = "report"
)

// Well-known field names.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldURL      = "url"
	FieldMessage  = "message"

	// FieldForm is the reserved key for form-scoped errors that are not
	// attributable to a single field.
	FieldForm = "form"
)

const (
	MinUsernameLen = 3
	MinPasswordLen = 6
)

// Fields maps field names to their current values.
type Fields map[string]string

// Errors maps field names to error messages. Only failing fields appear.
type Errors map[string]string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate runs the full rule set for kind against fields and returns the
// errors of every failing field. It has no side effects and is deterministic
// for identical input.
func Validate(fields Fields, kind Kind) Errors {
	errs := Errors{}

	switch kind {
	case KindLogin, KindSignup:
		if msg, ok := validateEmail(fields[FieldEmail]); !ok {
			errs[FieldEmail] = msg
		}
		if kind == KindSignup {
			if msg, ok := validateUsername(fields[FieldUsername]); !ok {
				errs[FieldUsername] = msg
			}
		}
		if msg, ok := validatePassword(fields[FieldPassword]); !ok {
			errs[FieldPassword] = msg
		}

	case KindReport:
		urlValue := fields[FieldURL]
		if urlValue == "" && fields[FieldMessage] == "" {
			errs[FieldForm] = "Please provide a link or message to report"
		}
		if urlValue != "" && !validURL(urlValue) {
			errs[FieldURL] = "Please enter a valid URL"
		}
	}

	return errs
}

// ValidateField validates a single field under the rules of kind. It returns
// the error message and false when the field fails. FieldForm re-checks the
// form-scoped rule.
func ValidateField(fields Fields, kind Kind, name string) (string, bool) {
	switch name {
	case FieldEmail:
		if kind == KindLogin || kind == KindSignup {
			return validateEmail(fields[FieldEmail])
		}
	case FieldUsername:
		if kind == KindSignup {
			return validateUsername(fields[FieldUsername])
		}
	case FieldPassword:
		if kind == KindLogin || kind == KindSignup {
			return validatePassword(fields[FieldPassword])
		}
	case FieldURL:
		if kind == KindReport {
			if v := fields[FieldURL]; v != "" && !validURL(v) {
				return "Please enter a valid URL", false
			}
		}
	case FieldForm:
		if kind == KindReport {
			if fields[FieldURL] == "" && fields[FieldMessage] == "" {
				return "Please provide a link or message to report", false
			}
		}
	}
	return "", true
}

func validateEmail(v string) (string, bool) {
	if v == "" {
		return "Email is required", false
	}
	if !emailPattern.MatchString(v) {
		return "Please enter a valid email", false
	}
	return "", true
}

func validateUsername(v string) (string, bool) {
	if v == "" {
		return "Username is required", false
	}
	if len(v) < MinUsernameLen {
		return "Username must be at least 3 characters", false
	}
	return "", true
}

func validatePassword(v string) (string, bool) {
	if v == "" {
		return "Password is required", false
	}
	if len(v) < MinPasswordLen {
		return "Password must be at least 6 characters", false
	}
	return "", true
}

// validURL accepts an absolute URL, or a bare host/path that becomes an
// absolute URL after prefixing "https://" (so "example.com/path" is fine).
func validURL(s string) bool {
	if isAbsoluteURL(s) {
		return true
	}
	// Partial URL: must contain a dot and no whitespace before scheme
	// completion is attempted.
	if strings.Contains(s, ".") && !strings.ContainsAny(s, " \t") {
		return isAbsoluteURL("https://" + s)
	}
	return false
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
