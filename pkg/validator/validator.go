package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// First returns one of the messages, for callers that surface a single
// human-readable string rather than the whole field map.
func (v ValidationErrors) First() string {
	for _, msg := range v {
		return msg
	}
	return ""
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const maxTextLength = 280

func ValidateRegister(username, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if len(password) < 5 {
		errs.Add("password", "Password must be at least 5 characters")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateThoughtText(text string) ValidationErrors {
	errs := make(ValidationErrors)
	validateText(text, "thoughtText", "Thought", errs)
	return errs
}

func ValidateReactionBody(body string) ValidationErrors {
	errs := make(ValidationErrors)
	validateText(body, "reactionBody", "Reaction", errs)
	return errs
}

func validateText(text, field, label string, errs ValidationErrors) {
	if text == "" {
		errs.Add(field, label+" text is required")
	} else if utf8.RuneCountInString(text) > maxTextLength {
		errs.Add(field, label+" text must be at most 280 characters")
	}
}
