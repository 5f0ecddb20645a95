// Package validate holds the field predicates applied to registration and
// authoring input. Values are checked exactly as given; nothing is trimmed or
// case-folded.
package validate

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName     = errors.New("invalid name: use only letters, spaces, periods and apostrophes")
	ErrInvalidUsername = errors.New("invalid username: use only letters, numbers, underscores or hyphens")
	ErrWeakPassword    = errors.New("weak password: need at least 8 characters with upper, lower, digit and one of !@#$%^&*()-_")
	ErrInvalidEmail    = errors.New("invalid email: must contain @ and a . after it")
	ErrInvalidContact  = errors.New("invalid contact number: only digits, +, -, spaces and parentheses allowed")
	ErrInvalidRole     = errors.New("invalid role: must be Admin, Instructor or Student")
	ErrMultiline       = errors.New("value must fit on a single line")
)

const minPasswordLen = 8

// Name accepts non-empty strings of ASCII letters, spaces, '.' and '\''.
func Name(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isLetter(c) && c != ' ' && c != '.' && c != '\'' {
			return ErrInvalidName
		}
	}
	return nil
}

// Username accepts non-empty strings of ASCII letters, digits, '_' and '-'.
func Username(username string) error {
	if username == "" {
		return ErrInvalidUsername
	}
	for i := 0; i < len(username); i++ {
		c := username[i]
		if !isLetter(c) && !isDigit(c) && c != '_' && c != '-' {
			return ErrInvalidUsername
		}
	}
	return nil
}

// Password requires at least 8 bytes including an upper-case letter, a
// lower-case letter, a digit and a special character. Line breaks are
// rejected with ErrMultiline.
func Password(password string) error {
	if err := SingleLine(password); err != nil {
		return err
	}
	if len(password) < minPasswordLen {
		return ErrWeakPassword
	}
	var upper, lower, digit, special bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case isDigit(c):
			digit = true
		case strings.IndexByte("!@#$%^&*()-_", c) >= 0:
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return ErrWeakPassword
	}
	return nil
}

// Email only checks for an '@' with a '.' somewhere after it, on one line.
func Email(email string) error {
	if err := SingleLine(email); err != nil {
		return err
	}
	at := strings.IndexByte(email, '@')
	if at < 0 || strings.IndexByte(email[at+1:], '.') < 0 {
		return ErrInvalidEmail
	}
	return nil
}

// Contact accepts non-empty strings of digits, '+', '-', spaces and parentheses.
func Contact(contact string) error {
	if contact == "" {
		return ErrInvalidContact
	}
	for i := 0; i < len(contact); i++ {
		c := contact[i]
		if !isDigit(c) && strings.IndexByte("+- ()", c) < 0 {
			return ErrInvalidContact
		}
	}
	return nil
}

// Role accepts the three role tags used in the users file.
func Role(role string) error {
	switch role {
	case "Admin", "Instructor", "Student":
		return nil
	}
	return ErrInvalidRole
}

// SingleLine rejects values that would break a line-oriented record.
func SingleLine(value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return ErrMultiline
	}
	return nil
}

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
